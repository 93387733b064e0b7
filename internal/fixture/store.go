// Package fixture loads the three static lookup tables the mock serves from:
// CRM records, tire catalog entries, and service-estimate templates. Tables
// are decoded once at startup and never written afterwards.
package fixture

import (
    "embed"
    "encoding/json"
    "fmt"
    "os"
    "path/filepath"

    "github.com/garageline/garage-mock-backend/internal/model"
    "github.com/garageline/garage-mock-backend/internal/plate"
)

//go:embed data/crm.json data/tires.json data/services.json
var defaults embed.FS

const (
    crmFile      = "crm.json"
    tiresFile    = "tires.json"
    servicesFile = "services.json"
)

// StoreInterface defines the lookups the services need
type StoreInterface interface {
    Customer(plateKey string) (model.CRMRecord, bool)
    TireCatalog(plateKey string) (model.TireCatalogEntry, bool)
    ServiceTemplate(serviceType string) (model.ServiceEstimateTemplate, bool)
}

// Store is the concrete fixture store. Read-only after Load.
type Store struct {
    crm      map[string]model.CRMRecord
    tires    map[string]model.TireCatalogEntry
    services map[string]model.ServiceEstimateTemplate
}

// Load builds a Store from the embedded defaults. When overrideDir is
// non-empty, a file of the same name found there replaces the embedded
// table. Plate-keyed tables are re-keyed to canonical form so lookups and
// fixture files agree regardless of how plates were written in the JSON.
func Load(overrideDir string) (*Store, error) {
    s := &Store{}

    if err := decodeTable(overrideDir, crmFile, &s.crm); err != nil {
        return nil, err
    }
    if err := decodeTable(overrideDir, tiresFile, &s.tires); err != nil {
        return nil, err
    }
    if err := decodeTable(overrideDir, servicesFile, &s.services); err != nil {
        return nil, err
    }

    s.crm = normalizeKeys(s.crm)
    s.tires = normalizeKeys(s.tires)

    return s, nil
}

// Customer returns the CRM record for a canonical plate key.
func (s *Store) Customer(plateKey string) (model.CRMRecord, bool) {
    rec, ok := s.crm[plateKey]
    return rec, ok
}

// TireCatalog returns the tire catalog entry for a canonical plate key.
func (s *Store) TireCatalog(plateKey string) (model.TireCatalogEntry, bool) {
    entry, ok := s.tires[plateKey]
    return entry, ok
}

// ServiceTemplate returns the estimate template for a service type.
func (s *Store) ServiceTemplate(serviceType string) (model.ServiceEstimateTemplate, bool) {
    tpl, ok := s.services[serviceType]
    return tpl, ok
}

// WriteDefaults dumps the embedded fixture tables as JSON files into dir,
// creating it if needed. Operators copy-and-edit these and point
// FIXTURE_DIR at the result.
func WriteDefaults(dir string) error {
    if err := os.MkdirAll(dir, 0o755); err != nil {
        return fmt.Errorf("create %s: %w", dir, err)
    }
    for _, name := range []string{crmFile, tiresFile, servicesFile} {
        raw, err := defaults.ReadFile("data/" + name)
        if err != nil {
            return err
        }
        path := filepath.Join(dir, name)
        if err := os.WriteFile(path, raw, 0o644); err != nil {
            return fmt.Errorf("write %s: %w", path, err)
        }
    }
    return nil
}

func decodeTable(dir, name string, dst any) error {
    raw, err := readTable(dir, name)
    if err != nil {
        return err
    }
    if err := json.Unmarshal(raw, dst); err != nil {
        return fmt.Errorf("parse %s: %w", name, err)
    }
    return nil
}

func readTable(dir, name string) ([]byte, error) {
    if dir != "" {
        path := filepath.Join(dir, name)
        raw, err := os.ReadFile(path)
        if err == nil {
            return raw, nil
        }
        if !os.IsNotExist(err) {
            return nil, fmt.Errorf("read %s: %w", path, err)
        }
        // fall through to the embedded default
    }
    return defaults.ReadFile("data/" + name)
}

func normalizeKeys[T any](in map[string]T) map[string]T {
    out := make(map[string]T, len(in))
    for k, v := range in {
        key, ok := plate.Normalize(k)
        if !ok {
            continue
        }
        out[key] = v
    }
    return out
}

var _ StoreInterface = (*Store)(nil)
