package service

import (
    "fmt"

    "github.com/garageline/garage-mock-backend/internal/fixture"
    "github.com/garageline/garage-mock-backend/internal/model"
    "github.com/garageline/garage-mock-backend/internal/plate"
)

// Installation estimate is fixed regardless of vehicle or option count.
const InstallationTimeMinutes = 60

// DefaultTireSize is the placeholder returned for plates not in the catalog.
const DefaultTireSize = "205/55 R16"

// TireInventoryService filters a vehicle's tire options by season, falling
// back to a fixed default catalog for unknown plates.
type TireInventoryService struct {
    Store fixture.StoreInterface
}

// Result struct for Lookup
type TireInventoryResult struct {
    LicensePlate            string
    Vehicle                 *model.TireVehicleInfo
    TireSize                string
    RequestedType           string
    Options                 []model.TireOption
    InstallationTimeMinutes int
    Message                 string
}

// Lookup resolves plate + season against the tire catalog. The season is
// used as an opaque filter key; an unrecognized season simply matches
// nothing.
func (s *TireInventoryService) Lookup(rawPlate, season string) (*TireInventoryResult, error) {
    key, _ := plate.Normalize(rawPlate)

    entry, found := s.Store.TireCatalog(key)
    if !found {
        options := DefaultCatalog(season)
        return &TireInventoryResult{
            LicensePlate:            key,
            Vehicle:                 nil,
            TireSize:                DefaultTireSize,
            RequestedType:           season,
            Options:                 options,
            InstallationTimeMinutes: InstallationTimeMinutes,
            Message:                 fmt.Sprintf("Vehicle not registered, showing %d standard %s tire options", len(options), season),
        }, nil
    }

    options := filterBySeason(entry.Options, season)
    return &TireInventoryResult{
        LicensePlate:            key,
        Vehicle:                 &model.TireVehicleInfo{Brand: entry.Brand, Model: entry.Model, FuelType: entry.FuelType, TypeCertificate: entry.TypeCertificate},
        TireSize:                entry.TireSize,
        RequestedType:           season,
        Options:                 options,
        InstallationTimeMinutes: InstallationTimeMinutes,
        Message:                 fmt.Sprintf("Found %d %s tire options for %s %s", len(options), season, entry.Brand, entry.Model),
    }, nil
}

func filterBySeason(options []model.TireOption, season string) []model.TireOption {
    filtered := []model.TireOption{}
    for _, opt := range options {
        if opt.Season == season {
            filtered = append(filtered, opt)
        }
    }
    return filtered
}

// DefaultCatalog returns the fixed fallback options for a season. Unknown
// seasons get an empty list.
func DefaultCatalog(season string) []model.TireOption {
    switch season {
    case model.SeasonSummer:
        return []model.TireOption{
            {Season: model.SeasonSummer, Brand: "Michelin", Model: "Primacy 4", PriceCHF: 115, StockCount: 40, Warehouse: "Zentrallager"},
            {Season: model.SeasonSummer, Brand: "Continental", Model: "PremiumContact 6", PriceCHF: 109, StockCount: 32, Warehouse: "Zentrallager"},
        }
    case model.SeasonWinter:
        return []model.TireOption{
            {Season: model.SeasonWinter, Brand: "Continental", Model: "WinterContact TS 870", PriceCHF: 119, StockCount: 36, Warehouse: "Zentrallager"},
            {Season: model.SeasonWinter, Brand: "Michelin", Model: "Alpin 6", PriceCHF: 125, StockCount: 28, Warehouse: "Zentrallager"},
        }
    case model.SeasonAllSeason:
        return []model.TireOption{
            {Season: model.SeasonAllSeason, Brand: "Michelin", Model: "CrossClimate 2", PriceCHF: 139, StockCount: 22, Warehouse: "Zentrallager"},
            {Season: model.SeasonAllSeason, Brand: "Goodyear", Model: "Vector 4Seasons Gen-3", PriceCHF: 132, StockCount: 18, Warehouse: "Zentrallager"},
        }
    }
    return []model.TireOption{}
}
