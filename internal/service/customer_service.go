package service

import (
    "fmt"
    "strings"
    "time"

    "github.com/garageline/garage-mock-backend/internal/fixture"
    "github.com/garageline/garage-mock-backend/internal/model"
    "github.com/garageline/garage-mock-backend/internal/plate"
)

// CustomerLookupService resolves a license plate against the CRM table,
// synthesizing a new-customer placeholder when the plate is unknown.
type CustomerLookupService struct {
    Store fixture.StoreInterface
}

// Result struct for Lookup
type CustomerLookupResult struct {
    Customer model.CustomerProjection
    Message  string
}

func (s *CustomerLookupService) Lookup(rawPlate string) (*CustomerLookupResult, error) {
    key, ok := plate.Normalize(rawPlate)
    if !ok {
        // Controllers reject empty plates before calling; an all-separator
        // plate lands here and is treated as unknown.
        return &CustomerLookupResult{
            Customer: NewCustomerPlaceholder(time.Now()),
            Message:  "No customer found for this license plate, created new customer profile",
        }, nil
    }

    rec, found := s.Store.Customer(key)
    if !found {
        return &CustomerLookupResult{
            Customer: NewCustomerPlaceholder(time.Now()),
            Message:  "No customer found for this license plate, created new customer profile",
        }, nil
    }

    projection := projectCustomer(rec)
    return &CustomerLookupResult{
        Customer: projection,
        Message:  fmt.Sprintf("Customer %s found for plate %s", rec.Customer.Name, key),
    }, nil
}

func projectCustomer(rec model.CRMRecord) model.CustomerProjection {
    email := rec.Customer.Email
    if email == "" {
        email = DeriveEmail(rec.Customer.Name)
    }

    // A record with no visit history still belongs to a returning customer;
    // assume a single prior visit.
    totalVisits := 1
    lastVisit := ""
    if h := rec.VisitHistory; h != nil {
        totalVisits = h.VisitCount
        lastVisit = h.LastVisit.Format(time.RFC3339)
    }

    name := rec.Customer.Name
    phone := rec.Customer.Phone
    return model.CustomerProjection{
        CustomerID:          rec.Customer.CustomerID,
        Name:                &name,
        Phone:               &phone,
        Email:               &email,
        Vehicle:             rec.Vehicle,
        IsReturningCustomer: true,
        TotalVisits:         totalVisits,
        LastVisit:           lastVisit,
    }
}

// NewCustomerPlaceholder synthesizes the identity returned for an unknown
// plate: a timestamp-derived id, null contact fields, and an "Unknown"
// vehicle.
func NewCustomerPlaceholder(now time.Time) model.CustomerProjection {
    return model.CustomerProjection{
        CustomerID:          fmt.Sprintf("CUST-NEW-%d", now.Unix()),
        Name:                nil,
        Phone:               nil,
        Email:               nil,
        Vehicle:             model.VehicleRecord{Brand: "Unknown", Model: "Unknown"},
        IsReturningCustomer: false,
        TotalVisits:         0,
    }
}

// DeriveEmail builds a synthetic address from a customer name
// ("Lara Schmid" => "lara.schmid@example.ch").
func DeriveEmail(name string) string {
    local := strings.ToLower(strings.TrimSpace(name))
    local = strings.Join(strings.Fields(local), ".")
    return local + "@example.ch"
}
