package model

import "time"

// CustomerRecord is one CRM row, keyed by license plate in the fixture store.
type CustomerRecord struct {
    CustomerID string `json:"customer_id"`
    Name       string `json:"name"`
    Phone      string `json:"phone"`
    Email      string `json:"email,omitempty"`
}

type VehicleRecord struct {
    Brand  string `json:"brand"`
    Model  string `json:"model"`
    Year   int    `json:"year"`
    VIN    string `json:"vin"`
    Engine string `json:"engine,omitempty"`
}

type VisitHistory struct {
    VisitCount int       `json:"visit_count"`
    LastVisit  time.Time `json:"last_visit"`
}

// CRMRecord bundles everything the CRM mock knows about one plate.
type CRMRecord struct {
    Customer     CustomerRecord `json:"customer"`
    Vehicle      VehicleRecord  `json:"vehicle"`
    VisitHistory *VisitHistory  `json:"visit_history,omitempty"`
}

// CustomerProjection is the joined customer+vehicle view returned by the
// customer-lookup endpoint. Contact fields are pointers so an unknown plate
// can carry explicit nulls.
type CustomerProjection struct {
    CustomerID          string        `json:"customer_id"`
    Name                *string       `json:"name"`
    Phone               *string       `json:"phone"`
    Email               *string       `json:"email"`
    Vehicle             VehicleRecord `json:"vehicle"`
    IsReturningCustomer bool          `json:"is_returning_customer"`
    TotalVisits         int           `json:"total_visits"`
    LastVisit           string        `json:"last_visit,omitempty"`
}
