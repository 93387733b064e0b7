package model

// Tire seasons as they appear in fixture data and requests.
const (
    SeasonSummer    = "summer"
    SeasonWinter    = "winter"
    SeasonAllSeason = "allseason"
)

type TireOption struct {
    Season     string  `json:"season"`
    Brand      string  `json:"brand"`
    Model      string  `json:"model"`
    PriceCHF   float64 `json:"price_chf"`
    StockCount int     `json:"stock_count"`
    Warehouse  string  `json:"warehouse"`
}

// TireCatalogEntry is one row of the tire-inventory mock, keyed by plate.
type TireCatalogEntry struct {
    Plate           string       `json:"plate"`
    Brand           string       `json:"brand"`
    Model           string       `json:"model"`
    FuelType        string       `json:"fuel_type"`
    TypeCertificate string       `json:"type_certificate"`
    TireSize        string       `json:"tire_size"`
    Options         []TireOption `json:"options"`
}

// TireVehicleInfo is the vehicle metadata subset echoed by the
// tire-inventory endpoint.
type TireVehicleInfo struct {
    Brand           string `json:"brand"`
    Model           string `json:"model"`
    FuelType        string `json:"fuel_type"`
    TypeCertificate string `json:"type_certificate"`
}
