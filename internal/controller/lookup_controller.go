package controller

import (
    "encoding/json"
    "log"
    "net/http"
    "strings"

    appErrors "github.com/garageline/garage-mock-backend/internal/errors"
    "github.com/garageline/garage-mock-backend/internal/service"
)

// LookupController holds the three mock lookup endpoints.
type LookupController struct {
    CustomerService *service.CustomerLookupService
    TireService     *service.TireInventoryService
    EstimateService *service.ServiceEstimateService
}

// CustomerLookup handles POST /api/customer-lookup
func (c *LookupController) CustomerLookup(w http.ResponseWriter, r *http.Request) {
    var body struct {
        LicensePlate string `json:"license_plate"`
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        writeError(w, http.StatusBadRequest, "invalid request body")
        return
    }
    if strings.TrimSpace(body.LicensePlate) == "" {
        writeError(w, http.StatusBadRequest, appErrors.NewMissingField("license_plate").Error())
        return
    }

    result, err := c.CustomerService.Lookup(body.LicensePlate)
    if err != nil {
        log.Println("customer lookup failed:", err)
        writeInternal(w, err)
        return
    }

    writeJSON(w, http.StatusOK, map[string]any{
        "success":  true,
        "customer": result.Customer,
        "message":  result.Message,
    })
}

// TireInventory handles POST /api/tire-inventory
func (c *LookupController) TireInventory(w http.ResponseWriter, r *http.Request) {
    var body struct {
        LicensePlate string `json:"license_plate"`
        TireType     string `json:"tire_type"`
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        writeError(w, http.StatusBadRequest, "invalid request body")
        return
    }
    if strings.TrimSpace(body.LicensePlate) == "" {
        writeError(w, http.StatusBadRequest, appErrors.NewMissingField("license_plate").Error())
        return
    }
    if strings.TrimSpace(body.TireType) == "" {
        writeError(w, http.StatusBadRequest, appErrors.NewMissingField("tire_type").Error())
        return
    }

    result, err := c.TireService.Lookup(body.LicensePlate, body.TireType)
    if err != nil {
        log.Println("tire inventory lookup failed:", err)
        writeInternal(w, err)
        return
    }

    writeJSON(w, http.StatusOK, map[string]any{
        "success":                   true,
        "license_plate":             result.LicensePlate,
        "vehicle":                   result.Vehicle,
        "tire_size":                 result.TireSize,
        "requested_type":            result.RequestedType,
        "options":                   result.Options,
        "installation_time_minutes": result.InstallationTimeMinutes,
        "message":                   result.Message,
    })
}

// ServiceEstimate handles POST /api/service-estimate
func (c *LookupController) ServiceEstimate(w http.ResponseWriter, r *http.Request) {
    var body struct {
        VehicleModel    string `json:"vehicle_model"`
        ServiceType     string `json:"service_type"`
        AdditionalNotes string `json:"additional_notes"`
    }
    if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
        writeError(w, http.StatusBadRequest, "invalid request body")
        return
    }
    if strings.TrimSpace(body.VehicleModel) == "" {
        writeError(w, http.StatusBadRequest, appErrors.NewMissingField("vehicle_model").Error())
        return
    }
    if strings.TrimSpace(body.ServiceType) == "" {
        writeError(w, http.StatusBadRequest, appErrors.NewMissingField("service_type").Error())
        return
    }

    result, err := c.EstimateService.Estimate(body.VehicleModel, body.ServiceType, body.AdditionalNotes)
    if err != nil {
        log.Println("service estimate failed:", err)
        writeInternal(w, err)
        return
    }

    writeJSON(w, http.StatusOK, map[string]any{
        "success":                    true,
        "service_type":               result.ServiceType,
        "vehicle_model":              result.VehicleModel,
        "estimated_duration_minutes": result.EstimatedDurationMinutes,
        "complexity":                 result.Complexity,
        "estimated_price_chf":        result.EstimatedPriceCHF,
        "parts_required":             result.PartsRequired,
        "mechanic_skill_required":    result.MechanicSkillRequired,
        "additional_notes":           result.AdditionalNotes,
        "message":                    result.Message,
    })
}
