package service

import (
    "fmt"
    "math"
    "strings"

    "github.com/garageline/garage-mock-backend/internal/fixture"
)

// FallbackServiceType is used when the requested service type has no
// template.
const FallbackServiceType = "general_repair"

// premiumBrands get a 1.2x complexity multiplier on duration and price.
var premiumBrands = []string{"bmw", "audi", "mercedes"}

// ServiceEstimateService computes duration/price estimates from the
// service-type templates.
type ServiceEstimateService struct {
    Store fixture.StoreInterface
}

// Result struct for Estimate
type ServiceEstimateResult struct {
    ServiceType              string
    VehicleModel             string
    EstimatedDurationMinutes int
    Complexity               string
    EstimatedPriceCHF        int
    PartsRequired            []string
    MechanicSkillRequired    string
    AdditionalNotes          string
    Message                  string
}

func (s *ServiceEstimateService) Estimate(vehicleModel, serviceType, additionalNotes string) (*ServiceEstimateResult, error) {
    tpl, ok := s.Store.ServiceTemplate(serviceType)
    if !ok {
        tpl, ok = s.Store.ServiceTemplate(FallbackServiceType)
        if !ok {
            return nil, fmt.Errorf("no template for service type %q and no %s fallback", serviceType, FallbackServiceType)
        }
    }

    multiplier := ComplexityMultiplier(vehicleModel)
    duration := int(math.Round(float64(tpl.BaseDurationMinutes) * multiplier))
    price := int(math.Round(float64(tpl.BasePriceCHF) * multiplier))

    return &ServiceEstimateResult{
        ServiceType:              serviceType,
        VehicleModel:             vehicleModel,
        EstimatedDurationMinutes: duration,
        Complexity:               tpl.Complexity,
        EstimatedPriceCHF:        price,
        PartsRequired:            tpl.PartsRequired,
        MechanicSkillRequired:    tpl.SkillLevel,
        AdditionalNotes:          additionalNotes,
        Message:                  fmt.Sprintf("Estimated duration: %d minutes (~%.1f hours)", duration, float64(duration)/60.0),
    }, nil
}

// ComplexityMultiplier is 1.2 when the vehicle model names a premium brand,
// 1.0 otherwise.
func ComplexityMultiplier(vehicleModel string) float64 {
    lower := strings.ToLower(vehicleModel)
    for _, brand := range premiumBrands {
        if strings.Contains(lower, brand) {
            return 1.2
        }
    }
    return 1.0
}
