package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garageline/garage-mock-backend/internal/model"
	"github.com/garageline/garage-mock-backend/internal/service"
)

func estimateFixture() map[string]model.ServiceEstimateTemplate {
	return map[string]model.ServiceEstimateTemplate{
		"general_repair": {
			BaseDurationMinutes: 60,
			BasePriceCHF:        80,
			Complexity:          "medium",
			PartsRequired:       []string{"diagnostic equipment"},
			SkillLevel:          "mechanic",
		},
		"oil_change": {
			BaseDurationMinutes: 30,
			BasePriceCHF:        120,
			Complexity:          "low",
			PartsRequired:       []string{"engine oil", "oil filter"},
			SkillLevel:          "junior mechanic",
		},
	}
}

func TestEstimatePremiumBrandMultiplier(t *testing.T) {
	svc := &service.ServiceEstimateService{Store: &fakeStore{services: estimateFixture()}}

	result, err := svc.Estimate("Audi A4", "general_repair", "")
	require.NoError(t, err)

	assert.Equal(t, 72, result.EstimatedDurationMinutes)
	assert.Equal(t, 96, result.EstimatedPriceCHF)
	assert.Equal(t, "medium", result.Complexity)
	assert.Equal(t, "mechanic", result.MechanicSkillRequired)
	assert.Contains(t, result.Message, "72 minutes")
	assert.Contains(t, result.Message, "1.2 hours")
}

func TestEstimateNonPremiumBrandUnchanged(t *testing.T) {
	svc := &service.ServiceEstimateService{Store: &fakeStore{services: estimateFixture()}}

	result, err := svc.Estimate("Toyota Corolla", "oil_change", "makes a rattling noise")
	require.NoError(t, err)

	assert.Equal(t, 30, result.EstimatedDurationMinutes)
	assert.Equal(t, 120, result.EstimatedPriceCHF)
	assert.Equal(t, "makes a rattling noise", result.AdditionalNotes)
}

func TestEstimateUnknownServiceTypeFallsBack(t *testing.T) {
	svc := &service.ServiceEstimateService{Store: &fakeStore{services: estimateFixture()}}

	result, err := svc.Estimate("VW Golf", "flux_capacitor_swap", "")
	require.NoError(t, err)

	// Echoes the requested type but uses the general_repair template.
	assert.Equal(t, "flux_capacitor_swap", result.ServiceType)
	assert.Equal(t, 60, result.EstimatedDurationMinutes)
	assert.Equal(t, 80, result.EstimatedPriceCHF)
}

func TestEstimateNoTemplatesAtAll(t *testing.T) {
	svc := &service.ServiceEstimateService{Store: &fakeStore{services: map[string]model.ServiceEstimateTemplate{}}}

	_, err := svc.Estimate("VW Golf", "oil_change", "")
	assert.Error(t, err)
}

func TestComplexityMultiplier(t *testing.T) {
	tests := []struct {
		model string
		want  float64
	}{
		{"BMW X3", 1.2},
		{"bmw x3", 1.2},
		{"Audi A4", 1.2},
		{"Mercedes GLC", 1.2},
		{"Toyota Corolla", 1.0},
		{"Tesla Model 3", 1.0},
		{"", 1.0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, service.ComplexityMultiplier(tt.model), tt.model)
	}
}
