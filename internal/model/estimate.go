package model

// ServiceEstimateTemplate holds the base figures for one service type.
type ServiceEstimateTemplate struct {
    BaseDurationMinutes int      `json:"base_duration_minutes"`
    BasePriceCHF        int      `json:"base_price_chf"`
    Complexity          string   `json:"complexity"`
    PartsRequired       []string `json:"parts_required"`
    SkillLevel          string   `json:"skill_level"`
}
