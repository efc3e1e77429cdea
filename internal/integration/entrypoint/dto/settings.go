package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lifetracker/backend/internal/domain/entity"
)

// SalarySettingsRequest represents the request body for salary settings.
type SalarySettingsRequest struct {
	MonthlySalary *decimal.Decimal `json:"monthly_salary"`
	SalaryDate    *int             `json:"salary_date,omitempty"`
}

// SalarySettingsResponse represents the salary settings row.
type SalarySettingsResponse struct {
	ID            string          `json:"id"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	SalaryDate    int             `json:"salary_date"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// SalarySettingsEnvelope wraps the salary settings, null when never saved.
type SalarySettingsEnvelope struct {
	Settings *SalarySettingsResponse `json:"settings"`
}

// HealthSettingsRequest represents the request body for health settings.
type HealthSettingsRequest struct {
	Weight       *float64 `json:"weight"`
	Height       *float64 `json:"height"`
	BirthDate    *string  `json:"birth_date"`
	TargetWeight *float64 `json:"target_weight"`
}

// HealthSettingsResponse represents the health settings row.
type HealthSettingsResponse struct {
	ID           string    `json:"id"`
	Weight       *float64  `json:"weight"`
	Height       *float64  `json:"height"`
	BirthDate    *string   `json:"birth_date"`
	TargetWeight *float64  `json:"target_weight"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HealthSettingsEnvelope wraps the health settings, null when never saved.
type HealthSettingsEnvelope struct {
	Settings *HealthSettingsResponse `json:"settings"`
}

// ToSalarySettingsResponse converts salary settings, keeping nil as nil.
func ToSalarySettingsResponse(s *entity.SalarySettings) *SalarySettingsResponse {
	if s == nil {
		return nil
	}
	return &SalarySettingsResponse{
		ID:            s.ID.String(),
		MonthlySalary: s.MonthlySalary,
		SalaryDate:    s.SalaryDate,
		UpdatedAt:     s.UpdatedAt,
	}
}

// ToHealthSettingsResponse converts health settings, keeping nil as nil.
func ToHealthSettingsResponse(s *entity.HealthSettings) *HealthSettingsResponse {
	if s == nil {
		return nil
	}
	return &HealthSettingsResponse{
		ID:           s.ID.String(),
		Weight:       s.Weight,
		Height:       s.Height,
		BirthDate:    FormatDate(s.BirthDate),
		TargetWeight: s.TargetWeight,
		UpdatedAt:    s.UpdatedAt,
	}
}
