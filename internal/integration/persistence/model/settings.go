package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifetracker/backend/internal/domain/entity"
)

// SalarySettingsModel represents the salary_settings table in the database.
// The table holds at most one row.
type SalarySettingsModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	MonthlySalary decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	SalaryDate    int             `gorm:"not null;default:25"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the SalarySettingsModel.
func (SalarySettingsModel) TableName() string {
	return "salary_settings"
}

// ToEntity converts a SalarySettingsModel to a domain SalarySettings entity.
func (m *SalarySettingsModel) ToEntity() *entity.SalarySettings {
	return &entity.SalarySettings{
		ID:            m.ID,
		MonthlySalary: m.MonthlySalary,
		SalaryDate:    m.SalaryDate,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// SalarySettingsFromEntity creates a SalarySettingsModel from a domain SalarySettings entity.
func SalarySettingsFromEntity(s *entity.SalarySettings) *SalarySettingsModel {
	return &SalarySettingsModel{
		ID:            s.ID,
		MonthlySalary: s.MonthlySalary,
		SalaryDate:    s.SalaryDate,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

// HealthSettingsModel represents the health_settings table in the database.
// The table holds at most one row.
type HealthSettingsModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Weight       *float64   `gorm:"type:decimal(5,2)"`
	Height       *float64   `gorm:"type:decimal(5,2)"`
	BirthDate    *time.Time `gorm:"type:date"`
	TargetWeight *float64   `gorm:"type:decimal(5,2)"`
	CreatedAt    time.Time  `gorm:"not null"`
	UpdatedAt    time.Time  `gorm:"not null"`
}

// TableName returns the table name for the HealthSettingsModel.
func (HealthSettingsModel) TableName() string {
	return "health_settings"
}

// ToEntity converts a HealthSettingsModel to a domain HealthSettings entity.
func (m *HealthSettingsModel) ToEntity() *entity.HealthSettings {
	return &entity.HealthSettings{
		ID:           m.ID,
		Weight:       m.Weight,
		Height:       m.Height,
		BirthDate:    m.BirthDate,
		TargetWeight: m.TargetWeight,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// HealthSettingsFromEntity creates a HealthSettingsModel from a domain HealthSettings entity.
func HealthSettingsFromEntity(s *entity.HealthSettings) *HealthSettingsModel {
	return &HealthSettingsModel{
		ID:           s.ID,
		Weight:       s.Weight,
		Height:       s.Height,
		BirthDate:    s.BirthDate,
		TargetWeight: s.TargetWeight,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

// AllModels lists every model AutoMigrate creates.
func AllModels() []interface{} {
	return []interface{}{
		&TaskModel{},
		&HabitModel{},
		&HabitCompletionModel{},
		&GoalModel{},
		&TimeEntryModel{},
		&ExpenseModel{},
		&WishlistItemModel{},
		&DebtModel{},
		&DebtPaymentModel{},
		&InvestmentModel{},
		&SalarySettingsModel{},
		&HealthSettingsModel{},
	}
}
