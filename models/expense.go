package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// LaborItem is the pay breakdown for one worker or driver
type LaborItem struct {
	UserID       string  `json:"userId"`
	Name         string  `json:"name"`
	ProfileImage string  `json:"profileImage,omitempty"`
	DaysPresent  int     `json:"daysPresent"`
	DailySalary  float64 `json:"dailySalary"`
	TotalSalary  float64 `json:"totalSalary"`
}

// LaborDetails is the derived labor-cost breakdown for a project. An
// Expense freezes one of these as a snapshot at creation/update time;
// the live aggregation is always recomputed from attendance.
type LaborDetails struct {
	Workers        []LaborItem `json:"workers"`
	Driver         *LaborItem  `json:"driver,omitempty"`
	TotalLaborCost float64     `json:"totalLaborCost"`
}

func (d LaborDetails) Value() (driver.Value, error) {
	return json.Marshal(d)
}

func (d *LaborDetails) Scan(value interface{}) error {
	if value == nil {
		*d = LaborDetails{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, d)
}

// ExpenseItem is a single material or miscellaneous cost line
type ExpenseItem struct {
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Amount      float64   `json:"amount"`
	ReceiptURL  string    `json:"receiptUrl,omitempty"`
	ReceiptKey  string    `json:"receiptKey,omitempty"`
}

// ExpenseItems custom type for JSON storage
type ExpenseItems []ExpenseItem

func (e ExpenseItems) Value() (driver.Value, error) {
	return json.Marshal(e)
}

func (e *ExpenseItems) Scan(value interface{}) error {
	if value == nil {
		*e = ExpenseItems{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, e)
}

// Expense represents the full cost picture for a project: materials,
// miscellaneous spend and the frozen labor snapshot
type Expense struct {
	ID                string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ProjectID         string         `json:"projectId" gorm:"type:uuid;not null;index"`
	Materials         ExpenseItems   `json:"materials" gorm:"type:jsonb;default:'[]'"`
	TotalMaterialCost float64        `json:"totalMaterialCost" gorm:"default:0"`
	Miscellaneous     ExpenseItems   `json:"miscellaneous" gorm:"type:jsonb;default:'[]'"`
	TotalMiscCost     float64        `json:"totalMiscCost" gorm:"default:0"`
	Labor             LaborDetails   `json:"labor" gorm:"type:jsonb;default:'{}'"`
	TotalLaborCost    float64        `json:"totalLaborCost" gorm:"default:0"`
	GrandTotal        float64        `json:"grandTotal" gorm:"default:0"`
	CreatedByID       string         `json:"createdById" gorm:"type:uuid;not null"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
	DeletedAt         gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Project   Project `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
	CreatedBy User    `json:"createdBy,omitempty" gorm:"foreignKey:CreatedByID"`
}
