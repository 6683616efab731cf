package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// QuotationItem is one priced line of scope
type QuotationItem struct {
	Description string  `json:"description"`
	UOM         string  `json:"uom"` // unit of measure
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total"`
}

// QuotationItems custom type for JSON storage
type QuotationItems []QuotationItem

func (q QuotationItems) Value() (driver.Value, error) {
	return json.Marshal(q)
}

func (q *QuotationItems) Scan(value interface{}) error {
	if value == nil {
		*q = QuotationItems{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, q)
}

// Quotation represents a priced offer sent to the client for a project
type Quotation struct {
	ID              string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	QuotationNumber string         `json:"quotationNumber" gorm:"uniqueIndex;not null"`
	ProjectID       string         `json:"projectId" gorm:"type:uuid;not null;index"`
	Items           QuotationItems `json:"items" gorm:"type:jsonb;default:'[]'"`
	Subtotal        float64        `json:"subtotal" gorm:"default:0"`
	VATPercent      float64        `json:"vatPercent" gorm:"default:5"`
	VATAmount       float64        `json:"vatAmount" gorm:"default:0"`
	NetAmount       float64        `json:"netAmount" gorm:"default:0"`
	ValidUntil      *time.Time     `json:"validUntil" gorm:"type:date;default:null"`
	ScopeOfWork     string         `json:"scopeOfWork" gorm:"type:text;default:null"`
	PreparedByID    string         `json:"preparedById" gorm:"type:uuid;not null"`
	Approved        bool           `json:"approved" gorm:"default:false"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Project    Project `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
	PreparedBy User    `json:"preparedBy,omitempty" gorm:"foreignKey:PreparedByID"`
}
