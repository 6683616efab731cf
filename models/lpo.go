package models

import (
	"time"

	"gorm.io/gorm"
)

// LPO represents a Local Purchase Order issued by the client authorizing work
type LPO struct {
	ID          string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	LPONumber   string         `json:"lpoNumber" gorm:"uniqueIndex;not null"`
	ProjectID   string         `json:"projectId" gorm:"type:uuid;not null;index"`
	LPODate     time.Time      `json:"lpoDate" gorm:"type:date;not null"`
	Supplier    string         `json:"supplier" gorm:"default:null"`
	Amount      float64        `json:"amount" gorm:"default:0"`
	DocumentURL string         `json:"documentUrl" gorm:"default:null"` // uploaded scan in object storage
	DocumentKey string         `json:"documentKey" gorm:"default:null"`
	CreatedByID string         `json:"createdById" gorm:"type:uuid;not null"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
}
