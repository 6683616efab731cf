package models

import (
	"time"

	"gorm.io/gorm"
)

// Client represents a customer the contractor works for
type Client struct {
	ID         string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ClientName string         `json:"clientName" gorm:"not null"`
	Email      string         `json:"email" gorm:"default:null"`
	Phone      string         `json:"phone" gorm:"default:null"`
	Address    string         `json:"address" gorm:"default:null"`
	TRN        string         `json:"trn" gorm:"default:null"` // tax registration number
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Projects []Project `json:"projects,omitempty" gorm:"foreignKey:ClientID"`
}
