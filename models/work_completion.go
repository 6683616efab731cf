package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// SitePhoto is an uploaded photo reference in object storage
type SitePhoto struct {
	URL     string `json:"url"`
	Key     string `json:"key"`
	Caption string `json:"caption,omitempty"`
}

// SitePhotos custom type for JSON storage
type SitePhotos []SitePhoto

func (p SitePhotos) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *SitePhotos) Scan(value interface{}) error {
	if value == nil {
		*p = SitePhotos{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, p)
}

// WorkCompletion records the handover details once site work finishes,
// and backs the completion certificate PDF
type WorkCompletion struct {
	ID              string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ProjectID       string         `json:"projectId" gorm:"type:uuid;not null;uniqueIndex"`
	CompletionDate  time.Time      `json:"completionDate" gorm:"type:date;not null"`
	HandoverDate    *time.Time     `json:"handoverDate" gorm:"type:date;default:null"`
	AcceptanceNotes string         `json:"acceptanceNotes" gorm:"type:text;default:null"`
	SitePhotos      SitePhotos     `json:"sitePhotos" gorm:"type:jsonb;default:'[]'"`
	PreparedByID    string         `json:"preparedById" gorm:"type:uuid;not null"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Project    Project `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
	PreparedBy User    `json:"preparedBy,omitempty" gorm:"foreignKey:PreparedByID"`
}
