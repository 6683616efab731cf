package models

import (
	"time"

	"gorm.io/gorm"
)

// Project represents a contracted job as it moves through the lifecycle
type Project struct {
	ID            string        `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ProjectNumber string        `json:"projectNumber" gorm:"uniqueIndex;not null"` // business identifier
	Name          string        `json:"name" gorm:"not null"`
	Description   string        `json:"description" gorm:"default:null"`
	ClientID      string        `json:"clientId" gorm:"type:uuid;not null;index"`
	Location      string        `json:"location" gorm:"default:null"`
	Building      string        `json:"building" gorm:"default:null"`
	Apartment     string        `json:"apartment" gorm:"default:null"`
	Status        ProjectStatus `json:"status" gorm:"type:varchar(30);default:'draft';index"`
	Progress      int           `json:"progress" gorm:"default:0"` // 0-100

	AssignedEngineerID *string `json:"assignedEngineerId" gorm:"type:uuid;default:null"`
	AssignedDriverID   *string `json:"assignedDriverId" gorm:"type:uuid;default:null"`
	CreatedByID        string  `json:"createdById" gorm:"type:uuid;not null"`
	UpdatedByID        string  `json:"updatedById" gorm:"type:uuid;default:null"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Client           Client `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	AssignedEngineer *User  `json:"assignedEngineer,omitempty" gorm:"foreignKey:AssignedEngineerID"`
	AssignedDriver   *User  `json:"assignedDriver,omitempty" gorm:"foreignKey:AssignedDriverID"`
	AssignedWorkers  []User `json:"assignedWorkers,omitempty" gorm:"many2many:project_workers;"`
}
