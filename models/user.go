package models

import (
	"time"

	"gorm.io/gorm"
)

// Role represents user role types
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEngineer Role = "engineer"
	RoleFinance  Role = "finance"
	RoleWorker   Role = "worker"
	RoleDriver   Role = "driver"
)

// User represents a staff member in the system
type User struct {
	ID           string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Email        string         `json:"email" gorm:"uniqueIndex;not null"`
	Password     string         `json:"-" gorm:"not null"` // Password is not exposed in JSON
	Name         string         `json:"name" gorm:"not null"`
	Phone        string         `json:"phone" gorm:"default:null"`
	Role         Role           `json:"role" gorm:"type:varchar(10);default:'worker'"`
	DailySalary  float64        `json:"dailySalary" gorm:"default:0"` // workers and drivers only
	ProfileImage string         `json:"profileImage" gorm:"default:null"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}
