package models

import (
	"time"
)

// AttendanceType distinguishes project-scoped attendance from normal
// (office) attendance
type AttendanceType string

const (
	AttendanceTypeProject AttendanceType = "project"
	AttendanceTypeNormal  AttendanceType = "normal"
)

// Attendance is a per-user, per-day presence flag, optionally scoped to
// a project. Records are immutable once created; the (project, user, date)
// tuple is unique for project attendance.
type Attendance struct {
	ID         string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ProjectID  *string        `json:"projectId" gorm:"type:uuid;default:null;index;uniqueIndex:idx_project_user_date"`
	UserID     string         `json:"userId" gorm:"type:uuid;not null;index;uniqueIndex:idx_project_user_date"`
	Date       time.Time      `json:"date" gorm:"type:date;not null;index;uniqueIndex:idx_project_user_date"`
	Present    bool           `json:"present" gorm:"not null"`
	MarkedByID string         `json:"markedById" gorm:"type:uuid;not null"`
	Type       AttendanceType `json:"type" gorm:"type:varchar(10);default:'project'"`
	CreatedAt  time.Time      `json:"createdAt"`

	// Relations
	Project  *Project `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
	User     User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	MarkedBy User     `json:"markedBy,omitempty" gorm:"foreignKey:MarkedByID"`
}
