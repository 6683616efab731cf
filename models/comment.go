package models

import (
	"time"
)

// Comment is an audit note on a project. Status transitions write one
// automatically with ActionType set; users can also add free-form notes.
type Comment struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ProjectID  string    `json:"projectId" gorm:"type:uuid;not null;index"`
	UserID     string    `json:"userId" gorm:"type:uuid;not null"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	ActionType string    `json:"actionType" gorm:"default:null"` // e.g. status_change
	CreatedAt  time.Time `json:"createdAt"`

	// Relations
	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
	User    User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
