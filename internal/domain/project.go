package domain

import (
	"time"
)

// Project represents an external-facing portfolio project entry.
// Technologies is an ordered list, stored as a JSON column.
type Project struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	Technologies []string  `gorm:"serializer:json" json:"technologies"`
	GithubURL    string    `json:"githubUrl"`
	LiveURL      string    `json:"liveUrl"`
	Featured     bool      `gorm:"default:false" json:"featured"`
	Category     string    `json:"category"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName specifies the table name for Project
func (Project) TableName() string {
	return "projects"
}
