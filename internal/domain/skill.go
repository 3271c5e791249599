package domain

import (
	"fmt"
	"strings"
	"time"
)

// Skill categories accepted by the store.
const (
	CategoryFrontend = "Frontend"
	CategoryBackend  = "Backend"
	CategoryDatabase = "Database"
	CategoryTools    = "Tools"
	CategoryOther    = "Other"
)

// SkillCategories lists the valid category values in display order.
var SkillCategories = []string{
	CategoryFrontend,
	CategoryBackend,
	CategoryDatabase,
	CategoryTools,
	CategoryOther,
}

const (
	// DefaultProficiency is applied when a skill is created without one.
	DefaultProficiency = 50
	minProficiency     = 0
	maxProficiency     = 100
)

// Skill represents a single portfolio skill entry
type Skill struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Category    string    `gorm:"not null;index" json:"category"`
	Proficiency int       `gorm:"default:50" json:"proficiency"`
	Icon        string    `gorm:"default:''" json:"icon"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for Skill
func (Skill) TableName() string {
	return "skills"
}

// Validate checks the enum and range constraints before the row reaches the
// store. Rows violating them are never persisted.
func (s *Skill) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if !ValidSkillCategory(s.Category) {
		return fmt.Errorf("category must be one of: %s", strings.Join(SkillCategories, ", "))
	}
	if s.Proficiency < minProficiency || s.Proficiency > maxProficiency {
		return fmt.Errorf("proficiency must be between %d and %d", minProficiency, maxProficiency)
	}
	return nil
}

// ValidSkillCategory reports whether category is one of the enumerated values.
func ValidSkillCategory(category string) bool {
	for _, c := range SkillCategories {
		if c == category {
			return true
		}
	}
	return false
}
