package services

import (
	"context"
	"log"

	"gorm.io/gorm"

	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/metrics"
	apperrors "portfolio-backend/pkg/errors"
)

// SkillService handles skill listing and creation
type SkillService struct {
	db *gorm.DB
}

// NewSkillService creates a new skill service
func NewSkillService(db *gorm.DB) *SkillService {
	return &SkillService{db: db}
}

// List returns all skills sorted by category ascending, then proficiency
// descending. Ties keep natural store order.
func (s *SkillService) List(ctx context.Context) ([]domain.Skill, error) {
	var skills []domain.Skill

	if err := s.db.WithContext(ctx).
		Order("category ASC").
		Order("proficiency DESC").
		Find(&skills).Error; err != nil {
		log.Printf("[SKILLS] List failed: database error: %v", err)
		return nil, apperrors.Persistence("Error fetching skills", err)
	}

	return skills, nil
}

// SkillInput carries the fields for a new skill. Proficiency defaults to 50
// when omitted, icon to "".
type SkillInput struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Proficiency *int   `json:"proficiency"`
	Icon        string `json:"icon"`
}

// Create validates and persists a new skill. Rows violating the category
// enum or proficiency range never reach the store.
func (s *SkillService) Create(ctx context.Context, input SkillInput) (*domain.Skill, error) {
	skill := &domain.Skill{
		Name:        input.Name,
		Category:    input.Category,
		Proficiency: domain.DefaultProficiency,
		Icon:        input.Icon,
	}
	if input.Proficiency != nil {
		skill.Proficiency = *input.Proficiency
	}

	if err := skill.Validate(); err != nil {
		log.Printf("[SKILLS] Create rejected: %v", err)
		return nil, apperrors.Validation(err.Error())
	}

	if err := s.db.WithContext(ctx).Create(skill).Error; err != nil {
		log.Printf("[SKILLS] Create failed: database error: %v", err)
		return nil, apperrors.Persistence("Error saving skill", err)
	}

	log.Printf("[SKILLS] Created skill %q (%s, %d)", skill.Name, skill.Category, skill.Proficiency)
	metrics.RecordSkillCreation()
	return skill, nil
}
