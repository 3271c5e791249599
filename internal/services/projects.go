package services

import (
	"context"
	"log"

	"gorm.io/gorm"

	"portfolio-backend/internal/domain"
	apperrors "portfolio-backend/pkg/errors"
)

// ProjectService handles project listing
type ProjectService struct {
	db *gorm.DB
}

// NewProjectService creates a new project service
func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

// List returns all projects in natural store order.
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	var projects []domain.Project

	if err := s.db.WithContext(ctx).Find(&projects).Error; err != nil {
		log.Printf("[PROJECTS] List failed: database error: %v", err)
		return nil, apperrors.Persistence("Error fetching projects", err)
	}

	return projects, nil
}
