package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"portfolio-backend/internal/domain"
)

var seedProjects = []domain.Project{
	{
		Title:        "E-Commerce Platform",
		Description:  "A full-stack e-commerce platform built with MERN stack. Features include user authentication, product management, shopping cart, and payment integration.",
		Technologies: []string{"React", "Node.js", "MongoDB", "Express", "Stripe"},
		GithubURL:    "https://github.com",
		LiveURL:      "https://example.com",
		Featured:     true,
		Category:     "web",
	},
	{
		Title:        "Task Management App",
		Description:  "A collaborative task management application with real-time updates, drag-and-drop functionality, and team collaboration features.",
		Technologies: []string{"React", "Node.js", "Socket.io", "MongoDB"},
		GithubURL:    "https://github.com",
		LiveURL:      "https://example.com",
		Featured:     true,
		Category:     "web",
	},
	{
		Title:        "Social Media Dashboard",
		Description:  "A comprehensive social media analytics dashboard with data visualization, real-time metrics, and interactive charts.",
		Technologies: []string{"React", "Chart.js", "Node.js", "MongoDB"},
		GithubURL:    "https://github.com",
		LiveURL:      "https://example.com",
		Featured:     false,
		Category:     "web",
	},
	{
		Title:        "Weather App",
		Description:  "A beautiful weather application with location-based forecasts, interactive maps, and detailed weather information.",
		Technologies: []string{"React", "OpenWeather API", "CSS3"},
		GithubURL:    "https://github.com",
		LiveURL:      "https://example.com",
		Featured:     false,
		Category:     "web",
	},
}

var seedSkills = []domain.Skill{
	{Name: "React", Category: domain.CategoryFrontend, Proficiency: 90, Icon: "react"},
	{Name: "Node.js", Category: domain.CategoryBackend, Proficiency: 85, Icon: "nodejs"},
	{Name: "JavaScript", Category: domain.CategoryFrontend, Proficiency: 90, Icon: "javascript"},
	{Name: "MongoDB", Category: domain.CategoryDatabase, Proficiency: 80, Icon: "mongodb"},
	{Name: "Express", Category: domain.CategoryBackend, Proficiency: 85, Icon: "express"},
	{Name: "HTML5", Category: domain.CategoryFrontend, Proficiency: 95, Icon: "html5"},
	{Name: "CSS3", Category: domain.CategoryFrontend, Proficiency: 90, Icon: "css3"},
	{Name: "Python", Category: domain.CategoryBackend, Proficiency: 75, Icon: "python"},
	{Name: "Git", Category: domain.CategoryTools, Proficiency: 85, Icon: "git"},
	{Name: "Docker", Category: domain.CategoryTools, Proficiency: 70, Icon: "docker"},
	{Name: "AWS", Category: domain.CategoryTools, Proficiency: 65, Icon: "aws"},
	{Name: "Redux", Category: domain.CategoryFrontend, Proficiency: 80, Icon: "redux"},
	{Name: "Tailwind CSS", Category: domain.CategoryFrontend, Proficiency: 85, Icon: "tailwind"},
	{Name: "Firebase", Category: domain.CategoryDatabase, Proficiency: 75, Icon: "firebase"},
}

// SeedDefaults clears the skill and project collections and inserts the
// default portfolio content.
func SeedDefaults(ctx context.Context, db *gorm.DB) (projects, skills int, err error) {
	tx := db.WithContext(ctx)

	if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&domain.Project{}).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to clear projects: %w", err)
	}
	if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&domain.Skill{}).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to clear skills: %w", err)
	}

	// Insert copies so the package-level seed data never carries store IDs.
	projectRows := make([]domain.Project, len(seedProjects))
	copy(projectRows, seedProjects)
	skillRows := make([]domain.Skill, len(seedSkills))
	copy(skillRows, seedSkills)

	if err := tx.Create(&projectRows).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to insert projects: %w", err)
	}
	if err := tx.Create(&skillRows).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to insert skills: %w", err)
	}

	return len(projectRows), len(skillRows), nil
}
