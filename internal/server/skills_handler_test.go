package server

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/services"
	apperrors "portfolio-backend/pkg/errors"
)

func TestSkillList_ReturnsSortedSkills(t *testing.T) {
	mocks := &testMocks{
		skills: &mockSkillService{
			listFunc: func(ctx context.Context) ([]domain.Skill, error) {
				return []domain.Skill{
					{ID: 3, Name: "React", Category: domain.CategoryFrontend, Proficiency: 90},
					{ID: 2, Name: "CSS3", Category: domain.CategoryFrontend, Proficiency: 50},
					{ID: 1, Name: "Git", Category: domain.CategoryTools, Proficiency: 10},
				}, nil
			},
		},
	}
	handler := newTestServer(t, mocks)

	rec := doRequest(handler, jsonRequest(http.MethodGet, "/api/skills", ""))

	require.Equal(t, http.StatusOK, rec.Code)

	var skills []domain.Skill
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&skills))
	require.Len(t, skills, 3)
	assert.Equal(t, "React", skills[0].Name)
	assert.Equal(t, "Git", skills[2].Name)
}

func TestSkillCreate_Success(t *testing.T) {
	var got services.SkillInput
	mocks := &testMocks{
		skills: &mockSkillService{
			createFunc: func(ctx context.Context, input services.SkillInput) (*domain.Skill, error) {
				got = input
				return &domain.Skill{ID: 7, Name: input.Name, Category: input.Category, Proficiency: 80}, nil
			},
		},
	}
	handler := newTestServer(t, mocks)

	body := `{"name":"Redux","category":"Frontend","proficiency":80,"icon":"redux"}`
	rec := doRequest(handler, jsonRequest(http.MethodPost, "/api/skills", body))

	require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())

	var created domain.Skill
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.Equal(t, uint(7), created.ID)

	assert.Equal(t, "Redux", got.Name)
	assert.Equal(t, "Frontend", got.Category)
	require.NotNil(t, got.Proficiency)
	assert.Equal(t, 80, *got.Proficiency)
}

func TestSkillCreate_ValidationFailure(t *testing.T) {
	mocks := &testMocks{
		skills: &mockSkillService{
			createFunc: func(ctx context.Context, input services.SkillInput) (*domain.Skill, error) {
				return nil, apperrors.Validation("proficiency must be between 0 and 100")
			},
		},
	}
	handler := newTestServer(t, mocks)

	body := `{"name":"React","category":"Frontend","proficiency":150}`
	rec := doRequest(handler, jsonRequest(http.MethodPost, "/api/skills", body))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "proficiency must be between 0 and 100", resp["message"])
}

func TestProjectList(t *testing.T) {
	mocks := &testMocks{
		projects: &mockProjectService{
			listFunc: func(ctx context.Context) ([]domain.Project, error) {
				return []domain.Project{
					{ID: 1, Title: "E-Commerce Platform", Technologies: []string{"React", "Node.js"}, Featured: true},
				}, nil
			},
		},
	}
	handler := newTestServer(t, mocks)

	rec := doRequest(handler, jsonRequest(http.MethodGet, "/api/projects", ""))

	require.Equal(t, http.StatusOK, rec.Code)

	var projects []domain.Project
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&projects))
	require.Len(t, projects, 1)
	assert.Equal(t, "E-Commerce Platform", projects[0].Title)
	assert.Equal(t, []string{"React", "Node.js"}, projects[0].Technologies)
}
