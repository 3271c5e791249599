package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkillValidate(t *testing.T) {
	cases := []struct {
		name    string
		skill   Skill
		wantErr bool
	}{
		{"valid", Skill{Name: "React", Category: CategoryFrontend, Proficiency: 90}, false},
		{"zero proficiency", Skill{Name: "Git", Category: CategoryTools, Proficiency: 0}, false},
		{"max proficiency", Skill{Name: "HTML5", Category: CategoryFrontend, Proficiency: 100}, false},
		{"proficiency too high", Skill{Name: "React", Category: CategoryFrontend, Proficiency: 150}, true},
		{"proficiency negative", Skill{Name: "React", Category: CategoryFrontend, Proficiency: -5}, true},
		{"unknown category", Skill{Name: "React", Category: "Unknown", Proficiency: 50}, true},
		{"empty category", Skill{Name: "React", Proficiency: 50}, true},
		{"missing name", Skill{Category: CategoryOther, Proficiency: 50}, true},
		{"blank name", Skill{Name: "   ", Category: CategoryOther, Proficiency: 50}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.skill.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidSkillCategory(t *testing.T) {
	for _, c := range SkillCategories {
		assert.True(t, ValidSkillCategory(c), c)
	}
	assert.False(t, ValidSkillCategory("frontend"), "enum is case sensitive")
	assert.False(t, ValidSkillCategory(""))
}
