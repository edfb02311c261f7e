package seed

import (
	"context"
	_ "embed"
	"fmt"

	"talento-local-backend/internal/domain"
	"talento-local-backend/pkg/logger"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

//go:embed skills.yaml
var skillsYAML []byte

type catalogFile struct {
	Skills []catalogEntry `yaml:"skills"`
}

type catalogEntry struct {
	Name        string `yaml:"name"`
	Category    string `yaml:"category"`
	Description string `yaml:"description"`
}

// Skills parses the embedded catalog.
func Skills() ([]domain.Skill, error) {
	return parseSkills(skillsYAML)
}

func parseSkills(data []byte) ([]domain.Skill, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse skill catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(file.Skills))
	skills := make([]domain.Skill, 0, len(file.Skills))
	for i, e := range file.Skills {
		category := domain.SkillCategory(e.Category)
		if e.Name == "" || !category.IsValid() {
			return nil, fmt.Errorf("skill catalog entry %d: invalid name %q or category %q", i, e.Name, e.Category)
		}
		if _, dup := seen[e.Name]; dup {
			return nil, fmt.Errorf("skill catalog entry %d: duplicate name %q", i, e.Name)
		}
		seen[e.Name] = struct{}{}

		s := domain.Skill{Name: e.Name, Category: category}
		if e.Description != "" {
			desc := e.Description
			s.Description = &desc
		}
		skills = append(skills, s)
	}
	return skills, nil
}

// Run upserts the embedded catalog. It is safe to run repeatedly.
func Run(ctx context.Context, repo domain.SkillRepository) error {
	skills, err := Skills()
	if err != nil {
		return err
	}

	created := 0
	for i := range skills {
		skills[i].ID = uuid.NewString()
		isNew, err := repo.UpsertByName(ctx, &skills[i])
		if err != nil {
			return err
		}
		if isNew {
			created++
		}
	}

	logger.Log.Info("skill catalog seeded", "total", len(skills), "created", created)
	return nil
}
