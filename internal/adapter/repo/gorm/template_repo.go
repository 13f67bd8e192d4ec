package gormrepo

import (
	"context"
	"errors"

	"swarmdeck/internal/app/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TemplateRepo struct {
	db *gorm.DB
}

func NewTemplateRepo(db *gorm.DB) TemplateRepo {
	return TemplateRepo{db: db}
}

func (r TemplateRepo) List(ctx context.Context) ([]string, error) {
	var names []string
	err := getDBFromCtx(ctx, r.db).
		Model(&TaskTemplate{}).
		Order("name").
		Pluck("name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

func (r TemplateRepo) Content(ctx context.Context, name string) (string, error) {
	var m TaskTemplate
	if err := getDBFromCtx(ctx, r.db).Where("name = ?", name).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ports.ErrNotFound
		}
		return "", err
	}
	return m.Content, nil
}

// Seed inserts the given templates, leaving already-present names untouched.
func (r TemplateRepo) Seed(ctx context.Context, templates map[string]string) error {
	if len(templates) == 0 {
		return nil
	}
	rows := make([]TaskTemplate, 0, len(templates))
	for name, content := range templates {
		rows = append(rows, TaskTemplate{Name: name, Content: content})
	}
	return getDBFromCtx(ctx, r.db).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
}
