package gormrepo

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&TaskTemplate{}, &CommandRecord{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
