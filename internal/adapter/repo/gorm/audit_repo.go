package gormrepo

import (
	"context"
	"encoding/json"
	"fmt"

	"swarmdeck/internal/domain/ops"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AuditRepo struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) AuditRepo {
	return AuditRepo{db: db}
}

func (r AuditRepo) Record(ctx context.Context, cmd ops.Command, accepted bool) error {
	payload, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("marshal command: %w", err)
	}
	row := CommandRecord{
		ID:       uuid.NewString(),
		Type:     string(cmd.Kind()),
		Payload:  payload,
		Accepted: accepted,
	}
	return getDBFromCtx(ctx, r.db).Create(&row).Error
}

func (r AuditRepo) ListRecent(ctx context.Context, limit int) ([]CommandRecord, error) {
	rows := []CommandRecord{}
	query := getDBFromCtx(ctx, r.db).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "created_at"}, Desc: true}},
		})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
