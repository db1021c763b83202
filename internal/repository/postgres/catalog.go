package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/aleviannaf/laboratory-app/internal/model"
	"github.com/aleviannaf/laboratory-app/internal/repository"
)

type catalogRepository struct {
	db *sqlx.DB
}

func NewCatalogRepository(db *sqlx.DB) repository.CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) ListExamCatalog(ctx context.Context) ([]model.ExamCatalogItemDTO, error) {
	var items []model.ExamCatalogItemDTO
	err := r.db.SelectContext(ctx, &items, `
		SELECT c.id, c.name, c.category_id, cat.title AS category_title, c.price_cents
		FROM exam_catalog c
		JOIN exam_categories cat ON cat.id = c.category_id
		ORDER BY cat.position ASC, c.name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list exam catalog: %w", err)
	}
	return items, nil
}
