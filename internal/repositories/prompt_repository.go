package repositories

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"thumbforge/internal/models/db_models"
)

type IPromptRepository interface {
	Create(ctx context.Context, prompt *db_models.PromptTemplate) error
	List(ctx context.Context, category string, page, pageSize int) ([]db_models.PromptTemplate, error)
	SearchByVector(ctx context.Context, vector pgvector.Vector, limit int) ([]db_models.PromptTemplate, error)
}

type PromptRepository struct {
	db *gorm.DB
}

func NewPromptRepository(db *gorm.DB) IPromptRepository {
	return &PromptRepository{db: db}
}

func (p *PromptRepository) Create(ctx context.Context, prompt *db_models.PromptTemplate) error {
	return p.db.WithContext(ctx).Create(prompt).Error
}

func (p *PromptRepository) List(ctx context.Context, category string, page, pageSize int) ([]db_models.PromptTemplate, error) {
	q := p.db.WithContext(ctx).Model(&db_models.PromptTemplate{})
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var prompts []db_models.PromptTemplate
	err := q.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&prompts).Error
	if err != nil {
		return nil, err
	}
	return prompts, nil
}

func (p *PromptRepository) SearchByVector(ctx context.Context, vector pgvector.Vector, limit int) ([]db_models.PromptTemplate, error) {
	var results []db_models.PromptTemplate

	query := `
        SELECT * FROM prompt_templates
        WHERE deleted_at IS NULL
        ORDER BY embedding <=> $1
        LIMIT $2
    `

	err := p.db.WithContext(ctx).Raw(query, vector.String(), limit).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
