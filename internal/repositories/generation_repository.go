package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"thumbforge/internal/models/db_models"
)

type IGenerationRepository interface {
	ListByAccount(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]db_models.Generation, int64, error)
	FindById(ctx context.Context, id uuid.UUID) (*db_models.Generation, error)
	DeleteOwned(ctx context.Context, id, accountID uuid.UUID) (bool, error)
}

type GenerationRepository struct {
	db *gorm.DB
}

func NewGenerationRepository(db *gorm.DB) IGenerationRepository {
	return &GenerationRepository{db: db}
}

func (g *GenerationRepository) ListByAccount(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]db_models.Generation, int64, error) {
	var total int64
	q := g.db.WithContext(ctx).Model(&db_models.Generation{}).Where("account_id = ?", accountID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var generations []db_models.Generation
	err := q.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&generations).Error
	if err != nil {
		return nil, 0, err
	}
	return generations, total, nil
}

func (g *GenerationRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.Generation, error) {
	var generation db_models.Generation
	err := g.db.WithContext(ctx).First(&generation, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &generation, nil
}

func (g *GenerationRepository) DeleteOwned(ctx context.Context, id, accountID uuid.UUID) (bool, error) {
	res := g.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", id, accountID).
		Delete(&db_models.Generation{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
