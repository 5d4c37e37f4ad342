package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"thumbforge/internal/models/db_models"
	"thumbforge/internal/models/request_models"
	"thumbforge/internal/models/response_models"
	"thumbforge/internal/repositories"
	"thumbforge/pkg/storage"
	"thumbforge/pkg/utils"
)

// CreditsPerGeneration is charged per produced image. Variant batches issue
// one provider call and one debit per variant.
const CreditsPerGeneration int64 = 1

var (
	allowedStyles    = map[string]bool{"bold": true, "minimal": true, "cinematic": true, "vibrant": true, "tech": true}
	allowedAspects   = map[string]bool{"16:9": true, "1:1": true, "9:16": true, "4:3": true}
	allowedSizes     = map[string]bool{"1280x720": true, "1920x1080": true, "1080x1080": true, "1080x1920": true}
	allowedQualities = map[string]bool{"standard": true, "hd": true}
)

type GenerationServiceInterface interface {
	Generate(ctx context.Context, accountID uuid.UUID, req request_models.GenerateRequest, refs []utils.ReferenceImage) (*response_models.GenerationResponse, error)
	ListGallery(ctx context.Context, accountID uuid.UUID, page, pageSize int) (*response_models.GalleryResponse, error)
	DeleteGeneration(ctx context.Context, accountID, generationID uuid.UUID) error
}

type GenerationService struct {
	db          *gorm.DB
	accountRepo repositories.AccountRepository
	genRepo     repositories.IGenerationRepository
	imageClient utils.ImageClientInterface
	uploader    storage.UploaderInterface
	logger      *zap.Logger
}

func NewGenerationService(
	db *gorm.DB,
	accountRepo repositories.AccountRepository,
	genRepo repositories.IGenerationRepository,
	imageClient utils.ImageClientInterface,
	uploader storage.UploaderInterface,
	logger *zap.Logger,
) GenerationServiceInterface {
	return &GenerationService{
		db:          db,
		accountRepo: accountRepo,
		genRepo:     genRepo,
		imageClient: imageClient,
		uploader:    uploader,
		logger:      logger,
	}
}

// Generate authorizes one unit of paid work, performs it, and debits exactly
// once on success. The balance precheck keeps zero-balance accounts away from
// the provider; the conditional debit inside the transaction is what actually
// guards against concurrent overspend.
func (s *GenerationService) Generate(ctx context.Context, accountID uuid.UUID, req request_models.GenerateRequest, refs []utils.ReferenceImage) (*response_models.GenerationResponse, error) {
	if len(refs) > utils.MaxReferenceImages {
		return nil, utils.ErrTooManyReferenceImages
	}
	normalized, err := normalizeParams(req)
	if err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindById(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	if account.Credits < CreditsPerGeneration {
		return nil, utils.ErrInsufficientCredits
	}

	prompt := req.Prompt
	if req.EnhancePrompt {
		enhanced, err := s.imageClient.EnhancePrompt(ctx, prompt)
		if err != nil {
			// Enhancement is best-effort; the raw prompt still works.
			s.logger.Warn("prompt enhancement failed", zap.Error(err))
		} else {
			prompt = enhanced
		}
	}
	finalPrompt := utils.BuildThumbnailPrompt(prompt, normalized.Style, normalized.AspectRatio, normalized.Size, len(refs))

	image, err := s.imageClient.GenerateImage(ctx, finalPrompt, refs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrGenerationFailed, err)
	}

	url, err := s.uploader.Upload(ctx, image.Data, image.MIMEType)
	if err != nil {
		return nil, fmt.Errorf("%w: store artifact: %v", utils.ErrGenerationFailed, err)
	}

	record := &db_models.Generation{
		AccountID:      accountID,
		URL:            url,
		Prompt:         prompt,
		Style:          normalized.Style,
		AspectRatio:    normalized.AspectRatio,
		Size:           normalized.Size,
		Quality:        normalized.Quality,
		CreditsUsed:    CreditsPerGeneration,
		FacePreserved:  len(refs) > 0,
		ReferenceCount: len(refs),
	}

	// Debit and audit record are one unit: if either fails both roll back.
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&db_models.Account{}).
			Where("id = ? AND credits >= ?", accountID, CreditsPerGeneration).
			UpdateColumn("credits", gorm.Expr("credits - ?", CreditsPerGeneration))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return utils.ErrInsufficientCredits
		}
		return tx.Create(record).Error
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("generation completed",
		zap.String("account_id", accountID.String()),
		zap.String("generation_id", record.ID.String()),
		zap.Int("reference_count", len(refs)))

	return toGenerationResponse(record), nil
}

func (s *GenerationService) ListGallery(ctx context.Context, accountID uuid.UUID, page, pageSize int) (*response_models.GalleryResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	generations, total, err := s.genRepo.ListByAccount(ctx, accountID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	items := make([]response_models.GenerationResponse, 0, len(generations))
	for i := range generations {
		items = append(items, *toGenerationResponse(&generations[i]))
	}
	return &response_models.GalleryResponse{Items: items, Page: page, Total: total}, nil
}

func (s *GenerationService) DeleteGeneration(ctx context.Context, accountID, generationID uuid.UUID) error {
	deleted, err := s.genRepo.DeleteOwned(ctx, generationID, accountID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !deleted {
		return utils.ErrGenerationNotFound
	}
	return nil
}

type generationParams struct {
	Style, AspectRatio, Size, Quality string
}

func normalizeParams(req request_models.GenerateRequest) (generationParams, error) {
	p := generationParams{
		Style:       req.Style,
		AspectRatio: req.AspectRatio,
		Size:        req.Size,
		Quality:     req.Quality,
	}
	if p.Style == "" {
		p.Style = "bold"
	}
	if p.AspectRatio == "" {
		p.AspectRatio = "16:9"
	}
	if p.Size == "" {
		p.Size = "1280x720"
	}
	if p.Quality == "" {
		p.Quality = "standard"
	}

	if !allowedStyles[p.Style] || !allowedAspects[p.AspectRatio] || !allowedSizes[p.Size] || !allowedQualities[p.Quality] {
		return generationParams{}, utils.ErrInvalidGenerationParams
	}
	return p, nil
}

func toGenerationResponse(g *db_models.Generation) *response_models.GenerationResponse {
	return &response_models.GenerationResponse{
		ID:             g.ID,
		URL:            g.URL,
		Prompt:         g.Prompt,
		Style:          g.Style,
		AspectRatio:    g.AspectRatio,
		Size:           g.Size,
		CreditsUsed:    g.CreditsUsed,
		FacePreserved:  g.FacePreserved,
		ReferenceCount: g.ReferenceCount,
		CreatedAt:      g.CreatedAt,
	}
}
