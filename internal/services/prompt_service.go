package services

import (
	"context"

	"go.uber.org/zap"

	"thumbforge/internal/models/db_models"
	"thumbforge/internal/models/request_models"
	"thumbforge/internal/models/response_models"
	"thumbforge/internal/repositories"
	"thumbforge/pkg/utils"
)

const defaultSearchLimit = 15

type PromptServiceInterface interface {
	CreatePrompt(ctx context.Context, request request_models.CreatePromptRequest) (*response_models.PromptResponse, error)
	ListPrompts(ctx context.Context, category string, page, pageSize int) ([]response_models.PromptResponse, error)
	SearchPrompts(ctx context.Context, request request_models.SearchPromptRequest) ([]response_models.PromptResponse, error)
}

type PromptService struct {
	promptRepo repositories.IPromptRepository
	embedder   utils.EmbeddingClientInterface
	logger     *zap.Logger
}

func NewPromptService(promptRepo repositories.IPromptRepository, embedder utils.EmbeddingClientInterface, logger *zap.Logger) PromptServiceInterface {
	return &PromptService{
		promptRepo: promptRepo,
		embedder:   embedder,
		logger:     logger,
	}
}

func (p *PromptService) CreatePrompt(ctx context.Context, request request_models.CreatePromptRequest) (*response_models.PromptResponse, error) {
	embedding, err := p.embedder.GetEmbedding(ctx, request.Title+"\n"+request.Body)
	if err != nil {
		p.logger.Error("prompt embedding failed", zap.Error(err))
		return nil, utils.ErrGenerationFailed
	}

	prompt := &db_models.PromptTemplate{
		Title:     request.Title,
		Body:      request.Body,
		Category:  request.Category,
		Tags:      request.Tags,
		Embedding: embedding,
	}
	if err := p.promptRepo.Create(ctx, prompt); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toPromptResponse(prompt), nil
}

func (p *PromptService) ListPrompts(ctx context.Context, category string, page, pageSize int) ([]response_models.PromptResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	prompts, err := p.promptRepo.List(ctx, category, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toPromptResponses(prompts), nil
}

// SearchPrompts embeds the query and ranks the library by cosine distance.
func (p *PromptService) SearchPrompts(ctx context.Context, request request_models.SearchPromptRequest) ([]response_models.PromptResponse, error) {
	limit := request.Limit
	if limit < 1 || limit > 50 {
		limit = defaultSearchLimit
	}

	vector, err := p.embedder.GetEmbedding(ctx, request.Query)
	if err != nil {
		p.logger.Error("query embedding failed", zap.Error(err))
		return nil, utils.ErrGenerationFailed
	}

	prompts, err := p.promptRepo.SearchByVector(ctx, vector, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toPromptResponses(prompts), nil
}

func toPromptResponse(prompt *db_models.PromptTemplate) *response_models.PromptResponse {
	return &response_models.PromptResponse{
		ID:       prompt.ID,
		Title:    prompt.Title,
		Body:     prompt.Body,
		Category: prompt.Category,
		Tags:     prompt.Tags,
	}
}

func toPromptResponses(prompts []db_models.PromptTemplate) []response_models.PromptResponse {
	out := make([]response_models.PromptResponse, 0, len(prompts))
	for i := range prompts {
		out = append(out, *toPromptResponse(&prompts[i]))
	}
	return out
}
