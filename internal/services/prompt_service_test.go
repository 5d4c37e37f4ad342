package services

import (
	"context"
	"errors"
	"testing"

	"github.com/pgvector/pgvector-go"

	"thumbforge/internal/models/db_models"
	"thumbforge/internal/models/request_models"
	"thumbforge/pkg/utils"
)

// Vector search needs a real pgvector backend, so the repository is faked here.
type fakePromptRepo struct {
	created     []*db_models.PromptTemplate
	searchLimit int
	results     []db_models.PromptTemplate
}

func (f *fakePromptRepo) Create(ctx context.Context, prompt *db_models.PromptTemplate) error {
	f.created = append(f.created, prompt)
	return nil
}

func (f *fakePromptRepo) List(ctx context.Context, category string, page, pageSize int) ([]db_models.PromptTemplate, error) {
	return f.results, nil
}

func (f *fakePromptRepo) SearchByVector(ctx context.Context, vector pgvector.Vector, limit int) ([]db_models.PromptTemplate, error) {
	f.searchLimit = limit
	return f.results, nil
}

type fakeEmbedder struct {
	lastText string
	err      error
}

func (f *fakeEmbedder) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	f.lastText = text
	if f.err != nil {
		return pgvector.Vector{}, f.err
	}
	return pgvector.NewVector([]float32{0.1, 0.2, 0.3}), nil
}

func (f *fakeEmbedder) Close() error { return nil }

func TestCreatePromptEmbedsTitleAndBody(t *testing.T) {
	repo := &fakePromptRepo{}
	embedder := &fakeEmbedder{}
	svc := NewPromptService(repo, embedder, nopLogger())

	resp, err := svc.CreatePrompt(context.Background(), request_models.CreatePromptRequest{
		Title:    "Reaction face",
		Body:     "Shocked expression, big arrow, bright background",
		Category: "gaming",
		Tags:     []string{"reaction"},
	})
	if err != nil {
		t.Fatalf("create prompt: %v", err)
	}
	if resp.Title != "Reaction face" {
		t.Fatalf("title = %q", resp.Title)
	}
	if embedder.lastText != "Reaction face\nShocked expression, big arrow, bright background" {
		t.Fatalf("embedded %q, want title+body", embedder.lastText)
	}
	if len(repo.created) != 1 {
		t.Fatalf("created = %d, want 1", len(repo.created))
	}
}

func TestCreatePromptEmbeddingFailure(t *testing.T) {
	repo := &fakePromptRepo{}
	svc := NewPromptService(repo, &fakeEmbedder{err: errors.New("quota")}, nopLogger())

	_, err := svc.CreatePrompt(context.Background(), request_models.CreatePromptRequest{
		Title: "t", Body: "b", Category: "c",
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(repo.created) != 0 {
		t.Fatal("nothing should be stored when embedding fails")
	}
}

func TestSearchPromptsLimitClamping(t *testing.T) {
	repo := &fakePromptRepo{}
	svc := NewPromptService(repo, &fakeEmbedder{}, nopLogger())

	for _, tc := range []struct{ in, want int }{
		{0, defaultSearchLimit},
		{-3, defaultSearchLimit},
		{200, defaultSearchLimit},
		{5, 5},
	} {
		_, err := svc.SearchPrompts(context.Background(), request_models.SearchPromptRequest{Query: "q", Limit: tc.in})
		if err != nil {
			t.Fatalf("search: %v", err)
		}
		if repo.searchLimit != tc.want {
			t.Fatalf("limit %d clamped to %d, want %d", tc.in, repo.searchLimit, tc.want)
		}
	}
}

func TestListPromptsPageValidation(t *testing.T) {
	svc := NewPromptService(&fakePromptRepo{}, &fakeEmbedder{}, nopLogger())

	if _, err := svc.ListPrompts(context.Background(), "", 0, 10); !errors.Is(err, utils.ErrInvalidPage) {
		t.Fatalf("err = %v, want ErrInvalidPage", err)
	}
	if _, err := svc.ListPrompts(context.Background(), "", 1, 0); !errors.Is(err, utils.ErrInvalidPageSize) {
		t.Fatalf("err = %v, want ErrInvalidPageSize", err)
	}
}
