package db_models

import (
	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

// PromptTemplate is a curated prompt-library entry. Embedding powers the
// semantic search endpoint.
type PromptTemplate struct {
	BaseModel
	Title     string
	Body      string
	Category  string          `gorm:"size:32;index"`
	Tags      pq.StringArray  `gorm:"type:text[]"`
	Embedding pgvector.Vector `gorm:"type:vector(768)"`
}
