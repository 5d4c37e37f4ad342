package response_models

import "github.com/google/uuid"

type GenerationResponse struct {
	ID             uuid.UUID `json:"id"`
	URL            string    `json:"url"`
	Prompt         string    `json:"prompt"`
	Style          string    `json:"style"`
	AspectRatio    string    `json:"aspect_ratio"`
	Size           string    `json:"size"`
	CreditsUsed    int64     `json:"credits_used"`
	FacePreserved  bool      `json:"face_preserved,omitempty"`
	ReferenceCount int       `json:"reference_count,omitempty"`
	CreatedAt      int64     `json:"created_at"`
}

type GalleryResponse struct {
	Items []GenerationResponse `json:"items"`
	Page  int                  `json:"page"`
	Total int64                `json:"total"`
}
