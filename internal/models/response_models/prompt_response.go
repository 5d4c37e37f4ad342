package response_models

import "github.com/google/uuid"

type PromptResponse struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	Category string    `json:"category"`
	Tags     []string  `json:"tags,omitempty"`
}
