package request_models

type CreatePromptRequest struct {
	Title    string   `json:"title" binding:"required"`
	Body     string   `json:"body" binding:"required"`
	Category string   `json:"category" binding:"required"`
	Tags     []string `json:"tags"`
}

type SearchPromptRequest struct {
	Query string `json:"query" binding:"required"`
	Limit int    `json:"limit"`
}
