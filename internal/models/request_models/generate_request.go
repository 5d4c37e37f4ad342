package request_models

// GenerateRequest carries the non-file fields of the multipart generate call.
// Reference images are read from the multipart form separately.
type GenerateRequest struct {
	Prompt        string `form:"prompt" binding:"required"`
	Style         string `form:"style"`
	AspectRatio   string `form:"aspect_ratio"`
	Size          string `form:"size"`
	Quality       string `form:"quality"`
	EnhancePrompt bool   `form:"enhance_prompt"`
}

type CreditsRequest struct {
	Action  string `json:"action" binding:"required,oneof=add deduct"`
	Credits int64  `json:"credits" binding:"required,gt=0"`
}
