package response_models

import "github.com/google/uuid"

type PlanResponse struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Credits     int64     `json:"credits"`
	PriceMinor  int64     `json:"price"`
	Currency    string    `json:"currency"`
}
