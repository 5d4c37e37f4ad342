package response_models

import "github.com/google/uuid"

type AccountResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Credits          int64     `json:"credits"`
	SubscriptionTier string    `json:"subscription_tier"`
}

type LoginResponse struct {
	Token string `json:"token"`
}
