package utils

import "errors"

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrInsufficientCredits    = errors.New("insufficient credits")
	ErrTooManyReferenceImages = errors.New("too many reference images")
	ErrGenerationFailed       = errors.New("generation failed")
	ErrGenerationNotFound     = errors.New("generation not found")

	ErrInvalidGenerationParams = errors.New("invalid generation parameters")

	ErrPlanNotFound     = errors.New("plan not found")
	ErrUnknownProvider  = errors.New("unknown payment provider")
	ErrOrderNotFound    = errors.New("order not found")
	ErrInvalidSignature = errors.New("invalid signature")
	ErrPaymentProvider  = errors.New("payment provider error")

	ErrPromptNotFound = errors.New("prompt not found")

	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")
)
