package db_models

import "gorm.io/datatypes"

// PlanCustom marks the pay-as-you-go pseudo plan: PriceMinor is the per-credit
// price and the credit quantity comes from the checkout request. Completing a
// custom order grants credits without changing the subscription tier.
const PlanCustom = "custom"

type Plan struct {
	BaseModel
	Code        string `gorm:"uniqueIndex"` // "basic", "pro", "custom"
	Name        string
	Description *string

	Credits    int64  // credits granted on purchase (0 for the custom marker)
	PriceMinor int64  // paise; per-credit price for the custom plan
	Currency   string `gorm:"size:3"`
	IsActive   bool   `gorm:"default:true"`

	Features datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}
