package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusFailed    OrderStatus = "failed"
)

// Order is one checkout attempt. Rows are never deleted; they are the audit
// trail. Status only moves forward: pending -> completed | failed, enforced by
// conditional updates keyed on provider_order_id.
type Order struct {
	BaseModel
	AccountID uuid.UUID `gorm:"index"`
	PlanCode  string    `gorm:"index"` // plan code or the "custom" marker
	Credits   int64     // credits to grant on completion

	AmountMinor int64
	Currency    string `gorm:"size:3"`

	Provider          string      `gorm:"index"` // "razorpay" | "cashfree"
	ProviderOrderID   string      `gorm:"uniqueIndex"`
	ProviderPaymentID string      `gorm:"index"`
	Status            OrderStatus `gorm:"size:16;index;default:pending"`

	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Account Account `gorm:"foreignKey:AccountID"`
}
