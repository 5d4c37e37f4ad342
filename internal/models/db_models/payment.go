package db_models

import "github.com/google/uuid"

// Payment is written exactly once per completed Order, by the reconciliation
// winner, inside the same transaction as the credit grant. Append-only.
type Payment struct {
	BaseModel
	OrderID   uuid.UUID `gorm:"uniqueIndex"`
	AccountID uuid.UUID `gorm:"index"`

	AmountMinor       int64
	Currency          string `gorm:"size:3"`
	ProviderPaymentID string `gorm:"index"`
	Status            string `gorm:"size:16"`

	Order   Order   `gorm:"foreignKey:OrderID"`
	Account Account `gorm:"foreignKey:AccountID"`
}
