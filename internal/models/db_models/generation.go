package db_models

import "github.com/google/uuid"

// Generation records one successfully produced thumbnail. Written in the same
// transaction as the credit debit; deleted only by explicit gallery delete.
type Generation struct {
	BaseModel
	AccountID uuid.UUID `gorm:"index"`

	URL    string
	Prompt string // post-enhancement prompt actually sent to the model

	Style       string `gorm:"size:32"`
	AspectRatio string `gorm:"size:16"`
	Size        string `gorm:"size:16"`
	Quality     string `gorm:"size:16"`

	CreditsUsed    int64 `gorm:"not null;default:1"`
	FacePreserved  bool
	ReferenceCount int

	Account Account `gorm:"foreignKey:AccountID"`
}
