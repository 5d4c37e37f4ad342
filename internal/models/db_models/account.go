package db_models

type SubscriptionTier string

const (
	TierFree   SubscriptionTier = "free"
	TierBasic  SubscriptionTier = "basic"
	TierPro    SubscriptionTier = "pro"
	TierCustom SubscriptionTier = "custom"
)

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Role         string `gorm:"default:user"`

	// Credits is the entitlement balance; never mutated by read-then-write,
	// only by conditional SQL increments/decrements.
	Credits          int64            `gorm:"not null;default:0"`
	SubscriptionTier SubscriptionTier `gorm:"size:16;default:free"`
}
