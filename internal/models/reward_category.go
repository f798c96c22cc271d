package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RewardCategory is a reward rule: spending in a category with a source
// earns rewards at the multiplier.
type RewardCategory struct {
	DefaultModel
	SourceID          uuid.UUID       `gorm:"type:uuid;uniqueIndex:reward_category_source_category"`
	Source            Source          `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	CategoryID        uuid.UUID       `gorm:"type:uuid;uniqueIndex:reward_category_source_category"`
	Category          Category        `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Multiplier        decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	ApplicableQuarter string          // Quarter label like "2024Q3". If empty, the rule applies all year
}

var (
	ErrRewardCategoryNotUnique  = errors.New("there can only be one reward rule per source and category")
	ErrRewardMultiplierNegative = errors.New("the reward multiplier must not be negative")
)

func (r *RewardCategory) BeforeSave(_ *gorm.DB) error {
	r.ApplicableQuarter = strings.TrimSpace(r.ApplicableQuarter)

	if r.Multiplier.IsNegative() {
		return ErrRewardMultiplierNegative
	}

	return nil
}
