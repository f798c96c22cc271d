package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RewardType is the kind of reward a source pays out.
type RewardType string

const (
	RewardTypeCashback RewardType = "cashback"
	RewardTypeNone     RewardType = "none"
	RewardTypeMiles    RewardType = "miles"
)

// Source is a payment source, e.g. a credit card or a bank account.
type Source struct {
	DefaultModel
	Name       string          `gorm:"uniqueIndex"`
	AnnualFee  decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	RewardType RewardType      `gorm:"default:cashback"`
}

var (
	ErrSourceNameNotUnique = errors.New("the source name must be unique")
	ErrInvalidRewardType   = errors.New("the reward type must be one of cashback, none, miles")
)

func (s *Source) BeforeSave(_ *gorm.DB) error {
	s.Name = strings.TrimSpace(s.Name)

	switch s.RewardType {
	case "":
		s.RewardType = RewardTypeCashback
	case RewardTypeCashback, RewardTypeNone, RewardTypeMiles:
	default:
		return ErrInvalidRewardType
	}

	return nil
}
