package models_test

import (
	"github.com/envelope-zero/tracker/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestSourceRewardType() {
	tests := []struct {
		name       string
		rewardType models.RewardType
		expected   models.RewardType
		err        error
	}{
		{"Default", "", models.RewardTypeCashback, nil},
		{"Cashback", models.RewardTypeCashback, models.RewardTypeCashback, nil},
		{"Miles", models.RewardTypeMiles, models.RewardTypeMiles, nil},
		{"None", models.RewardTypeNone, models.RewardTypeNone, nil},
		{"Invalid", "points", "points", models.ErrInvalidRewardType},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			source := models.Source{Name: tt.name, RewardType: tt.rewardType}
			err := models.DB.Create(&source).Error

			assert.ErrorIs(suite.T(), err, tt.err)
			assert.Equal(suite.T(), tt.expected, source.RewardType)
		})
	}
}

func (suite *TestSuiteStandard) TestSourceNameNotUnique() {
	_ = suite.createTestSource(models.Source{Name: " CardX"})

	err := models.DB.Create(&models.Source{Name: "CardX "}).Error
	assert.ErrorIs(suite.T(), err, models.ErrSourceNameNotUnique)
}
