package models_test

import (
	"github.com/envelope-zero/tracker/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestRewardCategoryMultiplierNegative() {
	source := suite.createTestSource(models.Source{})
	category := suite.createTestCategory(models.Category{})

	err := models.DB.Create(&models.RewardCategory{
		SourceID:   source.ID,
		CategoryID: category.ID,
		Multiplier: decimal.NewFromFloat(-1),
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrRewardMultiplierNegative)
}

func (suite *TestSuiteStandard) TestRewardCategoryNotUnique() {
	source := suite.createTestSource(models.Source{})
	category := suite.createTestCategory(models.Category{})

	_ = suite.createTestRewardCategory(models.RewardCategory{
		SourceID:   source.ID,
		CategoryID: category.ID,
		Multiplier: decimal.NewFromFloat(3),
	})

	err := models.DB.Create(&models.RewardCategory{
		SourceID:   source.ID,
		CategoryID: category.ID,
		Multiplier: decimal.NewFromFloat(2),
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrRewardCategoryNotUnique)
}

func (suite *TestSuiteStandard) TestRewardCategoryTrimQuarter() {
	source := suite.createTestSource(models.Source{})
	category := suite.createTestCategory(models.Category{})

	rule := suite.createTestRewardCategory(models.RewardCategory{
		SourceID:          source.ID,
		CategoryID:        category.ID,
		Multiplier:        decimal.NewFromFloat(5),
		ApplicableQuarter: " 2024Q3 ",
	})

	assert.Equal(suite.T(), "2024Q3", rule.ApplicableQuarter)
}
