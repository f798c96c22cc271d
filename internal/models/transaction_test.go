package models_test

import (
	"time"

	"github.com/envelope-zero/tracker/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTransactionFindTimeUTC() {
	tz := time.FixedZone("UTC+2", 2*60*60)

	transaction := models.Transaction{
		Date: time.Date(2000, 1, 2, 3, 4, 5, 6, tz),
	}

	err := transaction.AfterFind(models.DB)
	if err != nil {
		assert.Fail(suite.T(), "transaction.AfterFind failed")
	}

	assert.Equal(suite.T(), time.UTC, transaction.Date.Location(), "Timezone for model is not UTC")
}

func (suite *TestSuiteStandard) TestTransactionSaveTimeUTC() {
	tz := time.FixedZone("UTC+2", 2*60*60)

	transaction := models.Transaction{}
	err := transaction.BeforeSave(models.DB)
	if err != nil {
		assert.Fail(suite.T(), "transaction.BeforeSave failed")
	}

	assert.Equal(suite.T(), time.UTC, transaction.Date.Location(), "Timezone for model is not UTC")

	transaction = models.Transaction{
		Date: time.Date(2000, 1, 2, 3, 4, 5, 6, tz),
	}
	err = transaction.BeforeSave(models.DB)
	if err != nil {
		assert.Fail(suite.T(), "transaction.BeforeSave failed")
	}

	assert.Equal(suite.T(), time.UTC, transaction.Date.Location(), "Timezone for model is not UTC")
}

func (suite *TestSuiteStandard) TestTransactionTrimWhitespace() {
	transaction := suite.createTestTransaction(models.Transaction{
		Description: "  Coffee\t",
		Amount:      decimal.NewFromFloat(-3.5),
	})

	assert.Equal(suite.T(), "Coffee", transaction.Description)
}

func (suite *TestSuiteStandard) TestTransactionCreateInvalidatesSnapshot() {
	_ = suite.createTestSnapshot("2024-03")
	_ = suite.createTestSnapshot("2024-04")

	_ = suite.createTestTransaction(models.Transaction{
		Date:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Amount: decimal.NewFromFloat(-10),
	})

	assert.False(suite.T(), suite.snapshotExists("2024-03"), "Snapshot for the month of the new transaction was not deleted")
	assert.True(suite.T(), suite.snapshotExists("2024-04"), "Snapshot for an unrelated month was deleted")
}

func (suite *TestSuiteStandard) TestTransactionUpdateInvalidatesSnapshots() {
	transaction := suite.createTestTransaction(models.Transaction{
		Date:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Amount: decimal.NewFromFloat(-10),
	})

	_ = suite.createTestSnapshot("2024-03")
	_ = suite.createTestSnapshot("2024-04")
	_ = suite.createTestSnapshot("2024-05")

	transaction.Date = time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)
	err := models.DB.Save(&transaction).Error
	suite.Require().Nil(err)

	assert.False(suite.T(), suite.snapshotExists("2024-03"), "Snapshot for the previous month was not deleted")
	assert.False(suite.T(), suite.snapshotExists("2024-04"), "Snapshot for the new month was not deleted")
	assert.True(suite.T(), suite.snapshotExists("2024-05"), "Snapshot for an unrelated month was deleted")
}

func (suite *TestSuiteStandard) TestTransactionDeleteInvalidatesSnapshot() {
	transaction := suite.createTestTransaction(models.Transaction{
		Date:   time.Date(2023, 12, 31, 23, 0, 0, 0, time.UTC),
		Amount: decimal.NewFromFloat(-10),
	})

	_ = suite.createTestSnapshot("2023-12")

	err := models.DB.Delete(&models.Transaction{DefaultModel: transaction.DefaultModel}).Error
	suite.Require().Nil(err)

	assert.False(suite.T(), suite.snapshotExists("2023-12"), "Snapshot for the month of the deleted transaction was not deleted")
}

func (suite *TestSuiteStandard) TestTransactionCategoryDeleteSetNull() {
	category := suite.createTestCategory(models.Category{})
	transaction := suite.createTestTransaction(models.Transaction{
		CategoryID: &category.ID,
		Amount:     decimal.NewFromFloat(-10),
	})

	err := models.DB.Unscoped().Delete(&category).Error
	suite.Require().Nil(err)

	var loaded models.Transaction
	err = models.DB.First(&loaded, "id = ?", transaction.ID).Error
	suite.Require().Nil(err)
	assert.Nil(suite.T(), loaded.CategoryID)
}
