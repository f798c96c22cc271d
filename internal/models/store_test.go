package models_test

import (
	"time"

	"github.com/envelope-zero/tracker/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// createStoreFixture creates categories, a source and transactions in March and April 2024.
func (suite *TestSuiteStandard) createStoreFixture() (food, groceries, income models.Category, card models.Source) {
	food = suite.createTestCategory(models.Category{Name: "Food", Budget: decimal.NewFromFloat(400)})
	groceries = suite.createTestCategory(models.Category{Name: "Groceries", ReportingCategoryID: &food.ID})
	income = suite.createTestCategory(models.Category{Name: "Income", Budget: decimal.NewFromFloat(-3000)})
	card = suite.createTestSource(models.Source{Name: "CardX"})

	for _, t := range []models.Transaction{
		{Date: time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), Description: "Supermarket", Amount: decimal.NewFromFloat(-60), CategoryID: &groceries.ID, SourceID: &card.ID},
		{Date: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), Description: "Bakery", Amount: decimal.NewFromFloat(-40), CategoryID: &food.ID, SourceID: &card.ID},
		{Date: time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), Description: "Salary March", Amount: decimal.NewFromFloat(3000), CategoryID: &income.ID},
		{Date: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), Description: "Cash withdrawal", Amount: decimal.NewFromFloat(-100)},
		{Date: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), Description: "Farmers market", Amount: decimal.NewFromFloat(-25), CategoryID: &groceries.ID},
	} {
		_ = suite.createTestTransaction(t)
	}

	return
}

func (suite *TestSuiteStandard) TestStoreTransactionsMonth() {
	_, _, _, _ = suite.createStoreFixture()
	store := models.NewStore(models.DB)

	transactions, err := store.Transactions(models.TransactionFilter{Year: 2024, Month: time.March})
	suite.Require().Nil(err)
	suite.Require().Len(transactions, 4)

	// Ordered by date
	assert.Equal(suite.T(), "Bakery", transactions[0].Description)
	assert.Equal(suite.T(), "Cash withdrawal", transactions[1].Description)
	assert.Equal(suite.T(), "Supermarket", transactions[2].Description)
	assert.Equal(suite.T(), "Salary March", transactions[3].Description)

	// Associations are preloaded
	suite.Require().NotNil(transactions[2].Category)
	suite.Require().NotNil(transactions[2].Category.ReportingCategory)
	assert.Equal(suite.T(), "Food", transactions[2].Category.ReportingCategory.Name)
	suite.Require().NotNil(transactions[2].Source)
	assert.Equal(suite.T(), "CardX", transactions[2].Source.Name)
	assert.Nil(suite.T(), transactions[1].Category)
}

func (suite *TestSuiteStandard) TestStoreTransactionsFilter() {
	food, groceries, _, card := suite.createStoreFixture()
	store := models.NewStore(models.DB)

	tests := []struct {
		name     string
		filter   models.TransactionFilter
		expected []string
	}{
		{"Year", models.TransactionFilter{Year: 2024}, []string{"Bakery", "Cash withdrawal", "Supermarket", "Salary March", "Farmers market"}},
		{"Other year", models.TransactionFilter{Year: 2023}, []string{}},
		{"From", models.TransactionFilter{From: time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)}, []string{"Salary March", "Farmers market"}},
		{"Until is exclusive", models.TransactionFilter{Until: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)}, []string{"Bakery"}},
		{"Category ID", models.TransactionFilter{CategoryID: &groceries.ID}, []string{"Supermarket", "Farmers market"}},
		{"Category ID of reporting category", models.TransactionFilter{CategoryID: &food.ID}, []string{"Bakery"}},
		{"Source ID", models.TransactionFilter{SourceID: &card.ID}, []string{"Bakery", "Supermarket"}},
		{"Category name", models.TransactionFilter{CategoryName: "groceries"}, []string{"Supermarket", "Farmers market"}},
		{"Exclude income keeps uncategorized", models.TransactionFilter{Month: time.March, Year: 2024, ExcludeCategoryName: "INCOME"}, []string{"Bakery", "Cash withdrawal", "Supermarket"}},
		{"Exclude reporting category", models.TransactionFilter{ExcludeReportingCategoryName: "food"}, []string{"Bakery", "Cash withdrawal", "Salary March"}},
		{"Description glob", models.TransactionFilter{Description: "*MARKET*"}, []string{"Supermarket", "Farmers market"}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			transactions, err := store.Transactions(tt.filter)
			suite.Require().Nil(err)

			descriptions := make([]string, 0)
			for _, t := range transactions {
				descriptions = append(descriptions, t.Description)
			}
			assert.Equal(suite.T(), tt.expected, descriptions)
		})
	}
}

func (suite *TestSuiteStandard) TestStoreSumAmount() {
	_, _, _, _ = suite.createStoreFixture()
	store := models.NewStore(models.DB)

	sum, err := store.SumAmount(models.TransactionFilter{Year: 2024, Month: time.March, ExcludeCategoryName: "Income"})
	suite.Require().Nil(err)
	assert.True(suite.T(), decimal.NewFromFloat(-200).Equal(sum), "Sum is %s", sum)

	sum, err = store.SumAmount(models.TransactionFilter{Description: "*market*"})
	suite.Require().Nil(err)
	assert.True(suite.T(), decimal.NewFromFloat(-85).Equal(sum), "Sum is %s", sum)

	sum, err = store.SumAmount(models.TransactionFilter{Year: 1999})
	suite.Require().Nil(err)
	assert.True(suite.T(), sum.IsZero())
}

func (suite *TestSuiteStandard) TestStoreCategories() {
	_, _, _, _ = suite.createStoreFixture()
	store := models.NewStore(models.DB)

	categories, err := store.Categories(false)
	suite.Require().Nil(err)
	suite.Require().Len(categories, 3)
	assert.Equal(suite.T(), "Food", categories[0].Name)
	assert.Equal(suite.T(), "Groceries", categories[1].Name)
	suite.Require().NotNil(categories[1].ReportingCategory)
	assert.Equal(suite.T(), "Food", categories[1].ReportingCategory.Name)

	topLevel, err := store.Categories(true)
	suite.Require().Nil(err)
	suite.Require().Len(topLevel, 2)
	assert.Equal(suite.T(), "Food", topLevel[0].Name)
	assert.Equal(suite.T(), "Income", topLevel[1].Name)
}

func (suite *TestSuiteStandard) TestStoreCategory() {
	_, _, _, _ = suite.createStoreFixture()
	store := models.NewStore(models.DB)

	category, err := store.Category("income ")
	suite.Require().Nil(err)
	assert.Equal(suite.T(), "Income", category.Name)
	assert.True(suite.T(), decimal.NewFromFloat(-3000).Equal(category.Budget))

	_, err = store.Category("Travel")
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Equal(suite.T(), "there is no category matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestStoreSources() {
	_ = suite.createTestSource(models.Source{Name: "Visa"})
	amex := suite.createTestSource(models.Source{Name: "Amex", RewardType: models.RewardTypeMiles})
	store := models.NewStore(models.DB)

	sources, err := store.Sources()
	suite.Require().Nil(err)
	suite.Require().Len(sources, 2)
	assert.Equal(suite.T(), "Amex", sources[0].Name)

	source, err := store.Source(amex.ID)
	suite.Require().Nil(err)
	assert.Equal(suite.T(), models.RewardTypeMiles, source.RewardType)

	_, err = store.Source(uuid.New())
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestStoreRewardCategories() {
	food, groceries, _, card := suite.createStoreFixture()
	other := suite.createTestSource(models.Source{})

	_ = suite.createTestRewardCategory(models.RewardCategory{SourceID: card.ID, CategoryID: groceries.ID, Multiplier: decimal.NewFromFloat(3)})
	_ = suite.createTestRewardCategory(models.RewardCategory{SourceID: other.ID, CategoryID: food.ID, Multiplier: decimal.NewFromFloat(2)})

	rules, err := models.NewStore(models.DB).RewardCategories(card.ID)
	suite.Require().Nil(err)
	suite.Require().Len(rules, 1)
	assert.Equal(suite.T(), "Groceries", rules[0].Category.Name)
	suite.Require().NotNil(rules[0].Category.ReportingCategory)
	assert.Equal(suite.T(), "Food", rules[0].Category.ReportingCategory.Name)
}

func (suite *TestSuiteStandard) TestStoreMonthSnapshot() {
	store := models.NewStore(models.DB)

	_, found, err := store.FindMonthSnapshot("2024-03")
	suite.Require().Nil(err)
	assert.False(suite.T(), found)

	daily := make(models.DailySpend, 31)
	for i := range daily {
		daily[i] = decimal.NewFromFloat(12.34).Mul(decimal.NewFromInt(int64(i)))
	}

	err = store.SaveMonthSnapshot(models.MonthSnapshot{
		Name:        "2024-03",
		TotalSpend:  decimal.NewFromFloat(100),
		TotalIncome: decimal.NewFromFloat(3000),
		DailySpend:  daily,
	})
	suite.Require().Nil(err)

	// Saving again replaces the snapshot
	err = store.SaveMonthSnapshot(models.MonthSnapshot{
		Name:        "2024-03",
		TotalSpend:  decimal.NewFromFloat(200),
		TotalIncome: decimal.NewFromFloat(3000),
		DailySpend:  daily,
	})
	suite.Require().Nil(err)

	snapshot, found, err := store.FindMonthSnapshot("2024-03")
	suite.Require().Nil(err)
	suite.Require().True(found)
	assert.True(suite.T(), decimal.NewFromFloat(200).Equal(snapshot.TotalSpend))
	suite.Require().Len(snapshot.DailySpend, 31)
	assert.True(suite.T(), decimal.NewFromFloat(370.2).Equal(snapshot.DailySpend[30]), "Last value is %s", snapshot.DailySpend[30])
}

func (suite *TestSuiteStandard) TestStoreTransactionYears() {
	for _, year := range []int{2022, 2024, 2022} {
		_ = suite.createTestTransaction(models.Transaction{Date: time.Date(year, 6, 1, 0, 0, 0, 0, time.UTC)})
	}

	years, err := models.NewStore(models.DB).TransactionYears()
	suite.Require().Nil(err)
	assert.Equal(suite.T(), []int{2022, 2024}, years)
}

func (suite *TestSuiteStandard) TestStoreDatabaseClosed() {
	suite.CloseDB()

	_, err := models.NewStore(models.DB).Transactions(models.TransactionFilter{})
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}
