package models

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TransactionFilter restricts the transactions returned by a Store.
//
// All set fields are combined with AND. Name comparisons are case-insensitive.
type TransactionFilter struct {
	Year  int        // Calendar year of the transaction date
	Month time.Month // Month of the transaction date. Only used together with Year

	From  time.Time // Transactions at or after this time
	Until time.Time // Transactions before this time

	CategoryID *uuid.UUID
	SourceID   *uuid.UUID

	CategoryName                 string // Only transactions in the category with this name
	ExcludeCategoryName          string // Excludes transactions in the category with this name
	ExcludeReportingCategoryName string // Excludes transactions whose reporting category has this name

	Description string // Glob pattern the description must match, e.g. "*coffee*"
}

// Store reads tracker data from the database.
type Store struct {
	db *gorm.DB
}

// NewStore returns a Store using the database connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Transactions returns all transactions matching the filter, ordered by date.
//
// Category, its reporting category and Source are preloaded.
func (s *Store) Transactions(filter TransactionFilter) ([]Transaction, error) {
	q := s.db.
		Preload("Category.ReportingCategory").
		Preload("Source").
		Joins("LEFT JOIN categories ON categories.id = transactions.category_id AND categories.deleted_at IS NULL").
		Joins("LEFT JOIN categories AS reporting_categories ON reporting_categories.id = categories.reporting_category_id AND reporting_categories.deleted_at IS NULL").
		Order("datetime(transactions.date) ASC, datetime(transactions.created_at) ASC")

	from, until := filter.dateRange()
	if !from.IsZero() {
		q = q.Where("datetime(transactions.date) >= datetime(?)", from)
	}

	if !until.IsZero() {
		q = q.Where("datetime(transactions.date) < datetime(?)", until)
	}

	if filter.CategoryID != nil {
		q = q.Where("transactions.category_id = ?", filter.CategoryID)
	}

	if filter.SourceID != nil {
		q = q.Where("transactions.source_id = ?", filter.SourceID)
	}

	if filter.CategoryName != "" {
		q = q.Where("LOWER(categories.name) = LOWER(?)", filter.CategoryName)
	}

	// Transactions without a category are never excluded by name
	if filter.ExcludeCategoryName != "" {
		q = q.Where("(categories.name IS NULL OR LOWER(categories.name) <> LOWER(?))", filter.ExcludeCategoryName)
	}

	if filter.ExcludeReportingCategoryName != "" {
		q = q.Where("(reporting_categories.name IS NULL OR LOWER(reporting_categories.name) <> LOWER(?))", filter.ExcludeReportingCategoryName)
	}

	var transactions []Transaction
	err := q.Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	if filter.Description == "" {
		return transactions, nil
	}

	pattern := strings.ToLower(filter.Description)
	matching := make([]Transaction, 0, len(transactions))
	for _, t := range transactions {
		if glob.Glob(pattern, strings.ToLower(t.Description)) {
			matching = append(matching, t)
		}
	}

	return matching, nil
}

// SumAmount returns the sum of the amounts of all transactions matching the filter.
func (s *Store) SumAmount(filter TransactionFilter) (decimal.Decimal, error) {
	transactions, err := s.Transactions(filter)
	if err != nil {
		return decimal.Zero, err
	}

	sum := decimal.Zero
	for _, t := range transactions {
		sum = sum.Add(t.Amount)
	}

	return sum, nil
}

// Categories returns all categories ordered by name.
//
// If topLevelOnly is set, categories with a reporting category are omitted.
func (s *Store) Categories(topLevelOnly bool) ([]Category, error) {
	q := s.db.Preload("ReportingCategory").Order("name ASC")
	if topLevelOnly {
		q = q.Where("reporting_category_id IS NULL")
	}

	var categories []Category
	err := q.Find(&categories).Error
	if err != nil {
		return nil, err
	}

	return categories, nil
}

// Category returns the category with the name, compared case-insensitively.
func (s *Store) Category(name string) (Category, error) {
	var category Category
	err := s.db.Preload("ReportingCategory").First(&category, "LOWER(name) = LOWER(?)", strings.TrimSpace(name)).Error
	if err != nil {
		return Category{}, err
	}

	return category, nil
}

// Sources returns all sources ordered by name.
func (s *Store) Sources() ([]Source, error) {
	var sources []Source
	err := s.db.Order("name ASC").Find(&sources).Error
	if err != nil {
		return nil, err
	}

	return sources, nil
}

func (s *Store) Source(id uuid.UUID) (Source, error) {
	var source Source
	err := s.db.First(&source, "id = ?", id).Error
	if err != nil {
		return Source{}, err
	}

	return source, nil
}

// RewardCategories returns the reward rules for a source with their categories.
func (s *Store) RewardCategories(sourceID uuid.UUID) ([]RewardCategory, error) {
	var rules []RewardCategory
	err := s.db.
		Preload("Category.ReportingCategory").
		Where(&RewardCategory{SourceID: sourceID}).
		Find(&rules).Error
	if err != nil {
		return nil, err
	}

	return rules, nil
}

// FindMonthSnapshot returns the snapshot stored for the label.
//
// If no snapshot exists, found is false and the error is nil.
func (s *Store) FindMonthSnapshot(label string) (snapshot MonthSnapshot, found bool, err error) {
	err = s.db.First(&snapshot, "name = ?", label).Error
	if errors.Is(err, ErrResourceNotFound) {
		return MonthSnapshot{}, false, nil
	} else if err != nil {
		return MonthSnapshot{}, false, err
	}

	return snapshot, true, nil
}

// SaveMonthSnapshot creates the snapshot or replaces an existing one with the same name.
func (s *Store) SaveMonthSnapshot(snapshot MonthSnapshot) error {
	return s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&snapshot).Error
}

// TransactionYears returns all years that have transactions in ascending order.
func (s *Store) TransactionYears() ([]int, error) {
	var labels []string
	err := s.db.
		Raw("SELECT DISTINCT strftime('%Y', date) AS year FROM transactions WHERE deleted_at IS NULL ORDER BY year ASC").
		Scan(&labels).Error
	if err != nil {
		return nil, err
	}

	years := make([]int, 0, len(labels))
	for _, label := range labels {
		year, err := strconv.Atoi(label)
		if err != nil {
			return nil, err
		}
		years = append(years, year)
	}

	return years, nil
}

// dateRange combines Year, Month, From and Until into one half-open range.
func (f TransactionFilter) dateRange() (from, until time.Time) {
	from, until = f.From, f.Until

	if f.Year != 0 {
		start := time.Date(f.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(1, 0, 0)

		if f.Month != 0 {
			start = time.Date(f.Year, f.Month, 1, 0, 0, 0, 0, time.UTC)
			end = start.AddDate(0, 1, 0)
		}

		if from.IsZero() || start.After(from) {
			from = start
		}

		if until.IsZero() || end.Before(until) {
			until = end
		}
	}

	return from, until
}
