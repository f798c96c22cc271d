package report

import (
	"strings"

	"github.com/envelope-zero/tracker/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// UncategorizedName is the name of the bucket for transactions without a category.
const UncategorizedName = "Uncategorized"

// Bucket is the category a transaction is reported in.
type Bucket struct {
	ID     uuid.UUID
	Name   string
	Budget decimal.Decimal
}

// IsIncome reports if the bucket collects income.
func (b Bucket) IsIncome() bool {
	return strings.EqualFold(b.Name, models.IncomeCategoryName)
}

// uncategorized is the bucket for transactions without a category.
var uncategorized = Bucket{Name: UncategorizedName}

// Hierarchy resolves categories to the category they report into.
type Hierarchy struct {
	categories map[uuid.UUID]models.Category
}

// NewHierarchy returns a Hierarchy for the categories.
func NewHierarchy(categories []models.Category) Hierarchy {
	h := Hierarchy{categories: make(map[uuid.UUID]models.Category, len(categories))}
	for _, c := range categories {
		h.categories[c.ID] = c
	}

	return h
}

// EffectiveCategory returns the bucket a transaction is reported in.
//
// This is the reporting category of the transaction's category if it has one,
// otherwise the category itself. For transactions without a category, nil is returned.
func (h Hierarchy) EffectiveCategory(t models.Transaction) *Bucket {
	if t.CategoryID == nil {
		return nil
	}

	category, ok := h.categories[*t.CategoryID]
	if !ok {
		if t.Category == nil {
			return nil
		}
		category = *t.Category
	}

	root := h.resolve(category)
	return &Bucket{ID: root.ID, Name: root.Name, Budget: root.Budget}
}

// Bucket returns the effective bucket of a transaction. For transactions
// without category, this is the Uncategorized bucket.
func (h Hierarchy) Bucket(t models.Transaction) Bucket {
	b := h.EffectiveCategory(t)
	if b == nil {
		return uncategorized
	}

	return *b
}

// IsIncome reports if a transaction is income.
func (h Hierarchy) IsIncome(t models.Transaction) bool {
	return h.Bucket(t).IsIncome()
}

// resolve walks up the reporting chain of a category.
//
// Chains are stored one level deep. Deeper chains are flattened to their
// top-most category.
func (h Hierarchy) resolve(category models.Category) models.Category {
	if category.ReportingCategoryID == nil {
		return category
	}

	parent, ok := h.categories[*category.ReportingCategoryID]
	if !ok {
		if category.ReportingCategory == nil {
			return category
		}
		return *category.ReportingCategory
	}

	if parent.ReportingCategoryID == nil {
		return parent
	}

	visited := map[uuid.UUID]bool{category.ID: true}
	for parent.ReportingCategoryID != nil && !visited[parent.ID] {
		visited[parent.ID] = true

		next, ok := h.categories[*parent.ReportingCategoryID]
		if !ok {
			break
		}
		parent = next
	}

	log.Warn().Str("category", category.Name).Str("reportingCategory", parent.Name).Msg("flattened reporting chain deeper than one level")
	return parent
}
