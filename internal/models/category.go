package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// IncomeCategoryName is the name of the category income transactions are recorded in.
const IncomeCategoryName = "Income"

// Category is a spending or income category with a monthly budget.
//
// A category can report into another category. Its spending then counts
// against the budget of that reporting category. Only one level of
// reporting is allowed.
type Category struct {
	DefaultModel
	Name                string          `gorm:"uniqueIndex"`
	Note                string
	Budget              decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Monthly budget. Negative for categories that collect income
	ReportingCategoryID *uuid.UUID      `gorm:"type:uuid"`
	ReportingCategory   *Category       `json:"-" gorm:"foreignKey:ReportingCategoryID;constraint:OnDelete:SET NULL"`

	// The category as stored before the current update
	stored *Category
}

var (
	ErrCategoryNameNotUnique  = errors.New("the category name must be unique")
	ErrCategoryHierarchyDepth = errors.New("categories can only report into a category that does not report into another category itself")
)

// IsIncome reports if the category is the income category.
func (c Category) IsIncome() bool {
	return strings.EqualFold(c.Name, IncomeCategoryName)
}

// BeforeSave trims whitespace and verifies that the reporting hierarchy
// stays one level deep.
func (c *Category) BeforeSave(tx *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Note = strings.TrimSpace(c.Note)

	if c.ReportingCategoryID == nil {
		return nil
	}

	return c.checkIntegrity(tx)
}

// checkIntegrity verifies the reporting category reference.
func (c *Category) checkIntegrity(tx *gorm.DB) error {
	if c.ID != uuid.Nil && *c.ReportingCategoryID == c.ID {
		return ErrCategoryHierarchyDepth
	}

	db := tx.Session(&gorm.Session{NewDB: true})

	var parent Category
	err := db.First(&parent, "id = ?", c.ReportingCategoryID).Error
	if err != nil {
		return err
	}

	if parent.ReportingCategoryID != nil {
		return ErrCategoryHierarchyDepth
	}

	// A category that others report into cannot report into another category
	if c.ID != uuid.Nil {
		var children int64
		err = db.Model(&Category{}).Where("reporting_category_id = ?", c.ID).Count(&children).Error
		if err != nil {
			return err
		}

		if children > 0 {
			return ErrCategoryHierarchyDepth
		}
	}

	return nil
}

// BeforeUpdate remembers the stored version of the category.
func (c *Category) BeforeUpdate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		return nil
	}

	var stored Category
	err := tx.Session(&gorm.Session{NewDB: true}).Select("name", "reporting_category_id").First(&stored, "id = ?", c.ID).Error
	if errors.Is(err, ErrResourceNotFound) {
		return nil
	} else if err != nil {
		return err
	}

	c.stored = &stored
	return nil
}

// AfterUpdate invalidates all month snapshots when the change can move
// transactions between income and spend.
func (c *Category) AfterUpdate(tx *gorm.DB) error {
	if c.stored == nil {
		return nil
	}

	if c.stored.Name == c.Name && sameID(c.stored.ReportingCategoryID, c.ReportingCategoryID) {
		return nil
	}

	return invalidateAllMonthSnapshots(tx)
}

// AfterDelete invalidates all month snapshots, the transactions of the
// category are uncategorized now.
func (c *Category) AfterDelete(tx *gorm.DB) error {
	return invalidateAllMonthSnapshots(tx)
}

func sameID(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}
