package models

import (
	"errors"
	"strings"
	"time"

	"github.com/envelope-zero/tracker/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction is a single expense or income booking.
type Transaction struct {
	DefaultModel
	Date        time.Time
	Description string
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	CategoryID  *uuid.UUID      `gorm:"type:uuid"`
	Category    *Category       `json:"-" gorm:"constraint:OnDelete:SET NULL"`
	SourceID    *uuid.UUID      `gorm:"type:uuid"`
	Source      *Source         `json:"-" gorm:"constraint:OnDelete:SET NULL"`

	// Month the transaction was booked in before the current update
	storedMonth types.Month
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (t *Transaction) AfterFind(tx *gorm.DB) error {
	err := t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.Date = t.Date.In(time.UTC)
	return nil
}

// BeforeSave sets the timezone for the Date to UTC.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Description = strings.TrimSpace(t.Description)

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	return nil
}

// BeforeUpdate remembers the month the transaction is currently stored in.
// If the date changes, the snapshot of that month is stale, too.
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	return t.loadStoredMonth(tx)
}

// BeforeDelete remembers the month of the transaction so that
// its snapshot can be invalidated.
func (t *Transaction) BeforeDelete(tx *gorm.DB) error {
	return t.loadStoredMonth(tx)
}

// AfterSave invalidates the snapshots of all months the transaction
// affects.
func (t *Transaction) AfterSave(tx *gorm.DB) error {
	err := invalidateMonthSnapshot(tx, types.MonthOf(t.Date))
	if err != nil {
		return err
	}

	if !t.storedMonth.IsZero() && !t.storedMonth.Equal(types.MonthOf(t.Date)) {
		return invalidateMonthSnapshot(tx, t.storedMonth)
	}

	return nil
}

func (t *Transaction) AfterDelete(tx *gorm.DB) error {
	month := t.storedMonth
	if month.IsZero() && !t.Date.IsZero() {
		month = types.MonthOf(t.Date)
	}

	if month.IsZero() {
		return nil
	}

	return invalidateMonthSnapshot(tx, month)
}

func (t *Transaction) loadStoredMonth(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		return nil
	}

	var stored Transaction
	err := tx.Session(&gorm.Session{NewDB: true}).Select("date").First(&stored, "id = ?", t.ID).Error
	if errors.Is(err, ErrResourceNotFound) {
		return nil
	} else if err != nil {
		return err
	}

	t.storedMonth = types.MonthOf(stored.Date)
	return nil
}
