package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/envelope-zero/tracker/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MonthSnapshot stores the precomputed headline values of a closed month.
//
// Snapshots are identified by the month label, e.g. "2024-03".
type MonthSnapshot struct {
	Name        string `gorm:"primaryKey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	TotalSpend  decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	TotalIncome decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	DailySpend  DailySpend
}

// DailySpend is the cumulative spend per day, stored as a JSON array.
type DailySpend []decimal.Decimal

// GormDataType implements the gorm schema.GormDataTypeInterface.
func (DailySpend) GormDataType() string {
	return "text"
}

// Scan implements the sql.Scanner interface.
func (d *DailySpend) Scan(value any) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		*d = nil
		return nil
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("cannot scan %T into DailySpend", value)
	}

	if len(data) == 0 {
		*d = nil
		return nil
	}

	return json.Unmarshal(data, d)
}

// Value implements the driver.Valuer interface.
func (d DailySpend) Value() (driver.Value, error) {
	if d == nil {
		return "[]", nil
	}

	data, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}

	return string(data), nil
}

// invalidateMonthSnapshot deletes the snapshot for a month.
func invalidateMonthSnapshot(tx *gorm.DB, month types.Month) error {
	return tx.Session(&gorm.Session{NewDB: true}).Where("name = ?", month.String()).Delete(&MonthSnapshot{}).Error
}

// invalidateAllMonthSnapshots deletes the snapshots of all months.
func invalidateAllMonthSnapshots(tx *gorm.DB) error {
	return tx.Session(&gorm.Session{NewDB: true}).Where("1 = 1").Delete(&MonthSnapshot{}).Error
}
