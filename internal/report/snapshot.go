package report

import (
	"time"

	"github.com/envelope-zero/tracker/internal/models"
	"github.com/envelope-zero/tracker/internal/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

// SnapshotLookups counts snapshot cache lookups by result.
var SnapshotLookups = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "snapshot_cache_lookups_total",
		Help: "How many month snapshot lookups were made, partitioned by result.",
	},
	[]string{"result"},
)

// SnapshotRepository stores month snapshots.
type SnapshotRepository interface {
	FindMonthSnapshot(label string) (models.MonthSnapshot, bool, error)
	SaveMonthSnapshot(snapshot models.MonthSnapshot) error
}

// SnapshotCache memoizes the headline values of closed months.
//
// A month is closed once the month after it has started. Lookups for
// months that are still open always miss and nothing is stored for them.
type SnapshotCache struct {
	repository SnapshotRepository
	now        func() time.Time
	disabled   bool
}

// Find returns the snapshot for the month if one is stored and the month is closed.
func (c SnapshotCache) Find(month types.Month) (models.MonthSnapshot, bool, error) {
	if !c.cacheable(month) {
		SnapshotLookups.WithLabelValues("bypass").Inc()
		return models.MonthSnapshot{}, false, nil
	}

	snapshot, found, err := c.repository.FindMonthSnapshot(month.String())
	if err != nil {
		return models.MonthSnapshot{}, false, err
	}

	if !found {
		SnapshotLookups.WithLabelValues("miss").Inc()
		log.Debug().Str("month", month.String()).Msg("snapshot cache miss")
		return models.MonthSnapshot{}, false, nil
	}

	SnapshotLookups.WithLabelValues("hit").Inc()
	log.Debug().Str("month", month.String()).Msg("snapshot cache hit")
	return snapshot, true, nil
}

// Save stores the snapshot if its month is closed. For open months, it does nothing.
func (c SnapshotCache) Save(month types.Month, snapshot models.MonthSnapshot) error {
	if !c.cacheable(month) {
		return nil
	}

	snapshot.Name = month.String()
	return c.repository.SaveMonthSnapshot(snapshot)
}

func (c SnapshotCache) cacheable(month types.Month) bool {
	if c.disabled || c.repository == nil {
		return false
	}

	current := types.MonthOf(c.now().In(time.UTC))
	return month.Before(current)
}
