package pipeline

import (
	"time"

	"github.com/tiMaxal/cardhatch/pkg/logger"
	"github.com/tiMaxal/cardhatch/pkg/models"
)

// Report accumulates what one run did, for the end-of-run summary.
type Report struct {
	RowsRead     int
	CardsPlanned int
	PagePairs    int
	PagesWritten int
	Warnings     []models.QtyWarning
	StartTime    time.Time
	EndTime      time.Time
}

func (r *Report) Print(log *logger.Logger) {
	log.Info("Run complete:")
	log.Info("- Rows read: %d", r.RowsRead)
	log.Info("- Cards planned: %d", r.CardsPlanned)
	log.Info("- Page pairs: %d (%d PDF pages)", r.PagePairs, r.PagesWritten)
	log.Info("- Elapsed: %s", r.EndTime.Sub(r.StartTime).Round(time.Millisecond))

	if len(r.Warnings) > 0 {
		log.Warn("Issues found in qty column (defaulted to 1):")
		for _, w := range r.Warnings {
			log.Warn("- Row %d: value %q", w.Row+1, w.Value)
		}
	}
}
