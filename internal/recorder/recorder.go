package recorder

import (
	"time"

	"github.com/google/uuid"

	"github.com/quangvo55/spx-levels/internal/model"
)

// RunRecord is the audit row written for one analysis run. It is a write-only
// trail for later inspection; nothing in the pipeline ever reads it back.
type RunRecord struct {
	ID              string
	Time            time.Time
	Symbol          string
	CurrentPrice    float64
	SupportCount    int
	ResistanceCount int
	TopSupport      float64
	TopSupportStr   int
	TopResist       float64
	TopResistStr    int
	SwingHighs      int
	SwingLows       int
	VolatilityNote  string
}

// NewRunRecord summarizes an analysis result into an audit row.
func NewRunRecord(result *model.AnalysisResult) *RunRecord {
	rec := &RunRecord{
		ID:              uuid.NewString(),
		Time:            result.GeneratedAt,
		Symbol:          result.Symbol,
		CurrentPrice:    result.CurrentPrice,
		SupportCount:    len(result.Support),
		ResistanceCount: len(result.Resistance),
		SwingHighs:      len(result.SwingHighs),
		SwingLows:       len(result.SwingLows),
		VolatilityNote:  result.VolatilityNote,
	}
	if len(result.Support) > 0 {
		rec.TopSupport = result.Support[0].Price
		rec.TopSupportStr = result.Support[0].Strength
	}
	if len(result.Resistance) > 0 {
		rec.TopResist = result.Resistance[0].Price
		rec.TopResistStr = result.Resistance[0].Strength
	}
	return rec
}

// Recorder persists run records for later inspection.
type Recorder interface {
	RecordRun(rec *RunRecord) error
	Close() error
}

// NoopRecorder is used when no database is configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordRun(_ *RunRecord) error { return nil }
func (n *NoopRecorder) Close() error                 { return nil }
