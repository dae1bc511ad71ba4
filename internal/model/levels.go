package model

import "time"

// SwingKind distinguishes swing highs from swing lows.
type SwingKind string

const (
	SwingHigh SwingKind = "HIGH"
	SwingLow  SwingKind = "LOW"
)

// SwingPoint is a local price extremum over a symmetric neighborhood, used as
// an anchor for retracement analysis.
type SwingPoint struct {
	Time  time.Time
	Price float64
	Kind  SwingKind
}

// Level is a single price level emitted by one generator.
type Level struct {
	Price  float64
	Source string
}

// LevelGroup is a consolidated level built from nearby Levels of possibly
// different sources. Price is the arithmetic mean of the merged members.
type LevelGroup struct {
	Price    float64
	Sources  []string
	Strength int
}

// VolumeProfile is the full volume-by-price histogram, exposed for rendering
// independently of cluster selection.
type VolumeProfile struct {
	BinCenters []float64
	Volumes    []float64
	MinPrice   float64
	MaxPrice   float64
	BinSize    float64
}

// AnalysisResult is the final output of a technical level analysis run.
// Support holds groups below the current price, Resistance the rest; both are
// sorted by descending strength. Groups keeps every consolidated level in
// price order for debugging and rendering. SwingHighs, SwingLows and Profile
// are exposed so external renderers can display them independently.
type AnalysisResult struct {
	Symbol         string
	CurrentPrice   float64
	Support        []LevelGroup
	Resistance     []LevelGroup
	Groups         []LevelGroup
	SwingHighs     []SwingPoint
	SwingLows      []SwingPoint
	Profile        VolumeProfile
	VolatilityNote string
	GeneratedAt    time.Time
}
