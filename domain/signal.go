package domain

import (
	"time"
)

// SignalKind is the direction of a generated trading signal.
type SignalKind string

const (
	SignalBuy  SignalKind = "buy"
	SignalSell SignalKind = "sell"
	SignalHold SignalKind = "hold"
)

// PricePoint is a single close price observation.
type PricePoint struct {
	Timestamp time.Time `json:"timestamp"`
	Close     float64   `json:"close"`
}

// ShortTermSignal is the result of the momentum signal generator.
type ShortTermSignal struct {
	Symbol     string     `json:"symbol"`
	Signal     SignalKind `json:"signal"`
	Confidence float64    `json:"confidence"`
	AsOfUTC    time.Time  `json:"as_of_utc"`
}
