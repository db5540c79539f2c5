package services

import (
	"errors"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	EstimateRatePerM2     = 15000
	twoFloorMultiplier    = 1.3
	singleFloorMultiplier = 1.0
	maxEstimateArea       = 100000
)

var (
	ErrInvalidArea   = errors.New("area must be a positive number of square meters")
	ErrInvalidFloors = errors.New("floors must be 1 or 2")
)

type Estimate struct {
	Area       int
	Floors     int
	RatePerM2  int
	Multiplier float64
	Total      int64
}

var rubPrinter = message.NewPrinter(language.Russian)

// Formatted renders the total with Russian digit grouping, e.g. "1 950 000 руб.".
func (e Estimate) Formatted() string {
	return rubPrinter.Sprintf("%d руб.", e.Total)
}

// CalculateEstimate returns the preliminary construction price shown by the
// site calculator: area x base rate, x1.3 for a two-storey house.
func CalculateEstimate(area, floors int) (Estimate, error) {
	if area <= 0 || area > maxEstimateArea {
		return Estimate{}, ErrInvalidArea
	}

	multiplier := singleFloorMultiplier
	switch floors {
	case 1:
	case 2:
		multiplier = twoFloorMultiplier
	default:
		return Estimate{}, ErrInvalidFloors
	}

	total := math.Round(float64(area) * EstimateRatePerM2 * multiplier)
	return Estimate{
		Area:       area,
		Floors:     floors,
		RatePerM2:  EstimateRatePerM2,
		Multiplier: multiplier,
		Total:      int64(total),
	}, nil
}
