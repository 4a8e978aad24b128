package deck

import (
	"math"

	"github.com/vovakirdan/tui-royale/internal/catalog"
)

// Cost bucket bounds for the histogram.
const (
	lowCostMax = 3
	midCostMax = 6
)

// Histogram counts deck cards by cost bucket.
type Histogram struct {
	Low  int // cost <= 3
	Mid  int // cost 4-6
	High int // cost >= 7
}

// Total returns the number of cards counted.
func (h Histogram) Total() int {
	return h.Low + h.Mid + h.High
}

// Stats is the deck analysis panel.
type Stats struct {
	AverageCost float64
	Troops      int
	Spells      int
	Buildings   int
	Costs       Histogram
}

// AverageCost returns the mean cost of cards rounded to one decimal place,
// halves rounding away from zero.
func AverageCost(cards [Size]catalog.Card) float64 {
	sum := 0
	for _, c := range cards {
		sum += c.Cost
	}
	return math.Round(float64(sum*10)/Size) / 10
}

// CountByCategory returns how many cards belong to category.
func CountByCategory(cards [Size]catalog.Card, category catalog.Category) int {
	n := 0
	for _, c := range cards {
		if c.Category == category {
			n++
		}
	}
	return n
}

// CostHistogram buckets cards by cost.
func CostHistogram(cards [Size]catalog.Card) Histogram {
	var h Histogram
	for _, c := range cards {
		switch {
		case c.Cost <= lowCostMax:
			h.Low++
		case c.Cost <= midCostMax:
			h.Mid++
		default:
			h.High++
		}
	}
	return h
}

// Analyze computes every statistic at once.
func Analyze(cards [Size]catalog.Card) Stats {
	return Stats{
		AverageCost: AverageCost(cards),
		Troops:      CountByCategory(cards, catalog.CategoryTroop),
		Spells:      CountByCategory(cards, catalog.CategorySpell),
		Buildings:   CountByCategory(cards, catalog.CategoryBuilding),
		Costs:       CostHistogram(cards),
	}
}
