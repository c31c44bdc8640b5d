package charts

import (
	"fmt"
	"strconv"
	"strings"
)

// SeriesProvider — источник временного ряда для графика динамики отрасли.
// Прод-код зависит только от интерфейса, чтобы синтетику можно было заменить
// реальным источником статистики без правки потребителей.
type SeriesProvider interface {
	Series(growthRate, trendDirection string, years int) TrendSeries
}

const defaultTrendYears = 6

// SyntheticTrendProvider строит иллюстративный ряд из качественных оценок
// ("rapid growth", "declining" и т.п.) по фиксированным множителям.
// Это НЕ измеренные данные: Synthetic в результате всегда true.
type SyntheticTrendProvider struct{}

// Фиксированные эвристики годового темпа (в процентах).
var growthRateTerms = []struct {
	term string
	rate float64
}{
	{"rapid", 12},
	{"explosive", 12},
	{"high", 10},
	{"strong", 10},
	{"moderate", 6},
	{"steady", 6},
	{"slow", 2},
	{"low", 2},
	{"stagnant", 0},
	{"flat", 0},
}

const defaultGrowthRate = 5.0

func (SyntheticTrendProvider) Series(growthRate, trendDirection string, years int) TrendSeries {
	if years <= 0 {
		years = defaultTrendYears
	}
	rate := parseGrowthRate(growthRate)
	if isDeclining(trendDirection) {
		rate = -rate
	}

	points := make([]TrendPoint, 0, years)
	value := 100.0
	for i := 0; i < years; i++ {
		points = append(points, TrendPoint{
			Name:  fmt.Sprintf("Year %d", i+1),
			Value: roundTo1(value),
		})
		value *= 1 + rate/100
	}
	return TrendSeries{Synthetic: true, Points: points}
}

// parseGrowthRate: число в строке ("8% annually") сильнее словаря.
func parseGrowthRate(s string) float64 {
	low := strings.ToLower(strings.TrimSpace(s))
	if low == "" {
		return defaultGrowthRate
	}
	if d := firstDigits(low); d != "" {
		if n, err := strconv.ParseFloat(d, 64); err == nil {
			if n > 25 {
				n = 25 // защита от абсурдных множителей в свободном тексте
			}
			return n
		}
	}
	for _, it := range growthRateTerms {
		if strings.Contains(low, it.term) {
			return it.rate
		}
	}
	return defaultGrowthRate
}

func isDeclining(trendDirection string) bool {
	low := strings.ToLower(trendDirection)
	for _, term := range []string{"declin", "negative", "down", "shrink", "contract"} {
		if strings.Contains(low, term) {
			return true
		}
	}
	return false
}

func roundTo1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
