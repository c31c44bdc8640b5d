package charts

import (
	"math"
	"strconv"
	"strings"
)

const (
	minLevel = 1
	maxLevel = 5
)

// levelTerms maps free-text level descriptions to the 1..5 scale. Scanned
// from the highest level down, terms within a level in declared order, first
// substring match wins. Numeric input always takes precedence over this table.
var levelTerms = []struct {
	value int
	terms []string
}{
	{5, []string{"master", "leading", "strategic", "principal", "specialized"}},
	{4, []string{"expert", "senior", "authority", "extensive"}},
	{3, []string{"advanced", "experienced", "established", "proficient"}},
	{2, []string{"intermediate", "practitioner", "applied"}},
	{1, []string{"novice", "basic", "foundation", "beginner", "initial"}},
}

const defaultLevel = 2

// LevelValue нормализует свободный текст уровня владения навыком в целое из
// [1,5]. Порядок правил фиксирован: число → цифры в строке → словарь → 2.
// Тотальная функция: на любом входе возвращает валидный уровень.
func LevelValue(v any) int {
	switch n := v.(type) {
	case nil:
		return defaultLevel
	case int:
		return clampLevel(n)
	case int64:
		return clampLevel(int(n))
	case float32:
		return clampLevel(int(math.Round(float64(n))))
	case float64:
		return clampLevel(int(math.Round(n)))
	case string:
		return levelFromString(n)
	default:
		return defaultLevel
	}
}

func levelFromString(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return defaultLevel
	}
	// "Level 3 expert" → 3: числовая подсказка всегда сильнее словаря
	if d := firstDigits(s); d != "" {
		if n, err := strconv.Atoi(d); err == nil {
			return clampLevel(n)
		}
	}
	low := strings.ToLower(s)
	for _, group := range levelTerms {
		for _, term := range group.terms {
			if strings.Contains(low, term) {
				return group.value
			}
		}
	}
	return defaultLevel
}

func firstDigits(s string) string {
	start := -1
	for i, r := range s {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			return s[start:i]
		}
	}
	if start >= 0 {
		return s[start:]
	}
	return ""
}

func clampLevel(n int) int {
	if n < minLevel {
		return minLevel
	}
	if n > maxLevel {
		return maxLevel
	}
	return n
}

// importanceTerms: от специфичного к общему, чтобы "Very Low" не матчился как "Low".
var importanceTerms = []struct {
	value int
	term  string
}{
	{5, "critical"},
	{1, "very low"},
	{4, "high"},
	{3, "medium"},
	{2, "low"},
}

const defaultImportance = 3

// ImportanceValue переводит текст важности/востребованности в 5..1.
func ImportanceValue(s string) int {
	low := strings.ToLower(strings.TrimSpace(s))
	if low == "" {
		return defaultImportance
	}
	for _, it := range importanceTerms {
		if strings.Contains(low, it.term) {
			return it.value
		}
	}
	return defaultImportance
}
