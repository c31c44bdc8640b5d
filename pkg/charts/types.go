// Package charts converts report sections into the flat shapes chart
// primitives consume. All adapters are pure: no I/O, no randomness, and a
// missing section degrades to an empty slice, never to nil or a panic.
package charts

// DataPoint — единица данных для pie/bar графиков.
type DataPoint struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// RadarAxis — одна ось радара сравнения текущего и требуемого уровня навыка.
type RadarAxis struct {
	Skill    string `json:"skill"`
	Current  int    `json:"current"`
	Required int    `json:"required"`
}

// TrendPoint — точка временного ряда.
type TrendPoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// TrendSeries — временной ряд для графика динамики отрасли. Synthetic
// выставлен, когда ряд построен эвристикой, а не измерен — потребитель
// обязан подписать такие данные как иллюстративные.
type TrendSeries struct {
	Synthetic bool         `json:"synthetic"`
	Points    []TrendPoint `json:"points"`
}

// Фиксированная порядковая палитра; цвета назначаются по индексу элемента.
var palette = []string{
	"#6366f1", // indigo
	"#22c55e", // green
	"#f59e0b", // amber
	"#ef4444", // red
	"#06b6d4", // cyan
	"#a855f7", // purple
	"#84cc16", // lime
	"#f97316", // orange
}

func colorAt(i int) string {
	return palette[i%len(palette)]
}
