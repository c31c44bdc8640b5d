package charts

import (
	"sort"

	"github.com/artem13815/careerpath/pkg/nlp"
	"github.com/artem13815/careerpath/pkg/report"
)

// Радар с большим числом осей нечитаем; верхняя граница фиксирована.
const maxRadarAxes = 6

type mergedSkill struct {
	name     string // first-encountered casing
	current  int
	required int
}

// TopSkillGaps строит оси радара "текущий vs требуемый уровень" по всему
// отчёту. Навыки из sfia9, digcomp22, gaps и strengths сливаются по имени
// без учёта регистра; при конфликте уровней побеждает максимальный.
// Сортировка — по убыванию разрыва, стабильная: при равном разрыве
// сохраняется порядок первого появления (фреймворки, затем gaps, затем
// strengths). Не более шести осей.
func TopSkillGaps(rep report.CareerAnalysisReport) []RadarAxis {
	var order []string
	merged := make(map[string]*mergedSkill)

	upsert := func(rawName string) *mergedSkill {
		key := nlp.Normalize(rawName)
		if key == "" {
			return nil
		}
		m, ok := merged[key]
		if !ok {
			m = &mergedSkill{name: rawName}
			merged[key] = m
			order = append(order, key)
		}
		return m
	}

	for _, e := range rep.SkillMapping.SFIA9 {
		if m := upsert(e.Skill); m != nil {
			m.current = maxInt(m.current, LevelValue(e.Level))
		}
	}
	for _, e := range rep.SkillMapping.DigComp22 {
		if m := upsert(e.Competency); m != nil {
			m.current = maxInt(m.current, LevelValue(e.Level))
		}
	}
	for _, g := range rep.SkillGapAnalysis.Gaps {
		if m := upsert(g.Skill); m != nil {
			m.required = maxInt(m.required, ImportanceValue(g.Importance))
		}
	}
	for _, s := range rep.SkillGapAnalysis.Strengths {
		if m := upsert(s.Skill); m != nil {
			m.current = maxInt(m.current, LevelValue(s.Level))
		}
	}

	axes := make([]RadarAxis, 0, len(order))
	for _, key := range order {
		m := merged[key]
		current := m.current
		if current == 0 {
			// навык встречался только в gaps — владения не зафиксировано
			current = minLevel
		}
		required := m.required
		if required == 0 {
			// только фреймворк-маппинг: целевой уровень по умолчанию на шаг выше
			required = clampLevel(current + 1)
		}
		axes = append(axes, RadarAxis{Skill: m.name, Current: current, Required: required})
	}

	sort.SliceStable(axes, func(i, j int) bool {
		return axes[i].Required-axes[i].Current > axes[j].Required-axes[j].Current
	})
	if len(axes) > maxRadarAxes {
		axes = axes[:maxRadarAxes]
	}
	return axes
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
