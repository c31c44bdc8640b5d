package charts

import (
	"sort"

	"github.com/artem13815/careerpath/pkg/report"
)

// GapImportancePie раскладывает пробелы в навыках по важности для круговой
// диаграммы. Пустая секция отчёта даёт пустой (не nil) срез.
func GapImportancePie(rep report.CareerAnalysisReport) []DataPoint {
	out := make([]DataPoint, 0, len(rep.SkillGapAnalysis.Gaps))
	for i, g := range rep.SkillGapAnalysis.Gaps {
		out = append(out, DataPoint{
			Name:  g.Skill,
			Value: ImportanceValue(g.Importance),
			Color: colorAt(i),
		})
	}
	return out
}

// SkillLevelBars — уровни навыков обоих фреймворков для bar-чарта, в порядке
// появления в отчёте (sfia9, затем digcomp22).
func SkillLevelBars(rep report.CareerAnalysisReport) []DataPoint {
	out := make([]DataPoint, 0, len(rep.SkillMapping.SFIA9)+len(rep.SkillMapping.DigComp22))
	for _, e := range rep.SkillMapping.SFIA9 {
		out = append(out, DataPoint{
			Name:  e.Skill,
			Value: LevelValue(e.Level),
			Color: colorAt(len(out)),
		})
	}
	for _, e := range rep.SkillMapping.DigComp22 {
		out = append(out, DataPoint{
			Name:  e.Competency,
			Value: LevelValue(e.Level),
			Color: colorAt(len(out)),
		})
	}
	return out
}

// PercentagePie нормирует значения так, чтобы сумма была ровно 100.
// Округление методом наибольших остатков: погрешность на элемент не
// превышает единицы. Нулевая сумма на входе даёт пустой результат.
func PercentagePie(points []DataPoint) []DataPoint {
	total := 0
	for _, p := range points {
		if p.Value > 0 {
			total += p.Value
		}
	}
	if total == 0 {
		return []DataPoint{}
	}

	type share struct {
		idx       int
		floor     int
		remainder int // доля в сотых процента, отброшенная при целочисленном делении
	}
	shares := make([]share, 0, len(points))
	sum := 0
	for i, p := range points {
		v := p.Value
		if v < 0 {
			v = 0
		}
		scaled := v * 100
		shares = append(shares, share{idx: i, floor: scaled / total, remainder: scaled % total})
		sum += scaled / total
	}

	// раздаём недостающие до 100 единицы элементам с наибольшим остатком
	left := 100 - sum
	bump := make([]int, len(points))
	orderIdx := make([]int, len(shares))
	for i := range orderIdx {
		orderIdx[i] = i
	}
	sort.SliceStable(orderIdx, func(a, b int) bool {
		return shares[orderIdx[a]].remainder > shares[orderIdx[b]].remainder
	})
	for i := 0; i < left && i < len(orderIdx); i++ {
		bump[orderIdx[i]] = 1
	}

	out := make([]DataPoint, len(points))
	for i, p := range points {
		out[i] = DataPoint{Name: p.Name, Value: shares[i].floor + bump[i], Color: p.Color}
	}
	return out
}
