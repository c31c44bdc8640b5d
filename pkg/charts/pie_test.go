package charts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/careerpath/pkg/report"
)

func TestGapImportancePie(t *testing.T) {
	rep := report.CareerAnalysisReport{
		SkillGapAnalysis: report.SkillGapAnalysis{
			Gaps: []report.GapEntry{
				{Skill: "Machine Learning", Importance: "High"},
				{Skill: "Statistics", Importance: "Medium"},
				{Skill: "Public Speaking", Importance: "Low"},
			},
		},
	}

	points := GapImportancePie(rep)
	require.Len(t, points, 3)
	assert.Equal(t, DataPoint{Name: "Machine Learning", Value: 4, Color: palette[0]}, points[0])
	assert.Equal(t, 3, points[1].Value)
	assert.Equal(t, 2, points[2].Value)
	// палитра порядковая: цвета различны для первых элементов
	assert.NotEqual(t, points[0].Color, points[1].Color)
}

func TestGapImportancePie_EmptySection(t *testing.T) {
	points := GapImportancePie(report.CareerAnalysisReport{})
	assert.NotNil(t, points)
	assert.Empty(t, points)
}

func TestSkillLevelBars_OrderAndLevels(t *testing.T) {
	rep := report.CareerAnalysisReport{
		SkillMapping: report.SkillMapping{
			SFIA9: []report.SkillEntry{
				{Skill: "Programming", Level: "Advanced"},
			},
			DigComp22: []report.CompetencyEntry{
				{Competency: "Data Literacy", Level: "Practitioner"},
			},
		},
	}

	points := SkillLevelBars(rep)
	require.Len(t, points, 2)
	assert.Equal(t, "Programming", points[0].Name)
	assert.Equal(t, 3, points[0].Value)
	assert.Equal(t, "Data Literacy", points[1].Name)
	assert.Equal(t, 2, points[1].Value)
}

func TestPercentagePie_SumsToExactlyHundred(t *testing.T) {
	tests := []struct {
		name   string
		values []int
	}{
		{"thirds", []int{1, 1, 1}},
		{"uneven", []int{3, 3, 1}},
		{"sevens", []int{1, 2, 4}},
		{"many small", []int{1, 1, 1, 1, 1, 1, 1}},
		{"single", []int{42}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := make([]DataPoint, len(tt.values))
			for i, v := range tt.values {
				in[i] = DataPoint{Name: "p", Value: v}
			}
			out := PercentagePie(in)
			require.Len(t, out, len(in))

			sum := 0
			total := 0
			for _, v := range tt.values {
				total += v
			}
			for i, p := range out {
				sum += p.Value
				// погрешность округления не больше единицы на элемент
				exact := float64(tt.values[i]) * 100 / float64(total)
				assert.InDelta(t, exact, float64(p.Value), 1.0)
			}
			assert.Equal(t, 100, sum)
		})
	}
}

func TestPercentagePie_ZeroAndEmpty(t *testing.T) {
	assert.Empty(t, PercentagePie(nil))
	assert.Empty(t, PercentagePie([]DataPoint{{Name: "a", Value: 0}}))
}
