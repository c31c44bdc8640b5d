package charts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/careerpath/pkg/report"
)

func TestTopSkillGaps_MergesSectionsCaseInsensitively(t *testing.T) {
	rep := report.CareerAnalysisReport{
		SkillMapping: report.SkillMapping{
			SFIA9: []report.SkillEntry{
				{Skill: "Python", Level: "Advanced"},
			},
		},
		SkillGapAnalysis: report.SkillGapAnalysis{
			Gaps: []report.GapEntry{
				{Skill: "python", Importance: "High"},
			},
			Strengths: []report.StrengthEntry{
				{Skill: "PYTHON", Level: "Expert"},
			},
		},
	}

	axes := TopSkillGaps(rep)
	require.Len(t, axes, 1)
	// first-encountered casing is preserved
	assert.Equal(t, "Python", axes[0].Skill)
	// conflicting levels: max wins (Advanced=3 vs Expert=4)
	assert.Equal(t, 4, axes[0].Current)
	// gap importance High → required 4
	assert.Equal(t, 4, axes[0].Required)
}

func TestTopSkillGaps_FrameworkOnlyDefaultsRequiredToCurrentPlusOne(t *testing.T) {
	rep := report.CareerAnalysisReport{
		SkillMapping: report.SkillMapping{
			SFIA9: []report.SkillEntry{
				{Skill: "Data Analysis", Level: "Intermediate"},
			},
		},
	}

	axes := TopSkillGaps(rep)
	require.Len(t, axes, 1)
	assert.Equal(t, 2, axes[0].Current)
	assert.Equal(t, 3, axes[0].Required)
}

func TestTopSkillGaps_GapOnlySkillHasMinimalCurrent(t *testing.T) {
	rep := report.CareerAnalysisReport{
		SkillGapAnalysis: report.SkillGapAnalysis{
			Gaps: []report.GapEntry{
				{Skill: "Machine Learning", Importance: "High"},
			},
		},
	}

	axes := TopSkillGaps(rep)
	require.Len(t, axes, 1)
	assert.Equal(t, 1, axes[0].Current)
	assert.Equal(t, 4, axes[0].Required)
}

func TestTopSkillGaps_SortsByGapDescendingAndCapsAtSix(t *testing.T) {
	rep := report.CareerAnalysisReport{
		SkillMapping: report.SkillMapping{
			SFIA9: []report.SkillEntry{
				{Skill: "A", Level: "Expert"},        // gap 1 (4→5)
				{Skill: "B", Level: "Beginner"},      // gap 1 (1→2)
				{Skill: "C", Level: "Intermediate"},  // gap 1 (2→3)
				{Skill: "D", Level: "Advanced"},      // gap 1 (3→4)
				{Skill: "E", Level: "Master"},        // gap 0 (5→5, clamped)
				{Skill: "F", Level: "Practitioner"},  // gap 1
				{Skill: "G", Level: "Intermediate"},  // gap 1
			},
			DigComp22: []report.CompetencyEntry{},
		},
		SkillGapAnalysis: report.SkillGapAnalysis{
			Gaps: []report.GapEntry{
				{Skill: "H", Importance: "Critical"}, // gap 4 (1→5)
			},
		},
	}

	axes := TopSkillGaps(rep)
	require.Len(t, axes, 6)
	assert.Equal(t, "H", axes[0].Skill)
	// стабильность: при равном разрыве сохраняется порядок появления
	assert.Equal(t, "A", axes[1].Skill)
	assert.Equal(t, "B", axes[2].Skill)
	assert.Equal(t, "C", axes[3].Skill)
	assert.Equal(t, "D", axes[4].Skill)
	assert.Equal(t, "F", axes[5].Skill)
}

func TestTopSkillGaps_EmptyReport(t *testing.T) {
	axes := TopSkillGaps(report.CareerAnalysisReport{})
	assert.NotNil(t, axes)
	assert.Empty(t, axes)
}
