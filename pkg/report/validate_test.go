package report

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validReportDoc returns a minimal well-formed report as a mutable document.
func validReportDoc() map[string]any {
	return map[string]any{
		"executiveSummary": map[string]any{
			"summary":    "Strong analytical background with a clear path into data science.",
			"careerGoal": "Data Scientist",
			"fitScore":   map[string]any{"score": 7.5, "outOf": 10},
			"keyFindings": []any{
				"Solid Python and SQL foundation",
				"No production ML experience yet",
			},
		},
		"skillMapping": map[string]any{
			"sfia9": []any{
				map[string]any{"skill": "Programming", "level": "Advanced", "description": "Python, SQL"},
				map[string]any{"skill": "Data Analysis", "level": "Intermediate", "description": ""},
			},
			"digcomp22": []any{
				map[string]any{"competency": "Data Literacy", "level": "Practitioner", "description": ""},
			},
		},
		"skillGapAnalysis": map[string]any{
			"aiAnalysis": "The main gap is applied machine learning.",
			"gaps": []any{
				map[string]any{"skill": "Machine Learning", "importance": "High", "description": "Core requirement"},
			},
			"strengths": []any{
				map[string]any{"skill": "Python", "level": "Advanced", "relevance": "High", "description": ""},
			},
		},
		"careerPathway": map[string]any{
			"aiRecommendations": "Start with a junior analyst role.",
			"withDegree": []any{
				map[string]any{
					"role":            "Junior Data Analyst",
					"timeframe":       "0-12 months",
					"keySkillsNeeded": []any{"SQL", "Machine Learning"},
				},
				map[string]any{
					"role":            "Data Scientist",
					"timeframe":       "1-3 years",
					"keySkillsNeeded": []any{"Machine Learning", "Statistics"},
				},
			},
		},
		"developmentPlan": map[string]any{
			"personalizedGrowthInsights": "Focus on one end-to-end ML project.",
		},
		"similarRoles": []any{
			map[string]any{
				"role":                   "ML Engineer",
				"similarityScore":        0.82,
				"potentialSalaryRange":   "$95k-$140k",
				"locationSpecificDemand": "High",
				"keySkillsOverlap":       []any{"Python"},
				"uniqueRequirements":     []any{"MLOps"},
			},
		},
	}
}

func marshalDoc(t *testing.T, doc map[string]any) []byte {
	t.Helper()
	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	return raw
}

func TestValidate_WellFormedReport(t *testing.T) {
	rep, err := Validate(marshalDoc(t, validReportDoc()))
	require.NoError(t, err)

	assert.Equal(t, "Data Scientist", rep.ExecutiveSummary.CareerGoal)
	assert.Equal(t, 7.5, rep.ExecutiveSummary.FitScore.Score)
	assert.Len(t, rep.SkillMapping.SFIA9, 2)
	assert.Len(t, rep.SkillMapping.DigComp22, 1)
	assert.Equal(t, "Machine Learning", rep.SkillGapAnalysis.Gaps[0].Skill)
	assert.Equal(t, "Junior Data Analyst", rep.CareerPathway.WithDegree[0].Role)
	assert.InDelta(t, 0.82, rep.SimilarRoles[0].SimilarityScore, 1e-9)
}

func TestValidate_MissingSectionNamesIt(t *testing.T) {
	for _, section := range []string{
		"executiveSummary",
		"skillMapping",
		"skillGapAnalysis",
		"careerPathway",
		"developmentPlan",
		"similarRoles",
	} {
		t.Run(section, func(t *testing.T) {
			doc := validReportDoc()
			delete(doc, section)

			_, err := Validate(marshalDoc(t, doc))
			require.Error(t, err)

			var se *SectionError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, section, se.Section)
		})
	}
}

func TestValidate_SectionWithWrongShape(t *testing.T) {
	doc := validReportDoc()
	doc["skillGapAnalysis"].(map[string]any)["gaps"] = "not an array"

	_, err := Validate(marshalDoc(t, doc))
	require.Error(t, err)

	var se *SectionError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "skillGapAnalysis", se.Section)
}

func TestValidate_FitScoreExceedsOutOf(t *testing.T) {
	doc := validReportDoc()
	doc["executiveSummary"].(map[string]any)["fitScore"] = map[string]any{"score": 11, "outOf": 10}

	_, err := Validate(marshalDoc(t, doc))
	require.Error(t, err)

	var se *SectionError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "executiveSummary", se.Section)
}

func TestValidate_SimilarityScoreOutOfRange(t *testing.T) {
	doc := validReportDoc()
	doc["similarRoles"] = []any{
		map[string]any{"role": "ML Engineer", "similarityScore": 1.5},
	}

	_, err := Validate(marshalDoc(t, doc))
	require.Error(t, err)

	var se *SectionError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "similarRoles", se.Section)
}

func TestValidate_NotJSON(t *testing.T) {
	_, err := Validate([]byte("sorry, I could not generate a report"))
	require.Error(t, err)
}

func TestValidate_NormalizesNilSlices(t *testing.T) {
	doc := validReportDoc()
	doc["similarRoles"] = []any{}
	doc["skillMapping"].(map[string]any)["digcomp22"] = []any{}

	rep, err := Validate(marshalDoc(t, doc))
	require.NoError(t, err)

	assert.NotNil(t, rep.SimilarRoles)
	assert.NotNil(t, rep.SkillMapping.DigComp22)
	assert.Empty(t, rep.SimilarRoles)
}

func TestValidate_Deterministic(t *testing.T) {
	raw := marshalDoc(t, validReportDoc())
	a, err1 := Validate(raw)
	b, err2 := Validate(raw)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, a, b)
}
