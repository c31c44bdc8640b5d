package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/artem13815/careerpath/schemas"
)

// SectionError — ошибка валидации, привязанная к конкретной секции отчёта.
// Наружу уходит одна ошибка с именем первой сломанной секции.
type SectionError struct {
	Section string
	Detail  string
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("invalid report section %q: %s", e.Section, e.Detail)
}

var reportSchema = mustCompileSchema()

func mustCompileSchema() *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemas.CareerReport))
	if err != nil {
		panic(fmt.Sprintf("career report schema does not compile: %v", err))
	}
	return s
}

// Validate проверяет сырой JSON от LLM структурно (по JSON Schema) и по
// числовым диапазонам. Осмысленность текста не проверяется. Чистая функция.
func Validate(raw []byte) (CareerAnalysisReport, error) {
	result, err := reportSchema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return CareerAnalysisReport{}, &SectionError{Section: "document", Detail: err.Error()}
	}
	if !result.Valid() {
		re := result.Errors()[0]
		return CareerAnalysisReport{}, &SectionError{
			Section: sectionOf(re),
			Detail:  re.Description(),
		}
	}

	var rep CareerAnalysisReport
	if err := json.Unmarshal(raw, &rep); err != nil {
		return CareerAnalysisReport{}, &SectionError{Section: "document", Detail: err.Error()}
	}
	if err := checkRanges(rep); err != nil {
		return CareerAnalysisReport{}, err
	}
	rep.normalize()
	return rep, nil
}

// sectionOf возвращает имя верхнеуровневой секции, к которой относится ошибка схемы.
func sectionOf(re gojsonschema.ResultError) string {
	field := re.Field()
	if field == "(root)" || field == "" {
		// missing required property at the root: gojsonschema reports it on
		// the parent, the property name lives in details
		if p, ok := re.Details()["property"].(string); ok && p != "" {
			return p
		}
		return "document"
	}
	if i := strings.IndexByte(field, '.'); i > 0 {
		return field[:i]
	}
	return field
}

func checkRanges(rep CareerAnalysisReport) error {
	fs := rep.ExecutiveSummary.FitScore
	if fs.Score > fs.OutOf {
		return &SectionError{
			Section: "executiveSummary",
			Detail:  fmt.Sprintf("fitScore.score %.2f exceeds outOf %.2f", fs.Score, fs.OutOf),
		}
	}
	for _, sr := range rep.SimilarRoles {
		if sr.SimilarityScore < 0 || sr.SimilarityScore > 1 {
			return &SectionError{
				Section: "similarRoles",
				Detail:  fmt.Sprintf("similarityScore %.3f for %q is outside [0,1]", sr.SimilarityScore, sr.Role),
			}
		}
	}
	return nil
}

// normalize заменяет nil-срезы пустыми, чтобы отчёт сериализовался стабильно
// и потребителям никогда не доставался null вместо списка.
func (r *CareerAnalysisReport) normalize() {
	if r.ExecutiveSummary.KeyFindings == nil {
		r.ExecutiveSummary.KeyFindings = []string{}
	}
	if r.SkillMapping.SFIA9 == nil {
		r.SkillMapping.SFIA9 = []SkillEntry{}
	}
	if r.SkillMapping.DigComp22 == nil {
		r.SkillMapping.DigComp22 = []CompetencyEntry{}
	}
	if r.SkillGapAnalysis.Gaps == nil {
		r.SkillGapAnalysis.Gaps = []GapEntry{}
	}
	if r.SkillGapAnalysis.Strengths == nil {
		r.SkillGapAnalysis.Strengths = []StrengthEntry{}
	}
	if r.CareerPathway.WithDegree == nil {
		r.CareerPathway.WithDegree = []PathwayStep{}
	}
	for i := range r.CareerPathway.WithDegree {
		if r.CareerPathway.WithDegree[i].KeySkillsNeeded == nil {
			r.CareerPathway.WithDegree[i].KeySkillsNeeded = []string{}
		}
	}
	for i := range r.CareerPathway.WithoutDegree {
		if r.CareerPathway.WithoutDegree[i].KeySkillsNeeded == nil {
			r.CareerPathway.WithoutDegree[i].KeySkillsNeeded = []string{}
		}
	}
	if r.SimilarRoles == nil {
		r.SimilarRoles = []SimilarRole{}
	}
	for i := range r.SimilarRoles {
		if r.SimilarRoles[i].KeySkillsOverlap == nil {
			r.SimilarRoles[i].KeySkillsOverlap = []string{}
		}
		if r.SimilarRoles[i].UniqueRequirements == nil {
			r.SimilarRoles[i].UniqueRequirements = []string{}
		}
	}
}
