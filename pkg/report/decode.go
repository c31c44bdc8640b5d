package report

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrNoJSON возвращается, когда в ответе модели не нашлось JSON-объекта.
var ErrNoJSON = errors.New("no JSON object found in model reply")

// ExtractJSON вырезает JSON-объект из ответа LLM: модели любят оборачивать
// ответ в markdown-ограждения или приписывать пояснения вокруг.
func ExtractJSON(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	if strings.HasPrefix(raw, "{") && strings.HasSuffix(raw, "}") {
		return raw, nil
	}
	i := strings.Index(raw, "{")
	j := strings.LastIndex(raw, "}")
	if i < 0 || j <= i {
		return "", ErrNoJSON
	}
	return raw[i : j+1], nil
}

// DecodeLenient извлекает JSON из сырого ответа модели и валидирует его.
func DecodeLenient(raw string) (CareerAnalysisReport, error) {
	body, err := ExtractJSON(raw)
	if err != nil {
		return CareerAnalysisReport{}, err
	}
	return Validate([]byte(canonicalizeFieldNames([]byte(body))))
}

// Legacy field names seen in older records; canonical names win.
var legacyDevelopmentPlanFields = map[string]string{
	"qualityReview":           "reviewNotes",
	"socialSkillsDevelopment": "socialSkills",
}

// DecodeStored декодирует отчёт, прочитанный из хранилища, сворачивая
// устаревшие имена полей в канонические. Обратно устаревшие имена никогда
// не записываются.
func DecodeStored(raw []byte) (CareerAnalysisReport, error) {
	var rep CareerAnalysisReport
	if err := json.Unmarshal(canonicalizeFieldNames(raw), &rep); err != nil {
		return CareerAnalysisReport{}, err
	}
	rep.normalize()
	return rep, nil
}

// canonicalizeFieldNames переименовывает legacy-поля developmentPlan.
// Если присутствуют оба имени, каноническое имеет приоритет.
func canonicalizeFieldNames(raw []byte) []byte {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return raw
	}
	planRaw, ok := doc["developmentPlan"]
	if !ok {
		return raw
	}
	var plan map[string]json.RawMessage
	if err := json.Unmarshal(planRaw, &plan); err != nil {
		return raw
	}
	changed := false
	for legacy, canonical := range legacyDevelopmentPlanFields {
		v, has := plan[legacy]
		if !has {
			continue
		}
		if _, hasCanonical := plan[canonical]; !hasCanonical {
			plan[canonical] = v
		}
		delete(plan, legacy)
		changed = true
	}
	if !changed {
		return raw
	}
	newPlan, err := json.Marshal(plan)
	if err != nil {
		return raw
	}
	doc["developmentPlan"] = newPlan
	out, err := json.Marshal(doc)
	if err != nil {
		return raw
	}
	return out
}
