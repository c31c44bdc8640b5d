package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

func TestCareerReportSchema_ValidJSON(t *testing.T) {
	var v interface{}
	err := json.Unmarshal(CareerReport, &v)
	require.NoError(t, err, "schema file should be valid JSON")
}

func TestCareerReportSchema_Compiles(t *testing.T) {
	_, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(CareerReport))
	require.NoError(t, err, "schema should compile as draft-07 JSON Schema")
}

func TestCareerReportSchema_DeclaresAllSections(t *testing.T) {
	var schemaObj map[string]interface{}
	require.NoError(t, json.Unmarshal(CareerReport, &schemaObj))

	props, ok := schemaObj["properties"].(map[string]interface{})
	require.True(t, ok, "schema should declare properties")

	for _, section := range []string{
		"executiveSummary",
		"skillMapping",
		"skillGapAnalysis",
		"careerPathway",
		"developmentPlan",
		"similarRoles",
	} {
		_, has := props[section]
		assert.True(t, has, "schema should declare section %q", section)
	}
}
