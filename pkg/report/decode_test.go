package report

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "clean object", in: `{"a":1}`, want: `{"a":1}`},
		{name: "fenced json", in: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "plain fence", in: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "prose around", in: "Here is the report:\n{\"a\":1}\nHope this helps!", want: `{"a":1}`},
		{name: "no json at all", in: "I cannot help with that.", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrNoJSON)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeLenient_FencedModelReply(t *testing.T) {
	raw := marshalDoc(t, validReportDoc())
	reply := "Sure! Here is the structured analysis:\n```json\n" + string(raw) + "\n```"

	rep, err := DecodeLenient(reply)
	require.NoError(t, err)
	assert.Equal(t, "Data Scientist", rep.ExecutiveSummary.CareerGoal)
}

func TestDecodeLenient_InvalidReportStillFails(t *testing.T) {
	_, err := DecodeLenient("```json\n{\"executiveSummary\": {}}\n```")
	require.Error(t, err)
}

func TestDecodeStored_FoldsLegacyFieldNames(t *testing.T) {
	doc := validReportDoc()
	doc["developmentPlan"] = map[string]any{
		"personalizedGrowthInsights": "insights",
		"qualityReview":              "looks solid",
		"socialSkillsDevelopment":    "join a local meetup",
	}

	rep, err := DecodeStored(marshalDoc(t, doc))
	require.NoError(t, err)

	assert.Equal(t, "looks solid", rep.DevelopmentPlan.ReviewNotes)
	assert.Equal(t, "join a local meetup", rep.DevelopmentPlan.SocialSkills)
}

func TestDecodeStored_CanonicalNameWinsOverLegacy(t *testing.T) {
	doc := validReportDoc()
	doc["developmentPlan"] = map[string]any{
		"personalizedGrowthInsights": "insights",
		"reviewNotes":                "canonical",
		"qualityReview":              "legacy",
	}

	rep, err := DecodeStored(marshalDoc(t, doc))
	require.NoError(t, err)
	assert.Equal(t, "canonical", rep.DevelopmentPlan.ReviewNotes)
}

func TestDecodeStored_RoundTripIsLossless(t *testing.T) {
	rep, err := Validate(marshalDoc(t, validReportDoc()))
	require.NoError(t, err)

	raw, err := json.Marshal(rep)
	require.NoError(t, err)

	back, err := DecodeStored(raw)
	require.NoError(t, err)
	assert.Equal(t, rep, back)
}
