package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "machine learning", Normalize("  Machine-Learning!  "))
	assert.Equal(t, "c 4 5", Normalize("C# 4.5"))
	assert.Equal(t, "", Normalize("––––"))
}

func TestContainsPhrase(t *testing.T) {
	text := Normalize("Python, SQL and REST API design")
	assert.True(t, ContainsPhrase(text, "rest api"))
	assert.False(t, ContainsPhrase(text, "api design patterns"))
	assert.False(t, ContainsPhrase(text, ""))
}

func TestMentionsSkill(t *testing.T) {
	skills := "Python, SQL, Golang"
	assert.True(t, MentionsSkill(skills, "python"))
	// алиасы: golang в тексте должен закрывать навык "Go"
	assert.True(t, MentionsSkill(skills, "Go"))
	assert.False(t, MentionsSkill(skills, "Machine Learning"))
	assert.False(t, MentionsSkill("", "python"))
}

func TestSkillVariants(t *testing.T) {
	assert.Contains(t, SkillVariants("ML"), "machine learning")
	assert.Contains(t, SkillVariants("PostgreSQL"), "postgres")
	assert.Empty(t, SkillVariants("  "))
}
