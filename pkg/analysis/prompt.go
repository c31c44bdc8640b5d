package analysis

import (
	"fmt"
	"strings"
)

// Промпты фиксируют точный JSON-контракт отчёта. Модель обязана вернуть
// только JSON; ограждения и пояснения всё равно срезаются при декодировании.

const systemPrompt = `You are a career guidance analyst. You map people's skills onto the SFIA 9 and DigComp 2.2 frameworks and produce structured career analyses. Return the result strictly as a single JSON object with no explanations and no markdown.`

const reportContract = `Return a JSON object with exactly this structure:
{
  "executiveSummary": {
    "summary": "<2-3 sentence synopsis>",
    "careerGoal": "<the desired role>",
    "fitScore": {"score": <number>, "outOf": 10},
    "keyFindings": ["<finding>", ...]
  },
  "skillMapping": {
    "sfia9": [{"skill": "<SFIA 9 skill>", "level": "<level description>", "description": "<short note>"}, ...],
    "digcomp22": [{"competency": "<DigComp 2.2 competency>", "level": "<level description>", "description": "<short note>"}, ...]
  },
  "skillGapAnalysis": {
    "aiAnalysis": "<narrative>",
    "gaps": [{"skill": "<missing skill>", "importance": "High|Medium|Low", "description": "<why it matters>"}, ...],
    "strengths": [{"skill": "<strength>", "level": "<level>", "relevance": "<relevance>", "description": "<note>"}, ...]
  },
  "careerPathway": {
    "aiRecommendations": "<narrative>",
    "withDegree": [{"role": "<role>", "timeframe": "<e.g. 0-12 months>", "keySkillsNeeded": ["<skill>", ...]}, ...],
    "withoutDegree": [{"role": "<role>", "timeframe": "<timeframe>", "keySkillsNeeded": ["<skill>", ...]}, ...]
  },
  "developmentPlan": {
    "personalizedGrowthInsights": "<narrative>",
    "socialSkills": "<narrative>",
    "reviewNotes": "<narrative>",
    "recommendedResources": [{"title": "<course/book>", "provider": "<provider>", "url": "<url>", "skill": "<skill it develops>"}, ...]
  },
  "similarRoles": [{"role": "<role>", "similarityScore": <0..1>, "potentialSalaryRange": "<range>", "locationSpecificDemand": "<demand>", "keySkillsOverlap": ["<skill>", ...], "uniqueRequirements": ["<requirement>", ...]}, ...]
}
Pathway steps must be listed in progression order. similarityScore must be between 0 and 1. fitScore.score must not exceed fitScore.outOf.`

func buildUserPrompt(sub Submission) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Candidate profile:\n")
	fmt.Fprintf(&b, "Professional level: %s\n", sub.ProfessionalLevel)
	fmt.Fprintf(&b, "Current skills: %s\n", sub.CurrentSkills)
	fmt.Fprintf(&b, "Education: %s\n", sub.EducationalBackground)
	fmt.Fprintf(&b, "Career history: %s\n", sub.CareerHistory)
	fmt.Fprintf(&b, "Desired role: %s\n", sub.DesiredRole)
	fmt.Fprintf(&b, "Location: %s, %s\n\n", sub.State, sub.Country)
	b.WriteString(reportContract)
	return b.String()
}
