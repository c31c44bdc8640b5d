package report

// CareerAnalysisReport — итоговый отчёт карьерного анализа, который генерирует LLM.
// Структура фиксирована; свободный текст внутри секций не интерпретируется.
type CareerAnalysisReport struct {
	ExecutiveSummary ExecutiveSummary `json:"executiveSummary"`
	SkillMapping     SkillMapping     `json:"skillMapping"`
	SkillGapAnalysis SkillGapAnalysis `json:"skillGapAnalysis"`
	CareerPathway    CareerPathway    `json:"careerPathway"`
	DevelopmentPlan  DevelopmentPlan  `json:"developmentPlan"`
	SimilarRoles     []SimilarRole    `json:"similarRoles"`
}

// ExecutiveSummary — краткое резюме отчёта с числовой оценкой соответствия.
type ExecutiveSummary struct {
	Summary     string   `json:"summary"`
	CareerGoal  string   `json:"careerGoal"`
	FitScore    FitScore `json:"fitScore"`
	KeyFindings []string `json:"keyFindings"`
}

type FitScore struct {
	Score float64 `json:"score"`
	OutOf float64 `json:"outOf"`
}

// SkillMapping — два независимых трека классификации навыков.
// Ровно два фреймворка: SFIA 9 и DigComp 2.2; их таксономии здесь не валидируются.
type SkillMapping struct {
	SFIA9     []SkillEntry      `json:"sfia9"`
	DigComp22 []CompetencyEntry `json:"digcomp22"`
}

type SkillEntry struct {
	Skill       string `json:"skill"`
	Level       string `json:"level"`
	Description string `json:"description"`
}

type CompetencyEntry struct {
	Competency  string `json:"competency"`
	Level       string `json:"level"`
	Description string `json:"description"`
}

// SkillGapAnalysis — разрывы и сильные стороны относительно целевой роли.
type SkillGapAnalysis struct {
	AIAnalysis string          `json:"aiAnalysis"`
	Gaps       []GapEntry      `json:"gaps"`
	Strengths  []StrengthEntry `json:"strengths"`
}

type GapEntry struct {
	Skill       string `json:"skill"`
	Importance  string `json:"importance"` // "High" | "Medium" | "Low"
	Description string `json:"description"`
}

type StrengthEntry struct {
	Skill       string `json:"skill"`
	Level       string `json:"level"`
	Relevance   string `json:"relevance"`
	Description string `json:"description"`
}

// CareerPathway — варианты карьерного пути. Порядок шагов — порядок
// продвижения по карьере, он сохраняется как есть.
type CareerPathway struct {
	AIRecommendations string        `json:"aiRecommendations"`
	WithDegree        []PathwayStep `json:"withDegree"`
	WithoutDegree     []PathwayStep `json:"withoutDegree,omitempty"`
}

type PathwayStep struct {
	Role            string   `json:"role"`
	Timeframe       string   `json:"timeframe"`
	KeySkillsNeeded []string `json:"keySkillsNeeded"`
}

// DevelopmentPlan — персональный план развития.
type DevelopmentPlan struct {
	PersonalizedGrowthInsights string             `json:"personalizedGrowthInsights"`
	SocialSkills               string             `json:"socialSkills,omitempty"`
	ReviewNotes                string             `json:"reviewNotes,omitempty"`
	RecommendedResources       []LearningResource `json:"recommendedResources,omitempty"`
}

type LearningResource struct {
	Title    string `json:"title"`
	Provider string `json:"provider,omitempty"`
	URL      string `json:"url,omitempty"`
	Skill    string `json:"skill,omitempty"`
}

// SimilarRole — сравнение с близкой ролью. SimilarityScore всегда в [0,1].
type SimilarRole struct {
	Role                   string   `json:"role"`
	SimilarityScore        float64  `json:"similarityScore"`
	PotentialSalaryRange   string   `json:"potentialSalaryRange"`
	LocationSpecificDemand string   `json:"locationSpecificDemand"`
	KeySkillsOverlap       []string `json:"keySkillsOverlap"`
	UniqueRequirements     []string `json:"uniqueRequirements"`
}
