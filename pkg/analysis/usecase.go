package analysis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/careerpath/pkg/llm"
	"github.com/artem13815/careerpath/pkg/nlp"
	"github.com/artem13815/careerpath/pkg/report"
)

// UseCase — сценарии карьерного анализа.
type UseCase interface {
	Create(ctx context.Context, userID uuid.UUID, sub Submission) (Analysis, error)
	Get(ctx context.Context, actorID uuid.UUID, isAdmin bool, id uuid.UUID) (Analysis, error)
	List(ctx context.Context, actorID uuid.UUID, isAdmin bool, limit, offset int) ([]Analysis, error)
	Delete(ctx context.Context, actorID uuid.UUID, isAdmin bool, id uuid.UUID) error
}

type service struct {
	repo        Repository
	llm         llm.ChatModel
	modelName   string
	maxFieldLen int
}

func NewService(repo Repository, model llm.ChatModel, modelName string) UseCase {
	return &service{
		repo:        repo,
		llm:         model,
		modelName:   modelName,
		maxFieldLen: 4000,
	}
}

// Create прогоняет анкету через LLM, валидирует отчёт и сохраняет конверт.
// Ретраев нет: ошибка LLM или валидации возвращается вызывающему как есть,
// запись при этом не создаётся.
func (s *service) Create(ctx context.Context, userID uuid.UUID, sub Submission) (Analysis, error) {
	sub = s.truncate(sub)
	if strings.TrimSpace(sub.DesiredRole) == "" {
		return Analysis{}, fmt.Errorf("%w: desiredRole is required", ErrInvalidSubmission)
	}
	if s.llm == nil {
		return Analysis{}, fmt.Errorf("%w: no model configured", ErrAnalysisFailed)
	}

	raw, err := s.llm.Ask(ctx, systemPrompt, buildUserPrompt(sub))
	if err != nil {
		return Analysis{}, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}

	rep, err := report.DecodeLenient(raw)
	if err != nil {
		// SectionError остаётся доступной через errors.As для точного ответа клиенту
		return Analysis{}, fmt.Errorf("model returned malformed report: %w", err)
	}

	ensureRequiredSkillGaps(&rep, sub)

	now := time.Now().UTC()
	a := Analysis{
		ID:         uuid.New(),
		UserID:     userID,
		Submission: sub,
		Model:      s.modelName,
		Result:     rep,
		Progress:   0,
		Badges:     []string{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return s.repo.Create(ctx, a)
}

// ensureRequiredSkillGaps гарантирует, что каждый навык первого шага пути
// "withDegree", не упомянутый в анкете, присутствует в списке пробелов.
// Детерминированной проверке доверяем больше, чем модели (она иногда
// "забывает" навыки, которые сама же объявила обязательными).
func ensureRequiredSkillGaps(rep *report.CareerAnalysisReport, sub Submission) {
	if len(rep.CareerPathway.WithDegree) == 0 {
		return
	}
	known := make(map[string]struct{}, len(rep.SkillGapAnalysis.Gaps))
	for _, g := range rep.SkillGapAnalysis.Gaps {
		known[nlp.Normalize(g.Skill)] = struct{}{}
	}
	for _, required := range rep.CareerPathway.WithDegree[0].KeySkillsNeeded {
		key := nlp.Normalize(required)
		if key == "" {
			continue
		}
		if _, ok := known[key]; ok {
			continue
		}
		if nlp.MentionsSkill(sub.CurrentSkills, required) {
			continue
		}
		rep.SkillGapAnalysis.Gaps = append(rep.SkillGapAnalysis.Gaps, report.GapEntry{
			Skill:       required,
			Importance:  "High",
			Description: fmt.Sprintf("Required for the %s step of the recommended pathway", rep.CareerPathway.WithDegree[0].Role),
		})
		known[key] = struct{}{}
	}
}

func (s *service) Get(ctx context.Context, actorID uuid.UUID, isAdmin bool, id uuid.UUID) (Analysis, error) {
	if isAdmin {
		return s.repo.GetByID(ctx, id)
	}
	return s.repo.GetByIDForOwner(ctx, actorID, id)
}

func (s *service) List(ctx context.Context, actorID uuid.UUID, isAdmin bool, limit, offset int) ([]Analysis, error) {
	if isAdmin {
		return s.repo.ListAll(ctx, limit, offset)
	}
	return s.repo.ListByOwner(ctx, actorID, limit, offset)
}

func (s *service) Delete(ctx context.Context, actorID uuid.UUID, isAdmin bool, id uuid.UUID) error {
	if isAdmin {
		return s.repo.DeleteAny(ctx, id)
	}
	return s.repo.DeleteForOwner(ctx, actorID, id)
}

func (s *service) truncate(sub Submission) Submission {
	cut := func(v string) string {
		v = strings.TrimSpace(v)
		if len(v) > s.maxFieldLen {
			return v[:s.maxFieldLen]
		}
		return v
	}
	sub.ProfessionalLevel = cut(sub.ProfessionalLevel)
	sub.CurrentSkills = cut(sub.CurrentSkills)
	sub.EducationalBackground = cut(sub.EducationalBackground)
	sub.CareerHistory = cut(sub.CareerHistory)
	sub.DesiredRole = cut(sub.DesiredRole)
	sub.State = cut(sub.State)
	sub.Country = cut(sub.Country)
	return sub
}
