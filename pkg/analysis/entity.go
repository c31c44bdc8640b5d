package analysis

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/careerpath/pkg/report"
)

var (
	// ErrNotFound — запись не существует либо принадлежит другому пользователю.
	ErrNotFound = errors.New("analysis not found")
	// ErrInvalidSubmission — анкета не проходит базовую проверку.
	ErrInvalidSubmission = errors.New("invalid submission")
	// ErrAnalysisFailed — LLM недоступна или не ответила; без отчёта записи нет.
	ErrAnalysisFailed = errors.New("analysis failed")
)

// Submission — анкета пользователя: исходные данные для генерации отчёта.
type Submission struct {
	ProfessionalLevel     string `json:"professionalLevel"`
	CurrentSkills         string `json:"currentSkills"`
	EducationalBackground string `json:"educationalBackground"`
	CareerHistory         string `json:"careerHistory"`
	DesiredRole           string `json:"desiredRole"`
	State                 string `json:"state"`
	Country               string `json:"country"`
}

// Analysis — конверт сохранённого анализа: анкета плюс сгенерированный отчёт.
// После создания запись неизменяема; повторный анализ создаёт новую запись.
type Analysis struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"userId"`
	Submission           // flattened into the envelope JSON
	Model      string                      `json:"model"`
	Result     report.CareerAnalysisReport `json:"result"`
	Progress   int                         `json:"progress"` // 0..100, прогресс плана развития
	Badges     []string                    `json:"badges"`
	CreatedAt  time.Time                   `json:"createdAt"`
	UpdatedAt  time.Time                   `json:"updatedAt"`
}

// Repository — порт хранения конвертов. Обновления результата нет намеренно.
type Repository interface {
	Create(ctx context.Context, a Analysis) (Analysis, error)
	GetByID(ctx context.Context, id uuid.UUID) (Analysis, error)
	GetByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (Analysis, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Analysis, error)
	ListAll(ctx context.Context, limit, offset int) ([]Analysis, error)
	DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error
	DeleteAny(ctx context.Context, id uuid.UUID) error
}
