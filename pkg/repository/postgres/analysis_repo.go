package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/careerpath/pkg/analysis"
	"github.com/artem13815/careerpath/pkg/report"
)

// AnalysisRepository хранит конверты карьерных анализов. Отчёт лежит в JSONB;
// записи неизменяемы после вставки, операции обновления result нет.
type AnalysisRepository struct {
	pool *pgxpool.Pool
}

func NewAnalysisRepository(pool *pgxpool.Pool) (*AnalysisRepository, error) {
	r := &AnalysisRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *AnalysisRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS career_analyses (
	id UUID PRIMARY KEY,
	user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	professional_level TEXT NOT NULL DEFAULT '',
	current_skills TEXT NOT NULL DEFAULT '',
	educational_background TEXT NOT NULL DEFAULT '',
	career_history TEXT NOT NULL DEFAULT '',
	desired_role TEXT NOT NULL,
	state TEXT NOT NULL DEFAULT '',
	country TEXT NOT NULL DEFAULT '',
	model TEXT NOT NULL,
	result JSONB NOT NULL,
	progress INT NOT NULL DEFAULT 0,
	badges TEXT[] NOT NULL DEFAULT '{}',
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_career_analyses_user_created
	ON career_analyses (user_id, created_at DESC);
`)
	return err
}

const analysisColumns = `id, user_id, professional_level, current_skills, educational_background,
career_history, desired_role, state, country, model, result, progress, badges, created_at, updated_at`

func (r *AnalysisRepository) Create(ctx context.Context, a analysis.Analysis) (analysis.Analysis, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	now := time.Now().UTC()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = a.CreatedAt
	}
	if a.Badges == nil {
		a.Badges = []string{}
	}
	resultJSON, err := json.Marshal(a.Result)
	if err != nil {
		return analysis.Analysis{}, err
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO career_analyses (`+analysisColumns+`)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
`, a.ID, a.UserID, a.ProfessionalLevel, a.CurrentSkills, a.EducationalBackground,
		a.CareerHistory, a.DesiredRole, a.State, a.Country, a.Model, resultJSON,
		a.Progress, a.Badges, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return analysis.Analysis{}, err
	}
	return a, nil
}

func (r *AnalysisRepository) GetByID(ctx context.Context, id uuid.UUID) (analysis.Analysis, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+analysisColumns+` FROM career_analyses WHERE id = $1`, id)
	return scanAnalysis(row)
}

func (r *AnalysisRepository) GetByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (analysis.Analysis, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+analysisColumns+` FROM career_analyses WHERE id = $1 AND user_id = $2`, id, ownerID)
	return scanAnalysis(row)
}

func (r *AnalysisRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]analysis.Analysis, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+analysisColumns+` FROM career_analyses
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAnalyses(rows)
}

func (r *AnalysisRepository) ListAll(ctx context.Context, limit, offset int) ([]analysis.Analysis, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+analysisColumns+` FROM career_analyses
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAnalyses(rows)
}

func (r *AnalysisRepository) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM career_analyses WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return analysis.ErrNotFound
	}
	return nil
}

func (r *AnalysisRepository) DeleteAny(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM career_analyses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return analysis.ErrNotFound
	}
	return nil
}

func scanAnalysis(row pgx.Row) (analysis.Analysis, error) {
	var a analysis.Analysis
	var resultBytes []byte
	var created, updated time.Time
	err := row.Scan(&a.ID, &a.UserID, &a.ProfessionalLevel, &a.CurrentSkills,
		&a.EducationalBackground, &a.CareerHistory, &a.DesiredRole, &a.State,
		&a.Country, &a.Model, &resultBytes, &a.Progress, &a.Badges, &created, &updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return analysis.Analysis{}, analysis.ErrNotFound
		}
		return analysis.Analysis{}, err
	}
	// DecodeStored сворачивает legacy-имена полей старых записей
	rep, err := report.DecodeStored(resultBytes)
	if err != nil {
		return analysis.Analysis{}, err
	}
	a.Result = rep
	a.CreatedAt = created.UTC()
	a.UpdatedAt = updated.UTC()
	return a, nil
}

func collectAnalyses(rows pgx.Rows) ([]analysis.Analysis, error) {
	out := []analysis.Analysis{}
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
