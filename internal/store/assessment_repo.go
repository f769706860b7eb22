package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/abhisek/careerprep/internal/assessment"
)

var assessmentColumns = []string{
	"id", "created_at", "user_id", "category", "quiz_score", "questions", "improvement_tip",
}

// AssessmentRepo implements assessment.Storage on SQLite.
type AssessmentRepo struct {
	store *Store
}

var _ assessment.Storage = (*AssessmentRepo)(nil)

// Save assigns an id and creation time to d and stores it.
func (r *AssessmentRepo) Save(ctx context.Context, d assessment.Draft) (*assessment.Record, error) {
	questions, err := json.Marshal(d.Questions)
	if err != nil {
		return nil, fmt.Errorf("encode questions: %w", err)
	}

	rec := &assessment.Record{
		ID:        uuid.NewString(),
		CreatedAt: r.store.timestamp(),
		Draft:     cloneDraft(d),
	}

	err = r.store.insertSequenced(ctx, tableAssessments,
		[]string{"id", "user_id", "category", "created_at", "quiz_score", "questions", "improvement_tip"},
		rec.ID, d.UserID, d.Category, formatTime(rec.CreatedAt), d.QuizScore, string(questions), d.ImprovementTip)
	if err != nil {
		return nil, fmt.Errorf("insert assessment: %w", err)
	}
	return rec, nil
}

// ListByUser returns every record for userID, oldest first.
func (r *AssessmentRepo) ListByUser(ctx context.Context, userID string) ([]assessment.Record, error) {
	query, args := r.store.sql.Select(assessmentColumns...).
		From(r.store.sql.Table(tableAssessments)).
		Where(entsql.EQ("user_id", userID)).
		OrderBy("sequence").
		Query()

	rows, err := r.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query assessments: %w", err)
	}
	defer rows.Close()

	var out []assessment.Record
	for rows.Next() {
		rec, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate assessments: %w", err)
	}
	return out, nil
}

// Get returns the record with id, or assessment.ErrNotFound.
func (r *AssessmentRepo) Get(ctx context.Context, id string) (*assessment.Record, error) {
	query, args := r.store.sql.Select(assessmentColumns...).
		From(r.store.sql.Table(tableAssessments)).
		Where(entsql.EQ("id", id)).
		Query()

	rec, err := scanAssessment(r.store.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", assessment.ErrNotFound, id)
	}
	return rec, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAssessment(row rowScanner) (*assessment.Record, error) {
	var (
		rec       assessment.Record
		created   string
		questions string
	)
	err := row.Scan(&rec.ID, &created, &rec.UserID, &rec.Category, &rec.QuizScore, &questions, &rec.ImprovementTip)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan assessment: %w", err)
	}

	if rec.CreatedAt, err = parseTime(created); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(questions), &rec.Questions); err != nil {
		return nil, fmt.Errorf("decode questions for %s: %w", rec.ID, err)
	}
	return &rec, nil
}

func cloneDraft(d assessment.Draft) assessment.Draft {
	qs := make([]assessment.QuestionResult, len(d.Questions))
	for i, q := range d.Questions {
		q.Options = append([]string(nil), q.Options...)
		qs[i] = q
	}
	d.Questions = qs
	return d
}
