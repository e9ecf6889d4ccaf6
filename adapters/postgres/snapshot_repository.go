// Package postgres persists analyzed snapshots in PostgreSQL. The snapshot
// payload is stored as JSONB; longitudinal queries read it back whole.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"

	"edusight/domain/analysis"
	"edusight/domain/core"
	"edusight/ports"
)

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	id          TEXT PRIMARY KEY,
	batch_id    TEXT NOT NULL,
	student_id  TEXT NOT NULL,
	recorded_at TIMESTAMPTZ NOT NULL,
	payload     JSONB NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_snapshots_student ON snapshots (student_id, recorded_at);
`

// SnapshotRepositoryImpl implements SnapshotRepository for PostgreSQL
type SnapshotRepositoryImpl struct {
	db *sqlx.DB
}

// NewSnapshotRepository creates a new PostgreSQL snapshot repository
func NewSnapshotRepository(db *sqlx.DB) ports.SnapshotRepository {
	return &SnapshotRepositoryImpl{db: db}
}

// Migrate creates the snapshot schema if it does not exist.
func Migrate(db *sqlx.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create snapshot schema: %w", err)
	}
	log.Printf("[SnapshotRepository] Schema ready")
	return nil
}

// SaveBatch persists every snapshot of an upload in one transaction.
func (r *SnapshotRepositoryImpl) SaveBatch(ctx context.Context, batchID core.BatchID, records []analysis.AnalyzedRecord) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin batch transaction: %w", err)
	}
	defer tx.Rollback()

	for i := range records {
		rec := &records[i]
		payload, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshal snapshot %s: %w", rec.SnapshotID, err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO snapshots (id, batch_id, student_id, recorded_at, payload)
			VALUES ($1, $2, $3, $4, $5)
		`, rec.SnapshotID.String(), batchID.String(), rec.Student.StudentID.String(), rec.RecordedAt.Time(), payload)
		if err != nil {
			return fmt.Errorf("insert snapshot %s: %w", rec.SnapshotID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit batch %s: %w", batchID, err)
	}
	return nil
}

// Latest returns the most recent snapshot for a student.
func (r *SnapshotRepositoryImpl) Latest(ctx context.Context, studentID core.StudentID) (*analysis.AnalyzedRecord, error) {
	var payload []byte
	err := r.db.GetContext(ctx, &payload, `
		SELECT payload FROM snapshots
		WHERE student_id = $1
		ORDER BY recorded_at DESC
		LIMIT 1
	`, studentID.String())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.ErrStudentNotFound
	}
	if err != nil {
		return nil, err
	}
	return unmarshalSnapshot(payload)
}

// Previous returns the snapshot before the latest.
func (r *SnapshotRepositoryImpl) Previous(ctx context.Context, studentID core.StudentID) (*analysis.AnalyzedRecord, error) {
	var payload []byte
	err := r.db.GetContext(ctx, &payload, `
		SELECT payload FROM snapshots
		WHERE student_id = $1
		ORDER BY recorded_at DESC
		LIMIT 1 OFFSET 1
	`, studentID.String())
	if errors.Is(err, sql.ErrNoRows) {
		if _, lerr := r.Latest(ctx, studentID); lerr != nil {
			return nil, lerr
		}
		return nil, core.ErrMissingBaseline
	}
	if err != nil {
		return nil, err
	}
	return unmarshalSnapshot(payload)
}

// History returns all snapshots for a student ordered oldest first.
func (r *SnapshotRepositoryImpl) History(ctx context.Context, studentID core.StudentID) ([]analysis.AnalyzedRecord, error) {
	var payloads [][]byte
	err := r.db.SelectContext(ctx, &payloads, `
		SELECT payload FROM snapshots
		WHERE student_id = $1
		ORDER BY recorded_at ASC
	`, studentID.String())
	if err != nil {
		return nil, err
	}

	records := make([]analysis.AnalyzedRecord, 0, len(payloads))
	for _, payload := range payloads {
		rec, err := unmarshalSnapshot(payload)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, nil
}

// ListStudents summarizes the latest snapshot of every known student.
func (r *SnapshotRepositoryImpl) ListStudents(ctx context.Context) ([]ports.StudentSummary, error) {
	var payloads [][]byte
	err := r.db.SelectContext(ctx, &payloads, `
		SELECT DISTINCT ON (student_id) payload
		FROM snapshots
		ORDER BY student_id, recorded_at DESC
	`)
	if err != nil {
		return nil, err
	}

	summaries := make([]ports.StudentSummary, 0, len(payloads))
	for _, payload := range payloads {
		rec, err := unmarshalSnapshot(payload)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summarize(rec))
	}
	return summaries, nil
}

func unmarshalSnapshot(payload []byte) (*analysis.AnalyzedRecord, error) {
	var rec analysis.AnalyzedRecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot payload: %w", err)
	}
	return &rec, nil
}

func summarize(rec *analysis.AnalyzedRecord) ports.StudentSummary {
	return ports.StudentSummary{
		StudentID:        rec.Student.StudentID,
		Name:             rec.Student.Name,
		Grade:            rec.Student.Grade,
		Section:          rec.Student.Section,
		IsFragileLearner: rec.IsFragileLearner,
		RiskAreaCount:    len(rec.Attitudinal.RiskAreas) + len(rec.Cognitive.RiskAreas) + len(rec.Academic.RiskAreas),
		DomainCount:      rec.DomainCount(),
		RecordedAt:       rec.RecordedAt,
	}
}
