package store

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

var ErrNotFound = sql.ErrNoRows

// DetectionRecord is the denormalized row persisted per classification.
// Persistence is best-effort telemetry, not part of the response contract.
type DetectionRecord struct {
	ID           int64     `json:"id,omitempty"`
	UserIdentity string    `json:"user_identity"`
	Category     string    `json:"category"`
	BinName      string    `json:"bin_name"`
	Confidence   float64   `json:"confidence"`
	Reason       string    `json:"reason"`
	CreatedAt    time.Time `json:"created_at"`
}

type DetectionRepo struct{ DB *sql.DB }

func NewDetectionRepo(db *sql.DB) *DetectionRepo { return &DetectionRepo{DB: db} }

// EnsureSchema creates the detections table when it does not exist yet.
func (r *DetectionRepo) EnsureSchema(ctx context.Context) error {
	const q = `
create table if not exists detections (
  id            bigserial primary key,
  user_identity text        not null,
  category      text        not null,
  bin_name      text        not null,
  confidence    double precision not null default 0,
  reason        text        not null default '',
  created_at    timestamptz not null default now()
)`
	_, err := r.DB.ExecContext(ctx, q)
	return err
}

func (r *DetectionRepo) Insert(ctx context.Context, rec DetectionRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	const q = `
insert into detections (user_identity, category, bin_name, confidence, reason, created_at)
values ($1,$2,$3,$4,$5,$6)`
	_, err := r.DB.ExecContext(ctx, q,
		rec.UserIdentity, rec.Category, rec.BinName, rec.Confidence, rec.Reason, rec.CreatedAt,
	)
	return err
}

// History returns the most recent records for one identity, newest first.
func (r *DetectionRepo) History(ctx context.Context, identity string, limit int) ([]DetectionRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	const q = `
select id, user_identity, category, bin_name, confidence, reason, created_at
from detections
where user_identity = $1
order by created_at desc
limit $2`
	rows, err := r.DB.QueryContext(ctx, q, identity, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DetectionRecord
	for rows.Next() {
		var rec DetectionRecord
		if err := rows.Scan(&rec.ID, &rec.UserIdentity, &rec.Category, &rec.BinName,
			&rec.Confidence, &rec.Reason, &rec.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// PurgeOlderThan deletes old telemetry rows so the table does not grow forever.
func (r *DetectionRepo) PurgeOlderThan(ctx context.Context, olderThan time.Duration) (int64, error) {
	if olderThan <= 0 {
		return 0, errors.New("olderThan must be > 0")
	}
	cutoff := time.Now().Add(-olderThan)
	const q = `delete from detections where created_at < $1`
	res, err := r.DB.ExecContext(ctx, q, cutoff)
	if err != nil {
		return 0, err
	}
	aff, _ := res.RowsAffected()
	return aff, nil
}
