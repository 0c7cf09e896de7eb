package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"resume-builder/resume/model"
	"resume-builder/resume/wizard"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Get returns a session by ID. Expiry is checked by the caller.
func (r *PGRepo) Get(ctx context.Context, id string) (Session, error) {
	const query = `
SELECT id, step, data, notice_title, notice_body, notice_failed, copied_until, created_at, updated_at, expires_at
FROM builder_sessions
WHERE id = $1
LIMIT 1`
	var (
		s           Session
		step        int
		raw         []byte
		noticeTitle sql.NullString
		noticeBody  sql.NullString
		failed      bool
		copiedUntil sql.NullTime
	)
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&s.ID,
		&step,
		&raw,
		&noticeTitle,
		&noticeBody,
		&failed,
		&copiedUntil,
		&s.CreatedAt,
		&s.UpdatedAt,
		&s.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Session{}, ErrNotFound
		}
		return Session{}, err
	}
	var data model.ResumeData
	if err := json.Unmarshal(raw, &data); err != nil {
		return Session{}, fmt.Errorf("decode session data: %w", err)
	}
	s.Step = wizard.Step(step)
	s.Data = data.Normalize()
	if noticeTitle.Valid {
		s.Notice = &Notice{Title: noticeTitle.String, Description: noticeBody.String, Failed: failed}
	}
	if copiedUntil.Valid {
		s.CopiedUntil = copiedUntil.Time
	}
	return s, nil
}

// Save upserts the session, replacing step and data wholesale.
func (r *PGRepo) Save(ctx context.Context, s Session) error {
	const query = `
INSERT INTO builder_sessions (
    id, step, data, notice_title, notice_body, notice_failed, copied_until, created_at, updated_at, expires_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (id) DO UPDATE SET
    step = EXCLUDED.step,
    data = EXCLUDED.data,
    notice_title = EXCLUDED.notice_title,
    notice_body = EXCLUDED.notice_body,
    notice_failed = EXCLUDED.notice_failed,
    copied_until = EXCLUDED.copied_until,
    updated_at = EXCLUDED.updated_at,
    expires_at = EXCLUDED.expires_at`

	raw, err := json.Marshal(s.Data)
	if err != nil {
		return fmt.Errorf("encode session data: %w", err)
	}
	var noticeTitle, noticeBody sql.NullString
	failed := false
	if s.Notice != nil {
		noticeTitle = sql.NullString{String: s.Notice.Title, Valid: true}
		noticeBody = sql.NullString{String: s.Notice.Description, Valid: true}
		failed = s.Notice.Failed
	}
	var copiedUntil sql.NullTime
	if !s.CopiedUntil.IsZero() {
		copiedUntil = sql.NullTime{Time: s.CopiedUntil, Valid: true}
	}
	_, err = r.DB.ExecContext(ctx, query,
		s.ID,
		int(s.Step),
		raw,
		noticeTitle,
		noticeBody,
		failed,
		copiedUntil,
		s.CreatedAt,
		s.UpdatedAt,
		s.ExpiresAt,
	)
	return err
}

// Delete removes a session.
func (r *PGRepo) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM builder_sessions WHERE id = $1`, id)
	return err
}

// DeleteExpired removes sessions whose expiry is at or before now.
func (r *PGRepo) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM builder_sessions WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, err
	}
	removed, _ := res.RowsAffected()
	return int(removed), nil
}

var _ Repo = (*PGRepo)(nil)
