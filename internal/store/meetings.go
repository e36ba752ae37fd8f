package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

// ErrMeetingNotFound indicates the requested meeting code does not exist.
var ErrMeetingNotFound = errors.New("meeting not found")

// CreateMeeting inserts a meeting with a fresh code and the host as its
// first participant.
func (p *Postgres) CreateMeeting(ctx context.Context, title, hostID string) (Meeting, error) {
	code, err := NewMeetingCode()
	if err != nil {
		return Meeting{}, err
	}

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return Meeting{}, err
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, `
		INSERT INTO meetings (title, code, host_id)
		VALUES ($1, $2, $3)
		RETURNING id, title, code, host_id, created_at, updated_at
	`, title, code, hostID)

	var m Meeting
	if err := row.Scan(&m.ID, &m.Title, &m.Code, &m.HostID, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return Meeting{}, err
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO meeting_participants (meeting_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, m.ID, hostID); err != nil {
		return Meeting{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return Meeting{}, err
	}
	p.log.Info("meeting.created", "code", m.Code, "host", hostID)
	return m, nil
}

// GetMeetingByCode fetches a meeting by its join code
func (p *Postgres) GetMeetingByCode(ctx context.Context, code string) (Meeting, error) {
	row := p.pool.QueryRow(ctx, `
		SELECT id, title, code, host_id, created_at, updated_at
		FROM meetings
		WHERE code = $1
	`, code)

	var m Meeting
	if err := row.Scan(&m.ID, &m.Title, &m.Code, &m.HostID, &m.CreatedAt, &m.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Meeting{}, ErrMeetingNotFound
		}
		return Meeting{}, err
	}
	return m, nil
}

// AddParticipant records meeting membership, idempotently
func (p *Postgres) AddParticipant(ctx context.Context, meetingID, userID string) error {
	if _, err := p.pool.Exec(ctx, `
		INSERT INTO meeting_participants (meeting_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, meetingID, userID); err != nil {
		return err
	}
	_, err := p.pool.Exec(ctx, `
		UPDATE meetings SET updated_at = NOW() WHERE id = $1
	`, meetingID)
	return err
}

// CountParticipants returns how many users ever joined the meeting
func (p *Postgres) CountParticipants(ctx context.Context, meetingID string) (int, error) {
	var n int
	err := p.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM meeting_participants WHERE meeting_id = $1
	`, meetingID).Scan(&n)
	return n, err
}
