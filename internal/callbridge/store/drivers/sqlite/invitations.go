package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/callbridgehq/callbridge/internal/callbridge/domain"
	"github.com/callbridgehq/callbridge/internal/callbridge/store"
)

type invitationsRepo struct {
	db dbtx
}

const invitationColumns = `id, requester_id, responder_email, responder_name,
	message, token_fingerprint, status, issued_at, expires_at, accepted_at,
	rejected_at, created_at, updated_at`

func scanInvitation(row interface{ Scan(...any) error }) (domain.Invitation, error) {
	var inv domain.Invitation
	var status string
	var message sql.NullString
	var acceptedAt, rejectedAt sql.NullTime
	err := row.Scan(
		&inv.ID, &inv.RequesterID, &inv.ResponderEmail, &inv.ResponderName,
		&message, &inv.TokenFingerprint, &status, &inv.IssuedAt, &inv.ExpiresAt,
		&acceptedAt, &rejectedAt, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}
	inv.Status = domain.InvitationStatus(status)
	inv.Message = mapNullString(message)
	inv.AcceptedAt = mapNullTimePtr(acceptedAt)
	inv.RejectedAt = mapNullTimePtr(rejectedAt)
	return inv, nil
}

func (r *invitationsRepo) CreateInvitation(ctx context.Context, inv domain.Invitation) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO invitations (id, requester_id, responder_email,
			responder_name, message, token_fingerprint, status, issued_at,
			expires_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.RequesterID, inv.ResponderEmail, inv.ResponderName,
		mapStringNull(inv.Message), inv.TokenFingerprint, string(inv.Status),
		inv.IssuedAt, inv.ExpiresAt, now, now,
	)
	return mapConstraint(err)
}

func (r *invitationsRepo) GetInvitationByID(ctx context.Context, id string) (domain.Invitation, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+invitationColumns+` FROM invitations WHERE id = ?`, id)
	return scanInvitation(row)
}

func (r *invitationsRepo) GetInvitationByFingerprint(ctx context.Context, fp string) (domain.Invitation, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+invitationColumns+` FROM invitations WHERE token_fingerprint = ?`, fp)
	return scanInvitation(row)
}

func (r *invitationsRepo) FindActiveInvitation(ctx context.Context, fp string, now time.Time) (domain.Invitation, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+invitationColumns+` FROM invitations
		WHERE token_fingerprint = ? AND status = 'pending' AND expires_at >= ?`,
		fp, now.UTC())
	return scanInvitation(row)
}

func (r *invitationsRepo) HasPendingInvitation(ctx context.Context, requesterID, email string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM invitations
		WHERE requester_id = ? AND responder_email = ? AND status = 'pending'`,
		requesterID, email).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *invitationsRepo) CountIssuedBetween(ctx context.Context, requesterID string, from, to time.Time) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM invitations
		WHERE requester_id = ? AND status != 'rejected'
		AND issued_at >= ? AND issued_at < ?`,
		requesterID, from.UTC(), to.UTC()).Scan(&n)
	return n, err
}

func (r *invitationsRepo) ListInvitationsByRequester(ctx context.Context, requesterID string, status domain.InvitationStatus) ([]domain.Invitation, error) {
	query := `SELECT ` + invitationColumns + ` FROM invitations WHERE requester_id = ?`
	args := []any{requesterID}
	if status != "" {
		query += ` AND status = ?`
		args = append(args, string(status))
	}
	query += ` ORDER BY issued_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Invitation
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

// transition flips a pending invitation into a terminal status. The
// status='pending' guard makes the token single-use: a lost race or a
// repeated call affects zero rows and reports not found.
func (r *invitationsRepo) transition(ctx context.Context, id string, to domain.InvitationStatus, extra string, args ...any) error {
	query := `UPDATE invitations SET status = ?, updated_at = ?` + extra +
		` WHERE id = ? AND status = 'pending'`
	all := append([]any{string(to), time.Now().UTC()}, args...)
	all = append(all, id)

	res, err := r.db.ExecContext(ctx, query, all...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *invitationsRepo) MarkAccepted(ctx context.Context, id string, at time.Time) error {
	return r.transition(ctx, id, domain.InvitationAccepted, `, accepted_at = ?`, at.UTC())
}

func (r *invitationsRepo) MarkRejected(ctx context.Context, id string, at time.Time) error {
	return r.transition(ctx, id, domain.InvitationRejected, `, rejected_at = ?`, at.UTC())
}

func (r *invitationsRepo) MarkExpired(ctx context.Context, id string) error {
	return r.transition(ctx, id, domain.InvitationExpired, ``)
}

func (r *invitationsRepo) MarkCancelled(ctx context.Context, id string) error {
	return r.transition(ctx, id, domain.InvitationCancelled, ``)
}

func (r *invitationsRepo) ExpireOverdue(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE invitations SET status = 'expired', updated_at = ?
		WHERE status = 'pending' AND expires_at < ?`,
		now.UTC(), now.UTC(),
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *invitationsRepo) CountByStatus(ctx context.Context, requesterID string) (map[domain.InvitationStatus]int, error) {
	query := `SELECT status, COUNT(*) FROM invitations`
	var args []any
	if requesterID != "" {
		query += ` WHERE requester_id = ?`
		args = append(args, requesterID)
	}
	query += ` GROUP BY status`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[domain.InvitationStatus]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		out[domain.InvitationStatus(status)] = n
	}
	return out, rows.Err()
}
