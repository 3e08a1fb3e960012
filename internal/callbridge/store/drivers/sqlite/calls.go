package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/callbridgehq/callbridge/internal/callbridge/domain"
	"github.com/callbridgehq/callbridge/internal/callbridge/store"
)

type callsRepo struct {
	db dbtx
}

const callColumns = `id, requester_id, responder_id, scheduled_at, duration_min,
	status, notes, actual_start, actual_end, connection_quality,
	requester_rating, responder_rating, requester_feedback, responder_feedback,
	outcome, follow_up_date, deal_value, created_at, updated_at`

func scanCall(row interface{ Scan(...any) error }) (domain.Call, error) {
	var c domain.Call
	var status, outcome string
	var notes, quality, reqFeedback, respFeedback sql.NullString
	var actualStart, actualEnd, followUp sql.NullTime
	var reqRating, respRating sql.NullInt64
	var dealValue sql.NullFloat64
	err := row.Scan(
		&c.ID, &c.RequesterID, &c.ResponderID, &c.ScheduledAt, &c.Duration,
		&status, &notes, &actualStart, &actualEnd, &quality,
		&reqRating, &respRating, &reqFeedback, &respFeedback,
		&outcome, &followUp, &dealValue, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return domain.Call{}, mapNotFound(err)
	}
	c.Status = domain.CallStatus(status)
	c.Outcome = domain.CallOutcome(outcome)
	c.Notes = mapNullString(notes)
	c.ActualStartTime = mapNullTimePtr(actualStart)
	c.ActualEndTime = mapNullTimePtr(actualEnd)
	if quality.Valid {
		q := domain.ConnectionQuality(quality.String)
		c.ConnectionQuality = &q
	}
	c.RequesterRating = mapNullIntPtr(reqRating)
	c.ResponderRating = mapNullIntPtr(respRating)
	c.RequesterFeedback = mapNullStringPtr(reqFeedback)
	c.ResponderFeedback = mapNullStringPtr(respFeedback)
	c.FollowUpDate = mapNullTimePtr(followUp)
	c.DealValue = mapNullFloatPtr(dealValue)
	return c, nil
}

func (r *callsRepo) CreateCall(ctx context.Context, c domain.Call) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO calls (id, requester_id, responder_id, scheduled_at,
			duration_min, status, notes, outcome, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.RequesterID, c.ResponderID, c.ScheduledAt.UTC(), c.Duration,
		string(c.Status), mapStringNull(c.Notes), string(c.Outcome), now, now,
	)
	return mapConstraint(err)
}

func (r *callsRepo) GetCallByID(ctx context.Context, id string) (domain.Call, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+callColumns+` FROM calls WHERE id = ?`, id)
	return scanCall(row)
}

func (r *callsRepo) HasScheduledConflict(ctx context.Context, requesterID, responderID string, at time.Time) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM calls
		WHERE status = 'scheduled' AND scheduled_at = ?
		AND (requester_id IN (?, ?) OR responder_id IN (?, ?))`,
		at.UTC(), requesterID, responderID, requesterID, responderID).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *callsRepo) ListCallsForUser(ctx context.Context, accountID string, f store.CallListFilter) ([]domain.Call, int, error) {
	where := ` WHERE (requester_id = ? OR responder_id = ?)`
	args := []any{accountID, accountID}

	if f.Status != "" {
		where += ` AND status = ?`
		args = append(args, string(f.Status))
	}
	if f.Upcoming {
		where += ` AND scheduled_at > ? AND status = 'scheduled'`
		args = append(args, f.Now.UTC())
	}

	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM calls`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 20
	}
	page := f.Page
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit

	query := `SELECT ` + callColumns + ` FROM calls` + where +
		` ORDER BY scheduled_at DESC LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []domain.Call
	for rows.Next() {
		c, err := scanCall(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, c)
	}
	return out, total, rows.Err()
}

// TransitionStatus moves a call between statuses, guarded by status=from so
// a lost race leaves the record untouched and reports not found.
func (r *callsRepo) TransitionStatus(ctx context.Context, id string, from, to domain.CallStatus, upd store.CallProgressUpdate) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE calls SET
			status = ?,
			actual_start = COALESCE(?, actual_start),
			actual_end = COALESCE(?, actual_end),
			connection_quality = COALESCE(?, connection_quality),
			updated_at = ?
		WHERE id = ? AND status = ?`,
		string(to),
		mapOptionalTime(upd.ActualStartTime),
		mapOptionalTime(upd.ActualEndTime),
		mapOptionalQuality(upd.ConnectionQuality),
		time.Now().UTC(), id, string(from),
	)
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

func (r *callsRepo) UpdateRequesterFeedback(ctx context.Context, id string, upd store.RequesterFeedbackUpdate) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE calls SET
			requester_rating = COALESCE(?, requester_rating),
			requester_feedback = COALESCE(?, requester_feedback),
			outcome = COALESCE(?, outcome),
			follow_up_date = COALESCE(?, follow_up_date),
			deal_value = COALESCE(?, deal_value),
			updated_at = ?
		WHERE id = ?`,
		mapOptionalInt(upd.Rating),
		mapOptionalString(upd.Feedback),
		mapOptionalOutcome(upd.Outcome),
		mapOptionalTime(upd.FollowUpDate),
		mapOptionalFloat(upd.DealValue),
		time.Now().UTC(), id,
	)
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

func (r *callsRepo) UpdateResponderFeedback(ctx context.Context, id string, upd store.ResponderFeedbackUpdate) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE calls SET
			responder_rating = COALESCE(?, responder_rating),
			responder_feedback = COALESCE(?, responder_feedback),
			updated_at = ?
		WHERE id = ?`,
		mapOptionalInt(upd.Rating),
		mapOptionalString(upd.Feedback),
		time.Now().UTC(), id,
	)
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

func (r *callsRepo) CountCallsForUser(ctx context.Context, accountID string, now time.Time) (store.CallCounts, error) {
	now = now.UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	var counts store.CallCounts
	err := r.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN status = 'completed' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = 'cancelled' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = 'no_show' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = 'scheduled' AND scheduled_at > ? THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN scheduled_at >= ? AND scheduled_at < ? THEN 1 ELSE 0 END), 0)
		FROM calls
		WHERE requester_id = ? OR responder_id = ?`,
		now, monthStart, monthEnd, accountID, accountID,
	).Scan(&counts.Total, &counts.Completed, &counts.Cancelled,
		&counts.NoShow, &counts.Upcoming, &counts.ThisMonth)
	return counts, err
}

func (r *callsRepo) AverageCounterpartyRating(ctx context.Context, accountID string, role domain.AccountRole) (float64, int, error) {
	// Requesters are rated on what responders left, and vice versa.
	column := "responder_rating"
	party := "requester_id"
	if role == domain.RoleResponder {
		column = "requester_rating"
		party = "responder_id"
	}

	var avg sql.NullFloat64
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT AVG(`+column+`), COUNT(`+column+`) FROM calls
		WHERE `+party+` = ? AND status = 'completed' AND `+column+` IS NOT NULL`,
		accountID).Scan(&avg, &n)
	if err != nil {
		return 0, 0, err
	}
	if !avg.Valid {
		return 0, 0, nil
	}
	return avg.Float64, n, nil
}

func (r *callsRepo) CountByStatus(ctx context.Context) (map[domain.CallStatus]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT status, COUNT(*) FROM calls GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[domain.CallStatus]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		out[domain.CallStatus(status)] = n
	}
	return out, rows.Err()
}

func (r *callsRepo) CountRatings(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(requester_rating) + COUNT(responder_rating) FROM calls`).Scan(&n)
	return n, err
}
