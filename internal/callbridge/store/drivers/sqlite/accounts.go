package sqlite

import (
	"context"
	"time"

	"github.com/callbridgehq/callbridge/internal/callbridge/domain"
	"github.com/callbridgehq/callbridge/internal/callbridge/store"
)

type accountsRepo struct {
	db dbtx
}

const accountColumns = `id, role, email, name, password_hash, call_credits,
	monthly_invitation_limit, created_at, updated_at`

func (r *accountsRepo) scanAccount(row interface{ Scan(...any) error }) (domain.Account, error) {
	var a domain.Account
	var role string
	err := row.Scan(
		&a.ID, &role, &a.Email, &a.Name, &a.PasswordHash,
		&a.CallCredits, &a.MonthlyInvitationLimit, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	a.Role = domain.AccountRole(role)
	return a, nil
}

func (r *accountsRepo) GetAccountByID(ctx context.Context, id string) (domain.Account, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = ?`, id)
	return r.scanAccount(row)
}

func (r *accountsRepo) GetAccountByEmail(ctx context.Context, email string) (domain.Account, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE email = ?`, email)
	return r.scanAccount(row)
}

func (r *accountsRepo) CreateAccount(ctx context.Context, a domain.Account) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO accounts (id, role, email, name, password_hash,
			call_credits, monthly_invitation_limit, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, string(a.Role), a.Email, a.Name, a.PasswordHash,
		a.CallCredits, a.MonthlyInvitationLimit, now, now,
	)
	return mapConstraint(err)
}

// DebitCredit is the single-statement conditional decrement. The guard in
// the WHERE clause is what keeps concurrent schedules from driving the
// balance negative; callers must treat zero affected rows as an empty tank.
func (r *accountsRepo) DebitCredit(ctx context.Context, accountID string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE accounts
		SET call_credits = call_credits - 1, updated_at = ?
		WHERE id = ? AND call_credits > 0`,
		time.Now().UTC(), accountID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrInsufficientCredits
	}
	return nil
}

func (r *accountsRepo) CreditCredit(ctx context.Context, accountID string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE accounts
		SET call_credits = call_credits + 1, updated_at = ?
		WHERE id = ?`,
		time.Now().UTC(), accountID,
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

func (r *accountsRepo) CountAccountsByRole(ctx context.Context) (map[domain.AccountRole]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT role, COUNT(*) FROM accounts GROUP BY role`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[domain.AccountRole]int)
	for rows.Next() {
		var role string
		var n int
		if err := rows.Scan(&role, &n); err != nil {
			return nil, err
		}
		out[domain.AccountRole(role)] = n
	}
	return out, rows.Err()
}
