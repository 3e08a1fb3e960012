package domain

import "time"

// AccountRole distinguishes the two party types on the platform.
type AccountRole string

const (
	RoleRequester AccountRole = "requester"
	RoleResponder AccountRole = "responder"
)

// Valid reports whether the role is one of the known roles.
func (r AccountRole) Valid() bool {
	return r == RoleRequester || r == RoleResponder
}

type Account struct {
	ID           string
	Role         AccountRole
	Email        string
	Name         string
	PasswordHash string // argon2 encoded

	// CallCredits is the consumable balance spent by scheduling calls.
	// Only meaningful for requesters; always >= 0 (enforced by the store).
	CallCredits int

	// MonthlyInvitationLimit caps non-rejected invitations issued per
	// calendar month (UTC). Requester only.
	MonthlyInvitationLimit int

	CreatedAt time.Time
	UpdatedAt time.Time
}
