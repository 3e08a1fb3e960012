package domain

import "time"

// InvitationTTL is how long an invitation token stays redeemable.
const InvitationTTL = 7 * 24 * time.Hour

type InvitationStatus string

const (
	InvitationPending   InvitationStatus = "pending"
	InvitationAccepted  InvitationStatus = "accepted"
	InvitationRejected  InvitationStatus = "rejected"
	InvitationExpired   InvitationStatus = "expired"
	InvitationCancelled InvitationStatus = "cancelled"
)

// Valid reports whether s is one of the known invitation statuses.
func (s InvitationStatus) Valid() bool {
	switch s {
	case InvitationPending, InvitationAccepted, InvitationRejected,
		InvitationExpired, InvitationCancelled:
		return true
	}
	return false
}

// Terminal reports whether the status permits no further transitions.
// Everything except pending is final; a consumed or lapsed token never
// returns to pending.
func (s InvitationStatus) Terminal() bool {
	return s != InvitationPending
}

// Invitation is a time-boxed, single-use connection offer from a requester
// to a responder identified by email. The opaque token is never stored;
// only its fingerprint is.
type Invitation struct {
	ID               string
	RequesterID      string
	ResponderEmail   string
	ResponderName    string
	Message          string // optional
	TokenFingerprint string
	Status           InvitationStatus
	IssuedAt         time.Time
	ExpiresAt        time.Time
	AcceptedAt       *time.Time
	RejectedAt       *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ExpiredAt reports whether the invitation's validity window has lapsed at
// the given instant. Pure function of the data; callers decide whether to
// persist the expired status.
func (i Invitation) ExpiredAt(now time.Time) bool {
	return i.ExpiresAt.Before(now)
}

// InvitationStats is the per-requester rollup over invitations.
type InvitationStats struct {
	Total           int
	ByStatus        map[InvitationStatus]int
	IssuedThisMonth int

	// AcceptanceRate is accepted/total*100, one decimal, 0 when total is 0.
	AcceptanceRate float64
}

// AcceptanceRate computes accepted/total*100 rounded to one decimal.
func AcceptanceRate(accepted, total int) float64 {
	return ratePercent(accepted, total)
}
