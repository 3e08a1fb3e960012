package domain

// UserStats composes the invitation and call rollups for one account.
// Invitations is nil for responders, who never issue invitations.
type UserStats struct {
	AccountID   string
	Role        AccountRole
	Invitations *InvitationStats
	Calls       CallStats
}

// PlatformStats is the platform-wide read model for dashboards.
type PlatformStats struct {
	AccountsByRole      map[AccountRole]int
	InvitationsByStatus map[InvitationStatus]int
	CallsByStatus       map[CallStatus]int
	RatingsSubmitted    int
}
