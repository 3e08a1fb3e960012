package callsdk

import "time"

// Request and response shapes shared by the HTTP handlers and the SDK
// client. Timestamps are RFC 3339 in UTC.

// ============================================================================
// Accounts / onboarding
// ============================================================================

// OnboardRequest creates a requester account. Guarded by the deploy-time
// bootstrap token; responders can only join via invitation.
type OnboardRequest struct {
	BootstrapToken string `json:"bootstrap_token"`
	Email          string `json:"email"`
	Name           string `json:"name"`
	Password       string `json:"password"`
}

// AccountResponse is the public view of an account.
type AccountResponse struct {
	ID                     string    `json:"id"`
	Role                   string    `json:"role"`
	Email                  string    `json:"email"`
	Name                   string    `json:"name"`
	CallCredits            int       `json:"call_credits"`
	MonthlyInvitationLimit int       `json:"monthly_invitation_limit,omitempty"`
	CreatedAt              time.Time `json:"created_at"`
}

// SessionResponse is returned whenever an account is created: the account
// plus a signed session token.
type SessionResponse struct {
	Account      AccountResponse `json:"account"`
	SessionToken string          `json:"session_token"`
}

// ============================================================================
// Invitations
// ============================================================================

// CreateInvitationRequest issues an invitation to a responder email.
type CreateInvitationRequest struct {
	ResponderEmail string `json:"responder_email"`
	ResponderName  string `json:"responder_name"`
	Message        string `json:"message,omitempty"`
}

// InvitationResponse is the public view of an invitation. The raw token is
// never included; it appears only in CreateInvitationResponse.
type InvitationResponse struct {
	ID             string     `json:"id"`
	RequesterID    string     `json:"requester_id"`
	ResponderEmail string     `json:"responder_email"`
	ResponderName  string     `json:"responder_name"`
	Message        string     `json:"message,omitempty"`
	Status         string     `json:"status"`
	IssuedAt       time.Time  `json:"issued_at"`
	ExpiresAt      time.Time  `json:"expires_at"`
	AcceptedAt     *time.Time `json:"accepted_at,omitempty"`
	RejectedAt     *time.Time `json:"rejected_at,omitempty"`
}

// CreateInvitationResponse carries the raw token exactly once.
type CreateInvitationResponse struct {
	Invitation InvitationResponse `json:"invitation"`
	Token      string             `json:"token"`
}

// AcceptInvitationRequest consumes an invitation token and registers the
// responder account.
type AcceptInvitationRequest struct {
	Token    string `json:"token"`
	Name     string `json:"name,omitempty"`
	Password string `json:"password"`
}

// RejectInvitationRequest declines an invitation token.
type RejectInvitationRequest struct {
	Token string `json:"token"`
}

// InvitationListResponse wraps a page of invitations.
type InvitationListResponse struct {
	Invitations []InvitationResponse `json:"invitations"`
}

// InvitationStatsResponse is the per-requester invitation rollup.
type InvitationStatsResponse struct {
	Total           int            `json:"total"`
	ByStatus        map[string]int `json:"by_status"`
	IssuedThisMonth int            `json:"issued_this_month"`
	AcceptanceRate  float64        `json:"acceptance_rate"`
}

// ============================================================================
// Calls
// ============================================================================

// ScheduleCallRequest books a call with a responder. DurationMinutes of 0
// uses the server default.
type ScheduleCallRequest struct {
	ResponderID     string    `json:"responder_id"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	DurationMinutes int       `json:"duration_minutes,omitempty"`
	Notes           string    `json:"notes,omitempty"`
}

// CallResponse is the public view of a call.
type CallResponse struct {
	ID              string    `json:"id"`
	RequesterID     string    `json:"requester_id"`
	ResponderID     string    `json:"responder_id"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	DurationMinutes int       `json:"duration_minutes"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes,omitempty"`

	ActualStartTime   *time.Time `json:"actual_start_time,omitempty"`
	ActualEndTime     *time.Time `json:"actual_end_time,omitempty"`
	ConnectionQuality *string    `json:"connection_quality,omitempty"`

	RequesterRating   *int    `json:"requester_rating,omitempty"`
	ResponderRating   *int    `json:"responder_rating,omitempty"`
	RequesterFeedback *string `json:"requester_feedback,omitempty"`
	ResponderFeedback *string `json:"responder_feedback,omitempty"`

	Outcome      string     `json:"outcome,omitempty"`
	FollowUpDate *time.Time `json:"follow_up_date,omitempty"`
	DealValue    *float64   `json:"deal_value,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// CallListResponse wraps a page of calls with pagination metadata.
type CallListResponse struct {
	Calls []CallResponse `json:"calls"`
	Total int            `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

// UpdateCallStatusRequest moves a call through its state machine. The
// optional fields record live-call details alongside the transition.
type UpdateCallStatusRequest struct {
	Status            string     `json:"status"`
	ActualStartTime   *time.Time `json:"actual_start_time,omitempty"`
	ActualEndTime     *time.Time `json:"actual_end_time,omitempty"`
	ConnectionQuality *string    `json:"connection_quality,omitempty"`
}

// CancelCallResponse reports whether the cancellation refunded the credit.
type CancelCallResponse struct {
	Call     CallResponse `json:"call"`
	Refunded bool         `json:"refunded"`
}

// FeedbackRequest records post-call feedback. Outcome, FollowUpDate and
// DealValue are requester-only.
type FeedbackRequest struct {
	Rating       *int       `json:"rating,omitempty"`
	Feedback     *string    `json:"feedback,omitempty"`
	Outcome      *string    `json:"outcome,omitempty"`
	FollowUpDate *time.Time `json:"follow_up_date,omitempty"`
	DealValue    *float64   `json:"deal_value,omitempty"`
}

// ============================================================================
// Stats
// ============================================================================

// CallStatsResponse is the per-user call rollup.
type CallStatsResponse struct {
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	Cancelled      int     `json:"cancelled"`
	NoShow         int     `json:"no_show"`
	Upcoming       int     `json:"upcoming"`
	ThisMonth      int     `json:"this_month"`
	AverageRating  float64 `json:"average_rating"`
	CompletionRate float64 `json:"completion_rate"`
}

// UserStatsResponse combines a user's invitation and call rollups.
// Invitations is nil for responders.
type UserStatsResponse struct {
	AccountID   string                   `json:"account_id"`
	Role        string                   `json:"role"`
	Invitations *InvitationStatsResponse `json:"invitations,omitempty"`
	Calls       CallStatsResponse        `json:"calls"`
}

// PlatformStatsResponse is the platform-wide rollup.
type PlatformStatsResponse struct {
	AccountsByRole      map[string]int `json:"accounts_by_role"`
	InvitationsByStatus map[string]int `json:"invitations_by_status"`
	CallsByStatus       map[string]int `json:"calls_by_status"`
	RatingsSubmitted    int            `json:"ratings_submitted"`
}

// ============================================================================
// System
// ============================================================================

// HealthResponse is returned by the livez and readyz endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Version string        `json:"version,omitempty"`
	Uptime  string        `json:"uptime,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports per-dependency readiness.
type HealthChecks struct {
	Database string `json:"database"`
}
