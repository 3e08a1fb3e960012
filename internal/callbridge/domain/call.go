package domain

import (
	"math"
	"time"
)

// DefaultCallDuration is used when a schedule request omits the duration.
const DefaultCallDuration = 30 // minutes

// RefundNoticeWindow is the minimum notice for a cancellation to refund
// the requester's credit.
const RefundNoticeWindow = 24 * time.Hour

type CallStatus string

const (
	CallScheduled  CallStatus = "scheduled"
	CallInProgress CallStatus = "in_progress"
	CallCompleted  CallStatus = "completed"
	CallCancelled  CallStatus = "cancelled"
	CallNoShow     CallStatus = "no_show"
)

func (s CallStatus) Valid() bool {
	switch s {
	case CallScheduled, CallInProgress, CallCompleted, CallCancelled, CallNoShow:
		return true
	}
	return false
}

// Terminal reports whether the status permits no further transitions.
func (s CallStatus) Terminal() bool {
	return s == CallCompleted || s == CallCancelled || s == CallNoShow
}

// callTransitions is the full status transition table. Anything not listed
// here is rejected.
var callTransitions = map[CallStatus][]CallStatus{
	CallScheduled:  {CallInProgress, CallCancelled, CallNoShow},
	CallInProgress: {CallCompleted},
}

// CanTransition reports whether a call may move from one status to another.
func CanTransition(from, to CallStatus) bool {
	for _, allowed := range callTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

type ConnectionQuality string

const (
	QualityExcellent ConnectionQuality = "excellent"
	QualityGood      ConnectionQuality = "good"
	QualityFair      ConnectionQuality = "fair"
	QualityPoor      ConnectionQuality = "poor"
)

func (q ConnectionQuality) Valid() bool {
	switch q {
	case QualityExcellent, QualityGood, QualityFair, QualityPoor:
		return true
	}
	return false
}

// CallOutcome is the requester-recorded business result of a completed call.
type CallOutcome string

const (
	OutcomeInterested     CallOutcome = "interested"
	OutcomeNotInterested  CallOutcome = "not_interested"
	OutcomeFollowUpNeeded CallOutcome = "follow_up_needed"
	OutcomeClosedDeal     CallOutcome = "closed_deal"
	OutcomeNoDecision     CallOutcome = "no_decision"
)

func (o CallOutcome) Valid() bool {
	switch o {
	case OutcomeInterested, OutcomeNotInterested, OutcomeFollowUpNeeded,
		OutcomeClosedDeal, OutcomeNoDecision:
		return true
	}
	return false
}

// Call is a scheduled meeting between a requester and a responder.
type Call struct {
	ID          string
	RequesterID string
	ResponderID string
	ScheduledAt time.Time
	Duration    int // minutes
	Status      CallStatus
	Notes       string

	ActualStartTime   *time.Time
	ActualEndTime     *time.Time
	ConnectionQuality *ConnectionQuality

	RequesterRating   *int // 1..5
	ResponderRating   *int // 1..5
	RequesterFeedback *string
	ResponderFeedback *string

	Outcome      CallOutcome
	FollowUpDate *time.Time
	DealValue    *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Participant reports whether the account takes part in the call.
func (c Call) Participant(accountID string) bool {
	return c.RequesterID == accountID || c.ResponderID == accountID
}

// CounterpartyRating returns the rating left by the other side of the call
// relative to the given role. Requesters see responder ratings and vice versa.
func (c Call) CounterpartyRating(role AccountRole) *int {
	if role == RoleRequester {
		return c.ResponderRating
	}
	return c.RequesterRating
}

// CallStats is the per-user rollup over calls.
type CallStats struct {
	Total     int
	Completed int
	Cancelled int
	NoShow    int
	Upcoming  int
	ThisMonth int

	// AverageRating is the mean of counterparty ratings on completed calls,
	// one decimal, 0 when there are none.
	AverageRating float64

	// CompletionRate is completed/total*100, one decimal, 0 when total is 0.
	CompletionRate float64
}

// CompletionRate computes completed/total*100 rounded to one decimal.
func CompletionRate(completed, total int) float64 {
	return ratePercent(completed, total)
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func ratePercent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return Round1(float64(part) / float64(total) * 100)
}
