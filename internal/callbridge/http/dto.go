package http

import (
	"github.com/callbridgehq/callbridge/internal/callbridge/domain"
	"github.com/callbridgehq/callbridge/pkg/callsdk"
)

// Converters from domain types to the wire shapes in pkg/callsdk.

func accountResponse(a domain.Account) callsdk.AccountResponse {
	return callsdk.AccountResponse{
		ID:                     a.ID,
		Role:                   string(a.Role),
		Email:                  a.Email,
		Name:                   a.Name,
		CallCredits:            a.CallCredits,
		MonthlyInvitationLimit: a.MonthlyInvitationLimit,
		CreatedAt:              a.CreatedAt,
	}
}

func invitationResponse(inv domain.Invitation) callsdk.InvitationResponse {
	return callsdk.InvitationResponse{
		ID:             inv.ID,
		RequesterID:    inv.RequesterID,
		ResponderEmail: inv.ResponderEmail,
		ResponderName:  inv.ResponderName,
		Message:        inv.Message,
		Status:         string(inv.Status),
		IssuedAt:       inv.IssuedAt,
		ExpiresAt:      inv.ExpiresAt,
		AcceptedAt:     inv.AcceptedAt,
		RejectedAt:     inv.RejectedAt,
	}
}

func callResponse(c domain.Call) callsdk.CallResponse {
	out := callsdk.CallResponse{
		ID:              c.ID,
		RequesterID:     c.RequesterID,
		ResponderID:     c.ResponderID,
		ScheduledAt:     c.ScheduledAt,
		DurationMinutes: c.Duration,
		Status:          string(c.Status),
		Notes:           c.Notes,
		ActualStartTime: c.ActualStartTime,
		ActualEndTime:   c.ActualEndTime,

		RequesterRating:   c.RequesterRating,
		ResponderRating:   c.ResponderRating,
		RequesterFeedback: c.RequesterFeedback,
		ResponderFeedback: c.ResponderFeedback,

		Outcome:      string(c.Outcome),
		FollowUpDate: c.FollowUpDate,
		DealValue:    c.DealValue,

		CreatedAt: c.CreatedAt,
	}
	if c.ConnectionQuality != nil {
		q := string(*c.ConnectionQuality)
		out.ConnectionQuality = &q
	}
	return out
}

func invitationStatsResponse(s domain.InvitationStats) callsdk.InvitationStatsResponse {
	byStatus := make(map[string]int, len(s.ByStatus))
	for k, v := range s.ByStatus {
		byStatus[string(k)] = v
	}
	return callsdk.InvitationStatsResponse{
		Total:           s.Total,
		ByStatus:        byStatus,
		IssuedThisMonth: s.IssuedThisMonth,
		AcceptanceRate:  s.AcceptanceRate,
	}
}

func callStatsResponse(s domain.CallStats) callsdk.CallStatsResponse {
	return callsdk.CallStatsResponse{
		Total:          s.Total,
		Completed:      s.Completed,
		Cancelled:      s.Cancelled,
		NoShow:         s.NoShow,
		Upcoming:       s.Upcoming,
		ThisMonth:      s.ThisMonth,
		AverageRating:  s.AverageRating,
		CompletionRate: s.CompletionRate,
	}
}
