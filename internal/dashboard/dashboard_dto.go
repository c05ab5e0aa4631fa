package dashboard

import "github.com/vinodkumarpeddi/RequestHub-Backend/internal/request"

// OverviewResponse keeps the field names the admin frontend already binds to.
type OverviewResponse struct {
	InternshipCount int64 `json:"internshipCount"`
	IDCount         int64 `json:"idCount"`
	LeaveCount      int64 `json:"leaveCount"`
	HackathonCount  int64 `json:"hackathonCount"`
	ApprovedCount   int64 `json:"approvedCount"`
	RejectedCount   int64 `json:"rejectedCount"`
	PendingCount    int64 `json:"pendingCount"`
}

// TaggedRequest is one row of the unioned all-requests feed. It carries the
// full record, kind-specific optional fields included, so the admin feed
// shows the same detail as a per-kind listing.
type TaggedRequest struct {
	ID              string       `json:"id"`
	Type            request.Kind `json:"type"`
	Name            string       `json:"name"`
	RollNumber      string       `json:"roll_number"`
	College         string       `json:"college"`
	Branch          string       `json:"branch"`
	Semester        string       `json:"semester"`
	Email           string       `json:"email"`
	Institute       string       `json:"institute,omitempty"`
	Reason          string       `json:"reason,omitempty"`
	StartDate       string       `json:"start_date"`
	EndDate         string       `json:"end_date"`
	AttachmentRef   *string      `json:"attachment_ref,omitempty"`
	Status          string       `json:"status"`
	DecisionRemarks *string      `json:"decision_remarks,omitempty"`
	CreatedAt       string       `json:"created_at"`
}

type UserCountsResponse struct {
	Pending  int64 `json:"pending"`
	Accepted int64 `json:"accepted"`
	Rejected int64 `json:"rejected"`
	Total    int64 `json:"total"`
}
