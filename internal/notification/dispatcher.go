package notification

import "context"

type Event string

const (
	EventSubmitted Event = "submitted"
	EventApproved  Event = "approved"
	EventRejected  Event = "rejected"
)

type Audience string

const (
	AudienceSubmitter Audience = "submitter"
	AudienceStaff     Audience = "staff"
)

// Notice is a lifecycle event paired with a flat snapshot of the request it
// concerns. The lifecycle engine fills one in and hands it over; composing
// and delivering the actual message is entirely the dispatcher's business.
type Notice struct {
	Event     Event
	Audience  Audience
	Recipient string

	KindLabel  string
	Name       string
	RollNumber string
	College    string
	Branch     string
	Semester   string
	Email      string
	Institute  string
	Reason     string
	StartDate  string
	EndDate    string
	Remarks    string
}

type Dispatcher interface {
	Dispatch(ctx context.Context, n Notice) error
}
