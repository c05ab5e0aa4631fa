package notification_test

import (
	"testing"

	"github.com/vinodkumarpeddi/RequestHub-Backend/internal/notification"

	"github.com/stretchr/testify/assert"
)

func sampleNotice() notification.Notice {
	return notification.Notice{
		KindLabel:  "Internship",
		Name:       "Asha Rao",
		RollNumber: "21CS042",
		College:    "GPREC",
		Branch:     "CSE",
		Semester:   "6",
		Email:      "asha@example.com",
		Institute:  "Acme Labs",
		StartDate:  "2026-09-01",
		EndDate:    "2026-11-30",
	}
}

func TestCompose_SubmittedSubmitter(t *testing.T) {
	n := sampleNotice()
	n.Event = notification.EventSubmitted
	n.Audience = notification.AudienceSubmitter

	subject, body := notification.Compose(n)

	assert.Equal(t, "Internship Request Submitted", subject)
	assert.Contains(t, body, "Hello Asha Rao")
	assert.Contains(t, body, "Status: Pending")
	assert.Contains(t, body, "Acme Labs")
	assert.Contains(t, body, "2026-09-01")
}

func TestCompose_SubmittedStaff(t *testing.T) {
	n := sampleNotice()
	n.Event = notification.EventSubmitted
	n.Audience = notification.AudienceStaff

	subject, body := notification.Compose(n)

	assert.Equal(t, "New Internship Request Received", subject)
	assert.Contains(t, body, "awaiting review")
	assert.Contains(t, body, "asha@example.com")
}

func TestCompose_Rejected(t *testing.T) {
	n := sampleNotice()
	n.Event = notification.EventRejected
	n.Remarks = "insufficient notice"

	subject, body := notification.Compose(n)

	assert.Equal(t, "Internship Request Rejected", subject)
	assert.Contains(t, body, "Reason for Rejection: insufficient notice")
}

func TestCompose_RejectedWithoutRemarksFallsBack(t *testing.T) {
	n := sampleNotice()
	n.Event = notification.EventRejected

	_, body := notification.Compose(n)

	assert.Contains(t, body, "Reason for Rejection: Not specified")
}

func TestCompose_Approved(t *testing.T) {
	n := sampleNotice()
	n.Event = notification.EventApproved

	subject, body := notification.Compose(n)

	assert.Equal(t, "Internship Request Approved", subject)
	assert.Contains(t, body, "has been Approved")
	assert.NotContains(t, body, "Reason for Rejection")
}
