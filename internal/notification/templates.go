package notification

import (
	"fmt"
	"strings"
)

func detailLines(n Notice) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name:        %s\n", n.Name)
	fmt.Fprintf(&b, "Roll Number: %s\n", n.RollNumber)
	fmt.Fprintf(&b, "College:     %s\n", n.College)
	fmt.Fprintf(&b, "Branch:      %s\n", n.Branch)
	fmt.Fprintf(&b, "Semester:    %s\n", n.Semester)
	if n.Institute != "" {
		fmt.Fprintf(&b, "Institute:   %s\n", n.Institute)
	}
	if n.Reason != "" {
		fmt.Fprintf(&b, "Reason:      %s\n", n.Reason)
	}
	fmt.Fprintf(&b, "Start Date:  %s\n", n.StartDate)
	fmt.Fprintf(&b, "End Date:    %s\n", n.EndDate)
	return b.String()
}

// Compose renders the subject and plain-text body for a notice.
func Compose(n Notice) (subject, body string) {
	switch n.Event {
	case EventSubmitted:
		if n.Audience == AudienceStaff {
			subject = fmt.Sprintf("New %s Request Received", n.KindLabel)
			body = fmt.Sprintf(
				"A new %s request has been submitted and is awaiting review.\n\n%s\nSubmitter Email: %s\n\nPlease review it in the admin panel.\n",
				strings.ToLower(n.KindLabel), detailLines(n), n.Email,
			)
			return subject, body
		}
		subject = fmt.Sprintf("%s Request Submitted", n.KindLabel)
		body = fmt.Sprintf(
			"Hello %s,\n\nYour %s request has been submitted successfully with the following details:\n\n%s\nStatus: Pending\n\nWe will email you again once it is approved or rejected.\n\nRegards,\nRequestHub Team\n",
			n.Name, strings.ToLower(n.KindLabel), detailLines(n),
		)
		return subject, body

	case EventApproved:
		subject = fmt.Sprintf("%s Request Approved", n.KindLabel)
		body = fmt.Sprintf(
			"Hello %s,\n\nYour %s request has been Approved.\n\n%s\nRegards,\nRequestHub Team\n",
			n.Name, strings.ToLower(n.KindLabel), detailLines(n),
		)
		return subject, body

	case EventRejected:
		remarks := n.Remarks
		if remarks == "" {
			remarks = "Not specified"
		}
		subject = fmt.Sprintf("%s Request Rejected", n.KindLabel)
		body = fmt.Sprintf(
			"Hello %s,\n\nYour %s request has been Rejected.\n\n%s\nReason for Rejection: %s\n\nRegards,\nRequestHub Team\n",
			n.Name, strings.ToLower(n.KindLabel), detailLines(n), remarks,
		)
		return subject, body
	}

	subject = fmt.Sprintf("%s Request Update", n.KindLabel)
	return subject, detailLines(n)
}
