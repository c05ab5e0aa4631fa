package request

import (
	"io"
	"time"
)

type SubmitRequest struct {
	Name       string `form:"name" json:"name" binding:"required"`
	RollNumber string `form:"roll_number" json:"roll_number" binding:"required"`
	College    string `form:"college" json:"college" binding:"required"`
	Branch     string `form:"branch" json:"branch" binding:"required"`
	Semester   string `form:"semester" json:"semester" binding:"required"`
	Email      string `form:"email" json:"email" binding:"required,email"`
	Institute  string `form:"institute" json:"institute"`
	Reason     string `form:"reason" json:"reason"`
	StartDate  string `form:"start_date" json:"start_date" binding:"required"`
	EndDate    string `form:"end_date" json:"end_date" binding:"required"`
}

// Upload is the attachment handed to Submit; the content is streamed to the
// attachment store, never buffered into the record.
type Upload struct {
	Filename string
	Content  io.Reader
}

type RejectRequest struct {
	Remarks string `json:"remarks"`
}

type Response struct {
	ID              string  `json:"id"`
	Kind            Kind    `json:"kind"`
	Name            string  `json:"name"`
	RollNumber      string  `json:"roll_number"`
	College         string  `json:"college"`
	Branch          string  `json:"branch"`
	Semester        string  `json:"semester"`
	Email           string  `json:"email"`
	Institute       string  `json:"institute,omitempty"`
	Reason          string  `json:"reason,omitempty"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	AttachmentRef   *string `json:"attachment_ref,omitempty"`
	Status          string  `json:"status"`
	DecisionRemarks *string `json:"decision_remarks,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

const dateLayout = "2006-01-02"

func mapToResponse(r Request) Response {
	return Response{
		ID:              r.ID.String(),
		Kind:            r.Kind,
		Name:            r.Name,
		RollNumber:      r.RollNumber,
		College:         r.College,
		Branch:          r.Branch,
		Semester:        r.Semester,
		Email:           r.Email,
		Institute:       r.Institute,
		Reason:          r.Reason,
		StartDate:       r.StartDate.Format(dateLayout),
		EndDate:         r.EndDate.Format(dateLayout),
		AttachmentRef:   r.AttachmentRef,
		Status:          r.Status,
		DecisionRemarks: r.DecisionRemarks,
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(requests []Request) []Response {
	resp := make([]Response, len(requests))
	for i, r := range requests {
		resp[i] = mapToResponse(r)
	}
	return resp
}
