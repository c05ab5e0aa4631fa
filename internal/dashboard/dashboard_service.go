package dashboard

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/vinodkumarpeddi/RequestHub-Backend/internal/request"
	"github.com/vinodkumarpeddi/RequestHub-Backend/internal/shared/apperror"

	"go.uber.org/zap"
)

type Service interface {
	Overview(ctx context.Context) (OverviewResponse, error)
	AllRequests(ctx context.Context) ([]TaggedRequest, error)
	UserCounts(ctx context.Context, email string) (UserCountsResponse, error)
}

type service struct {
	repo   request.Repository
	logger *zap.Logger
}

func NewService(repo request.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{repo: repo, logger: l}
}

// Overview counts every kind independently — the kinds live in separate
// tables, so there is no single query to span them — and sums in Go.
func (s *service) Overview(ctx context.Context) (OverviewResponse, error) {
	var overview OverviewResponse

	for _, kind := range request.Kinds() {
		total, err := s.repo.CountAll(ctx, kind)
		if err != nil {
			s.logger.Error("overview count failed", zap.String("kind", string(kind)), zap.Error(err))
			return OverviewResponse{}, err
		}

		switch kind {
		case request.KindInternship:
			overview.InternshipCount = total
		case request.KindLeave:
			overview.LeaveCount = total
		case request.KindIDCard:
			overview.IDCount = total
		case request.KindHackathon:
			overview.HackathonCount = total
		}

		for _, status := range []string{request.StatusApproved, request.StatusRejected, request.StatusPending} {
			count, err := s.repo.CountByStatus(ctx, kind, status)
			if err != nil {
				s.logger.Error("overview status count failed",
					zap.String("kind", string(kind)),
					zap.String("status", status),
					zap.Error(err),
				)
				return OverviewResponse{}, err
			}
			switch status {
			case request.StatusApproved:
				overview.ApprovedCount += count
			case request.StatusRejected:
				overview.RejectedCount += count
			case request.StatusPending:
				overview.PendingCount += count
			}
		}
	}

	return overview, nil
}

func (s *service) AllRequests(ctx context.Context) ([]TaggedRequest, error) {
	type taggedRecord struct {
		row TaggedRequest
		at  time.Time
	}
	var items []taggedRecord

	for _, kind := range request.Kinds() {
		records, err := s.repo.FindAll(ctx, kind)
		if err != nil {
			s.logger.Error("all requests fetch failed", zap.String("kind", string(kind)), zap.Error(err))
			return nil, err
		}
		for _, r := range records {
			items = append(items, taggedRecord{
				at: r.CreatedAt,
				row: TaggedRequest{
					ID:              r.ID.String(),
					Type:            kind,
					Name:            r.Name,
					RollNumber:      r.RollNumber,
					College:         r.College,
					Branch:          r.Branch,
					Semester:        r.Semester,
					Email:           r.Email,
					Institute:       r.Institute,
					Reason:          r.Reason,
					StartDate:       r.StartDate.Format("2006-01-02"),
					EndDate:         r.EndDate.Format("2006-01-02"),
					AttachmentRef:   r.AttachmentRef,
					Status:          r.Status,
					DecisionRemarks: r.DecisionRemarks,
					CreatedAt:       r.CreatedAt.Format(time.RFC3339),
				},
			})
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].at.After(items[j].at)
	})

	combined := make([]TaggedRequest, len(items))
	for i, item := range items {
		combined[i] = item.row
	}
	return combined, nil
}

// UserCounts groups a submitter's requests by status across all kinds. The
// email match ignores case, and Approved is presented as "accepted".
func (s *service) UserCounts(ctx context.Context, email string) (UserCountsResponse, error) {
	if email == "" {
		return UserCountsResponse{}, apperror.RequiredField("Email")
	}

	var counts UserCountsResponse
	for _, kind := range request.Kinds() {
		rows, err := s.repo.CountByEmailGrouped(ctx, kind, email)
		if err != nil {
			s.logger.Error("user counts failed",
				zap.String("kind", string(kind)),
				zap.Error(err),
			)
			return UserCountsResponse{}, err
		}
		for _, row := range rows {
			switch strings.ToLower(row.Status) {
			case "pending":
				counts.Pending += row.Count
			case "approved", "accepted":
				counts.Accepted += row.Count
			case "rejected":
				counts.Rejected += row.Count
			}
		}
	}

	counts.Total = counts.Pending + counts.Accepted + counts.Rejected
	return counts, nil
}
