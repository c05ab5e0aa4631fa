package request

import (
	"context"
	"database/sql"
	"time"

	"github.com/vinodkumarpeddi/RequestHub-Backend/internal/notification"
	requesterrors "github.com/vinodkumarpeddi/RequestHub-Backend/internal/request/errors"
	"github.com/vinodkumarpeddi/RequestHub-Backend/internal/shared/contextutil"
	"github.com/vinodkumarpeddi/RequestHub-Backend/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Config carries the few engine-level settings that are not per-kind policy.
type Config struct {
	AdminEmail string
}

type Service interface {
	Submit(ctx context.Context, kind Kind, req SubmitRequest, upload *Upload) (Response, error)
	GetAll(ctx context.Context, kind Kind) ([]Response, error)
	GetAllByStatus(ctx context.Context, kind Kind, status string) ([]Response, error)
	GetByID(ctx context.Context, kind Kind, id string) (Response, error)
	Approve(ctx context.Context, kind Kind, id string) (Response, error)
	Reject(ctx context.Context, kind Kind, id, remarks string) (Response, error)
	Delete(ctx context.Context, kind Kind, id string) error
}

type service struct {
	db       *sql.DB
	repo     Repository
	notifier notification.Dispatcher
	files    storage.Store
	cfg      Config
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	notifier notification.Dispatcher,
	files storage.Store,
	cfg Config,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("request.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("request.service")
	}
	return &service{db: db, repo: repo, notifier: notifier, files: files, cfg: cfg, logger: l}
}

func (s *service) Submit(ctx context.Context, kind Kind, req SubmitRequest, upload *Upload) (Response, error) {
	s.logger.Debug("submit requested",
		zap.String("rid", contextutil.GetRequestID(ctx)),
		zap.String("kind", string(kind)),
		zap.String("roll_number", req.RollNumber),
		zap.String("email", req.Email),
	)

	if !kind.Valid() {
		return Response{}, requesterrors.ErrInvalidKind
	}
	cfg := kind.Config()

	startDate, endDate, err := parseWindow(req.StartDate, req.EndDate)
	if err != nil {
		s.logger.Warn("submit validation failed", zap.Error(err))
		return Response{}, err
	}
	if cfg.RequiresInstitute && req.Institute == "" {
		return Response{}, requesterrors.ErrInstituteRequired
	}
	if cfg.RequiresReason && req.Reason == "" {
		return Response{}, requesterrors.ErrReasonRequired
	}
	if cfg.RequiresAttachment && upload == nil {
		return Response{}, requesterrors.ErrAttachmentRequired
	}

	// The attachment is a fire-and-forget side effect: a failed store leaves
	// the submission intact with no ref.
	var attachmentRef *string
	if upload != nil {
		ref, err := s.files.Save(ctx, upload.Filename, upload.Content)
		if err != nil {
			s.logger.Error("attachment store failed",
				zap.String("kind", string(kind)),
				zap.String("filename", upload.Filename),
				zap.Error(err),
			)
		} else {
			attachmentRef = &ref
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("submit begin tx failed", zap.Error(err))
		return Response{}, mapRepositoryError(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	record := &Request{
		ID:            uuid.New(),
		Kind:          kind,
		Name:          req.Name,
		RollNumber:    req.RollNumber,
		College:       req.College,
		Branch:        req.Branch,
		Semester:      req.Semester,
		Email:         req.Email,
		Institute:     req.Institute,
		Reason:        req.Reason,
		StartDate:     startDate,
		EndDate:       endDate,
		AttachmentRef: attachmentRef,
		Status:        StatusPending,
	}

	if err := qtx.Create(ctx, record); err != nil {
		s.logger.Error("submit persist failed", zap.Error(err))
		return Response{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("submit commit failed", zap.Error(err))
		return Response{}, mapRepositoryError(err)
	}

	s.logger.Info("submit success",
		zap.String("request_id", record.ID.String()),
		zap.String("kind", string(kind)),
	)

	s.dispatch(ctx, noticeFor(record, notification.EventSubmitted, notification.AudienceSubmitter, record.Email))
	s.dispatch(ctx, noticeFor(record, notification.EventSubmitted, notification.AudienceStaff, s.cfg.AdminEmail))

	return mapToResponse(*record), nil
}

func (s *service) GetAll(ctx context.Context, kind Kind) ([]Response, error) {
	if !kind.Valid() {
		return nil, requesterrors.ErrInvalidKind
	}
	requests, err := s.repo.FindAll(ctx, kind)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(requests), nil
}

func (s *service) GetAllByStatus(ctx context.Context, kind Kind, status string) ([]Response, error) {
	if !kind.Valid() {
		return nil, requesterrors.ErrInvalidKind
	}
	if !ValidStatus(status) {
		return nil, requesterrors.ErrInvalidStatusFilter
	}
	requests, err := s.repo.FindAllByStatus(ctx, kind, status)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(requests), nil
}

func (s *service) GetByID(ctx context.Context, kind Kind, id string) (Response, error) {
	if !kind.Valid() {
		return Response{}, requesterrors.ErrInvalidKind
	}
	if _, err := uuid.Parse(id); err != nil {
		return Response{}, requesterrors.ErrInvalidRequestID
	}
	record, err := s.repo.FindByID(ctx, kind, id)
	if err != nil {
		return Response{}, mapRepositoryError(err)
	}
	return mapToResponse(*record), nil
}

func (s *service) Approve(ctx context.Context, kind Kind, id string) (Response, error) {
	return s.decide(ctx, kind, id, StatusApproved, "")
}

func (s *service) Reject(ctx context.Context, kind Kind, id, remarks string) (Response, error) {
	return s.decide(ctx, kind, id, StatusRejected, remarks)
}

// decide is the single transition out of Pending. The status change is
// persisted and committed before any notification is attempted, so a dead
// mail server can never roll back a decision.
func (s *service) decide(ctx context.Context, kind Kind, id, outcome, remarks string) (Response, error) {
	s.logger.Debug("decide requested",
		zap.String("rid", contextutil.GetRequestID(ctx)),
		zap.String("kind", string(kind)),
		zap.String("request_id", id),
		zap.String("outcome", outcome),
	)

	if !kind.Valid() {
		return Response{}, requesterrors.ErrInvalidKind
	}
	if _, err := uuid.Parse(id); err != nil {
		return Response{}, requesterrors.ErrInvalidRequestID
	}
	if outcome == StatusRejected && remarks == "" {
		return Response{}, requesterrors.ErrRemarksRequired
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("decide begin tx failed", zap.Error(err))
		return Response{}, mapRepositoryError(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	record, err := qtx.FindByID(ctx, kind, id)
	if err != nil {
		return Response{}, mapRepositoryError(err)
	}
	if record.Status != StatusPending {
		s.logger.Warn("decide on non-pending request",
			zap.String("request_id", id),
			zap.String("current_status", record.Status),
			zap.String("outcome", outcome),
		)
		return Response{}, requesterrors.ErrInvalidStatusTransition
	}

	record.Status = outcome
	if outcome == StatusRejected {
		record.DecisionRemarks = &remarks
	} else {
		record.DecisionRemarks = nil
	}

	if err := qtx.Update(ctx, record); err != nil {
		s.logger.Error("decide persist failed",
			zap.String("request_id", id),
			zap.Error(err),
		)
		return Response{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("decide commit failed",
			zap.String("request_id", id),
			zap.Error(err),
		)
		return Response{}, mapRepositoryError(err)
	}

	s.logger.Info("decide success",
		zap.String("request_id", id),
		zap.String("kind", string(kind)),
		zap.String("status", outcome),
	)

	event := notification.EventApproved
	if outcome == StatusRejected {
		event = notification.EventRejected
	}
	s.dispatch(ctx, noticeFor(record, event, notification.AudienceSubmitter, record.Email))

	return mapToResponse(*record), nil
}

func (s *service) Delete(ctx context.Context, kind Kind, id string) error {
	if !kind.Valid() {
		return requesterrors.ErrInvalidKind
	}
	if _, err := uuid.Parse(id); err != nil {
		return requesterrors.ErrInvalidRequestID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return mapRepositoryError(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	record, err := qtx.FindByID(ctx, kind, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if err := qtx.Delete(ctx, kind, id); err != nil {
		return mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return mapRepositoryError(err)
	}

	s.logger.Info("delete success",
		zap.String("request_id", id),
		zap.String("kind", string(kind)),
	)

	if record.AttachmentRef != nil {
		if err := s.files.Remove(ctx, *record.AttachmentRef); err != nil {
			s.logger.Error("attachment removal failed",
				zap.String("request_id", id),
				zap.String("ref", *record.AttachmentRef),
				zap.Error(err),
			)
		}
	}
	return nil
}

// dispatch sends one notice and swallows the outcome; delivery failures are
// logged only, the authoritative state change already happened.
func (s *service) dispatch(ctx context.Context, n notification.Notice) {
	if s.notifier == nil || n.Recipient == "" {
		return
	}
	if err := s.notifier.Dispatch(ctx, n); err != nil {
		s.logger.Error("notification dispatch failed",
			zap.String("event", string(n.Event)),
			zap.String("recipient", n.Recipient),
			zap.Error(err),
		)
	}
}

func noticeFor(r *Request, event notification.Event, audience notification.Audience, recipient string) notification.Notice {
	n := notification.Notice{
		Event:      event,
		Audience:   audience,
		Recipient:  recipient,
		KindLabel:  r.Kind.Config().Label,
		Name:       r.Name,
		RollNumber: r.RollNumber,
		College:    r.College,
		Branch:     r.Branch,
		Semester:   r.Semester,
		Email:      r.Email,
		Institute:  r.Institute,
		Reason:     r.Reason,
		StartDate:  r.StartDate.Format(dateLayout),
		EndDate:    r.EndDate.Format(dateLayout),
	}
	if r.DecisionRemarks != nil {
		n.Remarks = *r.DecisionRemarks
	}
	return n
}

func parseWindow(start, end string) (time.Time, time.Time, error) {
	startDate, err := time.Parse(dateLayout, start)
	if err != nil {
		return time.Time{}, time.Time{}, requesterrors.ErrInvalidDateFormat
	}
	endDate, err := time.Parse(dateLayout, end)
	if err != nil {
		return time.Time{}, time.Time{}, requesterrors.ErrInvalidDateFormat
	}
	if startDate.After(endDate) {
		return time.Time{}, time.Time{}, requesterrors.ErrInvalidDateRange
	}
	return startDate, endDate, nil
}
