package bulkselect

import (
	"context"
	"time"

	bulkerrors "github.com/vinodkumarpeddi/RequestHub-Backend/internal/bulkselect/errors"
	"github.com/vinodkumarpeddi/RequestHub-Backend/internal/request"

	"go.uber.org/zap"
)

type Service interface {
	SelectForDecision(ctx context.Context, kind request.Kind, daysAhead int) ([]string, error)
}

type service struct {
	repo   request.Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo request.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("bulkselect.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("bulkselect.service")
	}
	return &service{repo: repo, now: time.Now, logger: l}
}

// NewServiceWithClock pins "today" for tests.
func NewServiceWithClock(repo request.Repository, now func() time.Time, logger ...*zap.Logger) Service {
	s := NewService(repo, logger...).(*service)
	s.now = now
	return s
}

// SelectForDecision returns the ids of Pending requests of the given kind
// whose start date falls within [today, today+daysAhead], both inclusive,
// at calendar-day resolution. Ids only — every selected request still goes
// through the ordinary approve/reject transition one by one, so there is a
// single source of truth for status changes and notifications.
func (s *service) SelectForDecision(ctx context.Context, kind request.Kind, daysAhead int) ([]string, error) {
	if !kind.Valid() {
		return nil, bulkerrors.ErrInvalidKind
	}
	if daysAhead <= 0 {
		return nil, bulkerrors.ErrInvalidDaysAhead
	}

	today := s.now().UTC().Truncate(24 * time.Hour)
	until := today.AddDate(0, 0, daysAhead)

	ids, err := s.repo.PendingIDsInWindow(ctx, kind, today, until)
	if err != nil {
		s.logger.Error("bulk selection failed",
			zap.String("kind", string(kind)),
			zap.Int("days_ahead", daysAhead),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("bulk selection computed",
		zap.String("kind", string(kind)),
		zap.Int("days_ahead", daysAhead),
		zap.Int("matched", len(ids)),
	)
	return ids, nil
}
