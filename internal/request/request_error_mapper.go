package request

import (
	"errors"
	"net/http"

	requesterrors "github.com/vinodkumarpeddi/RequestHub-Backend/internal/request/errors"
	"github.com/vinodkumarpeddi/RequestHub-Backend/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return requesterrors.ErrRequestNotFound
	}

	// Driver-level failures mean the store itself is unhealthy; surface them
	// as a generic server error rather than leaking SQLSTATE details.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return apperror.Wrap(err, apperror.CodeInternalError,
			"request store unavailable", http.StatusInternalServerError)
	}

	return err
}
