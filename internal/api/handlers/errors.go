package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/mpetrovic-dev/usermgmt/internal/models"
	"github.com/mpetrovic-dev/usermgmt/internal/utils"
	"go.uber.org/zap"
)

// writeError logs the failure and maps the domain error kind to a status
// code. The body is always {"message": "<context> <underlying detail>"}.
// Anything outside the known kinds is an internal error; ErrMissingAPIKey
// deliberately falls through to 500, it marks inconsistent data rather than
// a client mistake.
func writeError(w http.ResponseWriter, logger *zap.Logger, context string, err error) {
	logger.Error(context, zap.Error(err))

	var (
		dupUserName *models.DuplicateUserNameError
		dupEmail    *models.DuplicateEmailError
		notFound    *models.UserNotFoundError
	)

	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &dupUserName), errors.As(err, &dupEmail):
		status = http.StatusConflict
	case errors.As(err, &notFound):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrAuthenticationFailed):
		status = http.StatusUnauthorized
	}

	utils.ErrorResponse(w, status, fmt.Sprintf("%s %s", context, err.Error()))
}
