package handlers

import (
	"errors"
	"net/http"

	"mindwell/services/chat"
	"mindwell/services/mood"
	"mindwell/services/patient"
	"mindwell/services/scheduling"
	"mindwell/services/therapist"
	"mindwell/services/user"
	"mindwell/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// writeServiceError maps typed service errors onto HTTP statuses:
// validation 400, auth 401, forbidden 403, not-found 404, conflict 409.
// Anything untyped is an internal error and keeps its detail out of the
// response body.
func writeServiceError(c *gin.Context, err error) {
	var (
		chatValidation  *chat.ValidationError
		chatNotFound    *chat.NotFoundError
		schedValidation *scheduling.ValidationError
		schedNotFound   *scheduling.NotFoundError
		schedConflict   *scheduling.ConflictError
		moodValidation  *mood.ValidationError
		moodNotFound    *mood.NotFoundError
		moodForbidden   *mood.ForbiddenError
		userValidation  *user.ValidationError
		userNotFound    *user.NotFoundError
		userAuth        *user.AuthError
		thValidation    *therapist.ValidationError
		thNotFound      *therapist.NotFoundError
		ptNotFound      *patient.NotFoundError
		ptForbidden     *patient.ForbiddenError
	)

	switch {
	case errors.As(err, &chatValidation),
		errors.As(err, &schedValidation),
		errors.As(err, &moodValidation),
		errors.As(err, &userValidation),
		errors.As(err, &thValidation):
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
	case errors.As(err, &userAuth):
		utils.JSONError(c, http.StatusUnauthorized, err.Error(), "")
	case errors.As(err, &moodForbidden),
		errors.As(err, &ptForbidden):
		utils.JSONError(c, http.StatusForbidden, err.Error(), "")
	case errors.As(err, &chatNotFound),
		errors.As(err, &schedNotFound),
		errors.As(err, &moodNotFound),
		errors.As(err, &userNotFound),
		errors.As(err, &thNotFound),
		errors.As(err, &ptNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error(), "")
	case errors.As(err, &schedConflict):
		utils.JSONError(c, http.StatusConflict, err.Error(), "")
	default:
		utils.GetLogger().Error("request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error", "")
	}
}
