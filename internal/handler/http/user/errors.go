package user

import (
	"errors"
	"net/http"

	"daily-news/internal/domain/entity"
	"daily-news/internal/handler/http/respond"
	userUC "daily-news/internal/usecase/user"
)

var errInvalidBody = errors.New("invalid request body")

const (
	msgUserNotFound = "User not found"
	msgNoChanges    = "No changes made to the user profile"
	msgUpdated      = "User updated successfully"
	msgUserExists   = "user already exists"
)

// writeError maps use case errors to status codes.
func writeError(w http.ResponseWriter, err error, retry respond.RetryAdvisor) {
	switch {
	case errors.Is(err, userUC.ErrInvalidUserID),
		errors.Is(err, userUC.ErrInvalidPagination),
		errors.Is(err, entity.ErrInvalidInput):
		respond.SafeError(w, http.StatusBadRequest, err)
	case errors.Is(err, userUC.ErrUserNotFound):
		respond.Message(w, http.StatusNotFound, msgUserNotFound)
	default:
		respond.StoreFailure(w, err, retry)
	}
}

// writeReport answers profile and subscription updates.
func writeReport(w http.ResponseWriter, rep userUC.UpdateReport) {
	if rep.Outcome == userUC.NoChanges {
		respond.JSON(w, http.StatusOK, messageResponse{Message: msgNoChanges})
		return
	}
	modified := rep.Modified
	respond.JSON(w, http.StatusOK, messageResponse{Message: msgUpdated, ModifiedCount: &modified})
}
