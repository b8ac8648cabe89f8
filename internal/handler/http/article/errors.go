package article

import (
	"errors"
	"net/http"

	"daily-news/internal/domain/entity"
	"daily-news/internal/handler/http/respond"
	artUC "daily-news/internal/usecase/article"
)

var errInvalidBody = errors.New("invalid request body")

// writeError maps use case errors to status codes.
func writeError(w http.ResponseWriter, err error, retry respond.RetryAdvisor) {
	switch {
	case errors.Is(err, artUC.ErrInvalidArticleID),
		errors.Is(err, artUC.ErrInvalidPagination),
		errors.Is(err, entity.ErrInvalidInput):
		respond.SafeError(w, http.StatusBadRequest, err)
	case errors.Is(err, artUC.ErrArticleNotFound):
		respond.SafeError(w, http.StatusNotFound, err)
	default:
		respond.StoreFailure(w, err, retry)
	}
}
