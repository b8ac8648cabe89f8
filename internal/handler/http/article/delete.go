package article

import (
	"net/http"

	"daily-news/internal/handler/http/respond"
	artUC "daily-news/internal/usecase/article"
)

type DeleteHandler struct {
	Svc   *artUC.Service
	Retry respond.RetryAdvisor
}

// ServeHTTP 記事削除
// @Summary      Delete article
// @Description  Deletes the article. Deleting a missing article reports deletedCount 0.
// @Tags         articles
// @Produce      json
// @Param        id path string true "Article ID"
// @Success      200 {object} respond.DeleteResult
// @Failure      400 {object} map[string]string "invalid article ID"
// @Failure      500 {object} map[string]string "internal server error"
// @Failure      503 {object} map[string]string "service unavailable"
// @Router       /articles/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	res, err := h.Svc.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err, h.Retry)
		return
	}
	respond.JSON(w, http.StatusOK, respond.Deleted(res))
}
