package article

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"daily-news/internal/handler/http/respond"
	artUC "daily-news/internal/usecase/article"
)

type GetHandler struct {
	Svc   *artUC.Service
	Retry respond.RetryAdvisor
}

// ServeHTTP 記事詳細取得
// @Summary      Get article
// @Description  Returns the article with the given id. The id must be a 24 character hex string.
// @Tags         articles
// @Produce      json
// @Param        id path string true "Article ID"
// @Success      200 {object} DTO
// @Failure      400 {object} map[string]string "invalid article ID"
// @Failure      404 {object} map[string]string "article not found"
// @Failure      500 {object} map[string]string "internal server error"
// @Failure      503 {object} map[string]string "service unavailable"
// @Router       /articles/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a, err := h.Svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err, h.Retry)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(a))
}

type TrendingHandler struct {
	Svc *artUC.Service
	// MaxLimit caps ?limit= like the paginated listings; zero means no cap.
	MaxLimit int
	Retry    respond.RetryAdvisor
}

// ServeHTTP 人気記事取得
// @Summary      Trending articles
// @Description  Returns the most visited articles, highest visit count first.
// @Tags         articles
// @Produce      json
// @Param        limit  query    int  false  "Number of articles" minimum(1) maximum(100)
// @Success      200 {array}  DTO
// @Failure      400 {object} map[string]string "limit must be a positive integer"
// @Failure      500 {object} map[string]string "internal server error"
// @Failure      503 {object} map[string]string "service unavailable"
// @Router       /trending-articles [get]
func (h TrendingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respond.SafeError(w, http.StatusBadRequest, errors.New("limit must be a positive integer"))
			return
		}
		if h.MaxLimit > 0 && n > h.MaxLimit {
			respond.SafeError(w, http.StatusBadRequest, fmt.Errorf("limit must be at most %d", h.MaxLimit))
			return
		}
		limit = n
	}

	articles, err := h.Svc.Trending(r.Context(), limit)
	if err != nil {
		writeError(w, err, h.Retry)
		return
	}
	respond.JSON(w, http.StatusOK, toDTOs(articles))
}
