package article

import (
	"net/http"
	"time"

	"daily-news/internal/common/pagination"
	"daily-news/internal/handler/http/respond"
	"daily-news/internal/observability/logging"
	artUC "daily-news/internal/usecase/article"
)

type ListHandler struct {
	Svc   *artUC.Service
	Retry respond.RetryAdvisor
}

// ServeHTTP 記事一覧取得
// @Summary      List articles
// @Description  Returns every article regardless of status, in store order.
// @Tags         articles
// @Produce      json
// @Success      200 {array}  DTO
// @Failure      500 {object} map[string]string "internal server error"
// @Failure      503 {object} map[string]string "service unavailable"
// @Router       /articles [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	articles, err := h.Svc.List(r.Context())
	if err != nil {
		writeError(w, err, h.Retry)
		return
	}
	respond.JSON(w, http.StatusOK, toDTOs(articles))
}

type AdminListHandler struct {
	Svc           *artUC.Service
	PaginationCfg pagination.Config
	Retry         respond.RetryAdvisor
}

// ServeHTTP 記事一覧取得（管理画面）
// @Summary      List articles page
// @Description  Returns one page of articles together with the total article count.
// @Tags         articles
// @Security     BearerAuth
// @Produce      json
// @Param        page   query    int  false  "Page number (1-based)" default(1) minimum(1)
// @Param        limit  query    int  false  "Items per page" default(10) minimum(1) maximum(100)
// @Success      200 {object} PageDTO
// @Failure      400 {object} map[string]string "invalid pagination parameters"
// @Failure      401 {object} map[string]string "unauthorized access"
// @Failure      403 {object} map[string]string "forbidden access"
// @Failure      500 {object} map[string]string "internal server error"
// @Failure      503 {object} map[string]string "service unavailable"
// @Router       /adminarticles [get]
func (h AdminListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	logger := logging.FromContext(ctx)

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		logger.Warn("invalid pagination parameters", "error", err.Error())
		pagination.RecordError("articles", "validation")
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	page, err := h.Svc.ListPaged(ctx, params)
	if err != nil {
		logger.Error("failed to list articles",
			"error", respond.SanitizeError(err),
			"page", params.Page,
			"limit", params.Limit)
		pagination.RecordError("articles", "store")
		writeError(w, err, h.Retry)
		return
	}

	pagination.RecordRequest("articles", http.StatusOK, params.Page)
	pagination.UpdateCollectionSize("articles", page.Total)
	logger.Info("paginated article list",
		"page", params.Page,
		"limit", params.Limit,
		"returned_count", len(page.Items),
		"total", page.Total,
		"duration_ms", time.Since(start).Milliseconds())

	respond.JSON(w, http.StatusOK, PageDTO{
		Articles:   toDTOs(page.Items),
		TotalCount: page.Total,
	})
}

type MyArticlesHandler struct {
	Svc   *artUC.Service
	Retry respond.RetryAdvisor
}

// ServeHTTP 投稿者別記事一覧
// @Summary      List articles by author
// @Description  Returns the articles whose author email matches, or every article when email is omitted.
// @Tags         articles
// @Produce      json
// @Param        email  query    string  false  "Author email"
// @Success      200 {array}  DTO
// @Failure      500 {object} map[string]string "internal server error"
// @Failure      503 {object} map[string]string "service unavailable"
// @Router       /myarticles [get]
func (h MyArticlesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	articles, err := h.Svc.ListByAuthor(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		writeError(w, err, h.Retry)
		return
	}
	respond.JSON(w, http.StatusOK, toDTOs(articles))
}
