package user

import (
	"net/http"

	"daily-news/internal/common/pagination"
	"daily-news/internal/handler/http/respond"
	"daily-news/internal/observability/logging"
	userUC "daily-news/internal/usecase/user"
)

type ListHandler struct {
	Svc   *userUC.Service
	Retry respond.RetryAdvisor
}

// ServeHTTP ユーザー一覧取得
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200 {array}  DTO
// @Failure      500 {object} map[string]string "internal server error"
// @Failure      503 {object} map[string]string "service unavailable"
// @Router       /users [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	users, err := h.Svc.List(r.Context())
	if err != nil {
		writeError(w, err, h.Retry)
		return
	}
	respond.JSON(w, http.StatusOK, toDTOs(users))
}

type AdminListHandler struct {
	Svc           *userUC.Service
	PaginationCfg pagination.Config
	Retry         respond.RetryAdvisor
}

// ServeHTTP ユーザー一覧取得（管理画面）
// @Summary      List users page
// @Description  Returns one page of users together with the total user count. Admin only.
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Param        page   query    int  false  "Page number (1-based)" default(1) minimum(1)
// @Param        limit  query    int  false  "Items per page" default(5) minimum(1) maximum(100)
// @Success      200 {object} PageDTO
// @Failure      400 {object} map[string]string "invalid pagination parameters"
// @Failure      401 {object} map[string]string "unauthorized access"
// @Failure      403 {object} map[string]string "forbidden access"
// @Failure      500 {object} map[string]string "internal server error"
// @Failure      503 {object} map[string]string "service unavailable"
// @Router       /adminusers [get]
func (h AdminListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		pagination.RecordError("users", "validation")
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	page, err := h.Svc.ListPaged(ctx, params)
	if err != nil {
		logging.FromContext(ctx).Error("failed to list users",
			"error", respond.SanitizeError(err),
			"page", params.Page,
			"limit", params.Limit)
		pagination.RecordError("users", "store")
		writeError(w, err, h.Retry)
		return
	}

	pagination.RecordRequest("users", http.StatusOK, params.Page)
	pagination.UpdateCollectionSize("users", page.Total)
	respond.JSON(w, http.StatusOK, PageDTO{
		Users:      toDTOs(page.Items),
		TotalCount: page.Total,
	})
}

type GetHandler struct {
	Svc   *userUC.Service
	Retry respond.RetryAdvisor
}

// ServeHTTP ユーザー取得
// @Summary      Get user
// @Tags         users
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200 {object} DTO
// @Failure      400 {object} map[string]string "invalid user ID"
// @Failure      404 {object} map[string]string "User not found"
// @Failure      500 {object} map[string]string "internal server error"
// @Failure      503 {object} map[string]string "service unavailable"
// @Router       /users/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	u, err := h.Svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err, h.Retry)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(u))
}
