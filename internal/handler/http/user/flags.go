package user

import (
	"net/http"

	"daily-news/internal/handler/http/respond"
	userUC "daily-news/internal/usecase/user"
)

type AdminFlagHandler struct {
	Svc   *userUC.Service
	Retry respond.RetryAdvisor
}

// ServeHTTP 管理者判定
// @Summary      Admin flag
// @Description  Reports whether the caller holds the admin role. Callers may only ask about themselves.
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Param        email path string true "Caller email"
// @Success      200 {object} adminResponse
// @Failure      401 {object} map[string]string "unauthorized access"
// @Failure      403 {object} map[string]string "forbidden access"
// @Failure      500 {object} map[string]string "internal server error"
// @Failure      503 {object} map[string]string "service unavailable"
// @Router       /users/admin/{email} [get]
func (h AdminFlagHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	admin, err := h.Svc.IsAdmin(r.Context(), r.PathValue("email"))
	if err != nil {
		writeError(w, err, h.Retry)
		return
	}
	respond.JSON(w, http.StatusOK, adminResponse{Admin: admin})
}

type MembershipFlagHandler struct {
	Svc   *userUC.Service
	Retry respond.RetryAdvisor
}

// ServeHTTP プレミアム会員判定
// @Summary      Premium flag
// @Description  Reports whether the caller has a premium membership. Callers may only ask about themselves.
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Param        email path string true "Caller email"
// @Success      200 {object} membershipResponse
// @Failure      401 {object} map[string]string "unauthorized access"
// @Failure      403 {object} map[string]string "forbidden access"
// @Failure      500 {object} map[string]string "internal server error"
// @Failure      503 {object} map[string]string "service unavailable"
// @Router       /users/membership/{email} [get]
func (h MembershipFlagHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	premium, err := h.Svc.IsPremiumMember(r.Context(), r.PathValue("email"))
	if err != nil {
		writeError(w, err, h.Retry)
		return
	}
	respond.JSON(w, http.StatusOK, membershipResponse{IsPremiumMember: premium})
}
