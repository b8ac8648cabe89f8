package user

import (
	"encoding/json"
	"net/http"
	"time"

	"daily-news/internal/domain/entity"
	"daily-news/internal/handler/http/respond"
	userUC "daily-news/internal/usecase/user"
)

type profileRequest struct {
	Name     string `json:"name" example:"Jane Doe"`
	PhotoURL string `json:"photoURL"`
}

type ProfileHandler struct {
	Svc   *userUC.Service
	Retry respond.RetryAdvisor
}

// ServeHTTP プロフィール更新
// @Summary      Update profile
// @Description  Sets name and photoURL of the user registered with the email.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        email   path string         true "User email"
// @Param        profile body profileRequest true "Profile"
// @Success      200 {object} messageResponse
// @Failure      400 {object} map[string]string "invalid request body"
// @Failure      404 {object} map[string]string "User not found"
// @Failure      500 {object} map[string]string "internal server error"
// @Failure      503 {object} map[string]string "service unavailable"
// @Router       /users/{email} [patch]
func (h ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errInvalidBody)
		return
	}

	rep, err := h.Svc.UpdateProfile(r.Context(), r.PathValue("email"), entity.Profile{
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		writeError(w, err, h.Retry)
		return
	}
	writeReport(w, rep)
}

type subscriptionRequest struct {
	MembershipStatus string     `json:"membershipStatus" example:"premium"`
	MembershipTaken  *time.Time `json:"membershipTaken" example:"2026-03-01T10:00:00Z"`
}

type SubscriptionHandler struct {
	Svc   *userUC.Service
	Retry respond.RetryAdvisor
}

// ServeHTTP 会員情報更新
// @Summary      Update subscription
// @Description  Writes the membership status and the time it was taken.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        email        path string              true "User email"
// @Param        subscription body subscriptionRequest true "Membership"
// @Success      200 {object} messageResponse
// @Failure      400 {object} map[string]string "invalid request body"
// @Failure      404 {object} map[string]string "User not found"
// @Failure      500 {object} map[string]string "internal server error"
// @Failure      503 {object} map[string]string "service unavailable"
// @Router       /updatesubscription/{email} [patch]
func (h SubscriptionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req subscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errInvalidBody)
		return
	}

	rep, err := h.Svc.UpdateSubscription(r.Context(), r.PathValue("email"), userUC.SubscriptionInput{
		Status: req.MembershipStatus,
		Taken:  req.MembershipTaken,
	})
	if err != nil {
		writeError(w, err, h.Retry)
		return
	}
	writeReport(w, rep)
}

type PromoteHandler struct {
	Svc   *userUC.Service
	Retry respond.RetryAdvisor
}

// ServeHTTP 管理者昇格
// @Summary      Promote to admin
// @Description  Gives the user the admin role. There is no demotion endpoint.
// @Tags         users
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200 {object} respond.UpdateResult
// @Failure      400 {object} map[string]string "invalid user ID"
// @Failure      404 {object} map[string]string "User not found"
// @Failure      500 {object} map[string]string "internal server error"
// @Failure      503 {object} map[string]string "service unavailable"
// @Router       /users/admin/{id} [patch]
func (h PromoteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	res, err := h.Svc.PromoteToAdmin(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err, h.Retry)
		return
	}
	respond.JSON(w, http.StatusOK, respond.Updated(res))
}

type DeleteHandler struct {
	Svc   *userUC.Service
	Retry respond.RetryAdvisor
}

// ServeHTTP ユーザー削除
// @Summary      Delete user
// @Tags         users
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200 {object} respond.DeleteResult
// @Failure      400 {object} map[string]string "invalid user ID"
// @Failure      500 {object} map[string]string "internal server error"
// @Failure      503 {object} map[string]string "service unavailable"
// @Router       /users/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	res, err := h.Svc.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err, h.Retry)
		return
	}
	respond.JSON(w, http.StatusOK, respond.Deleted(res))
}
