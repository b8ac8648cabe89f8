package user

import (
	"encoding/json"
	"net/http"

	"daily-news/internal/handler/http/respond"
	userUC "daily-news/internal/usecase/user"
)

// createRequest is the body of POST /users. Role and membership are not accepted.
type createRequest struct {
	Email    string `json:"email" example:"reader@example.com"`
	Name     string `json:"name" example:"Jane Doe"`
	PhotoURL string `json:"photoURL"`
}

type CreateHandler struct {
	Svc   *userUC.Service
	Retry respond.RetryAdvisor
}

// ServeHTTP ユーザー登録
// @Summary      Register user
// @Description  Creates the user unless the email is already registered.
// @Description  A repeated signup answers 200 with insertedId null.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user body createRequest true "User"
// @Success      200 {object} respond.InsertResult
// @Failure      400 {object} map[string]string "invalid request body"
// @Failure      500 {object} map[string]string "internal server error"
// @Failure      503 {object} map[string]string "service unavailable"
// @Router       /users [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errInvalidBody)
		return
	}

	res, err := h.Svc.CreateIfAbsent(r.Context(), userUC.CreateInput{
		Email:    req.Email,
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		writeError(w, err, h.Retry)
		return
	}
	if !res.Created {
		respond.JSON(w, http.StatusOK, existsResponse{Message: msgUserExists})
		return
	}
	respond.JSON(w, http.StatusOK, respond.Inserted(res.ID))
}
