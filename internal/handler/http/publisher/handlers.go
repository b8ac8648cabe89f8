// Package publisher provides HTTP handlers for the publisher catalog.
package publisher

import (
	"encoding/json"
	"errors"
	"net/http"

	"daily-news/internal/domain/entity"
	"daily-news/internal/handler/http/respond"
	pubUC "daily-news/internal/usecase/publisher"
)

// DTO represents the JSON structure for publisher data transfer.
type DTO struct {
	ID   string `json:"_id" example:"65a1f0c2e4b0a1b2c3d4e5f6"`
	Name string `json:"name" example:"Daily Star"`
	Logo string `json:"logo" example:"https://i.ibb.co/star.png"`
}

type createRequest struct {
	Name string `json:"name" example:"Daily Star"`
	Logo string `json:"logo"`
}

type ListHandler struct {
	Svc   *pubUC.Service
	Retry respond.RetryAdvisor
}

// ServeHTTP 出版社一覧取得
// @Summary      List publishers
// @Tags         publishers
// @Produce      json
// @Success      200 {array}  DTO
// @Failure      500 {object} map[string]string "internal server error"
// @Failure      503 {object} map[string]string "service unavailable"
// @Router       /publishers [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	pubs, err := h.Svc.List(r.Context())
	if err != nil {
		respond.StoreFailure(w, err, h.Retry)
		return
	}
	out := make([]DTO, 0, len(pubs))
	for _, p := range pubs {
		out = append(out, DTO{ID: p.ID, Name: p.Name, Logo: p.Logo})
	}
	respond.JSON(w, http.StatusOK, out)
}

type CreateHandler struct {
	Svc   *pubUC.Service
	Retry respond.RetryAdvisor
}

// ServeHTTP 出版社追加
// @Summary      Add publisher
// @Description  Admin only.
// @Tags         publishers
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        publisher body createRequest true "Publisher"
// @Success      200 {object} respond.InsertResult
// @Failure      400 {object} map[string]string "invalid request body"
// @Failure      401 {object} map[string]string "unauthorized access"
// @Failure      403 {object} map[string]string "forbidden access"
// @Failure      500 {object} map[string]string "internal server error"
// @Failure      503 {object} map[string]string "service unavailable"
// @Router       /addpublisher [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	id, err := h.Svc.Create(r.Context(), pubUC.CreateInput{Name: req.Name, Logo: req.Logo})
	if errors.Is(err, entity.ErrInvalidInput) {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if err != nil {
		respond.StoreFailure(w, err, h.Retry)
		return
	}
	respond.JSON(w, http.StatusOK, respond.Inserted(id))
}

// Register registers the publisher routes. adminOnly guards additions.
func Register(mux *http.ServeMux, svc *pubUC.Service, retry respond.RetryAdvisor, adminOnly func(http.Handler) http.Handler) {
	mux.Handle("GET    /publishers", ListHandler{svc, retry})
	mux.Handle("POST   /addpublisher", adminOnly(CreateHandler{svc, retry}))
}
