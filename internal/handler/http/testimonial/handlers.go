// Package testimonial provides HTTP handlers for reader testimonials.
package testimonial

import (
	"encoding/json"
	"errors"
	"net/http"

	"daily-news/internal/domain/entity"
	"daily-news/internal/handler/http/respond"
	tesUC "daily-news/internal/usecase/testimonial"
)

// DTO represents the JSON structure for testimonial data transfer.
type DTO struct {
	ID   string `json:"_id" example:"65a1f0c2e4b0a1b2c3d4e5f6"`
	Name string `json:"name" example:"Jane Doe"`
	Text string `json:"text" example:"My go-to morning read."`
}

type createRequest struct {
	Name string `json:"name" example:"Jane Doe"`
	Text string `json:"text" example:"My go-to morning read."`
}

type ListHandler struct {
	Svc   *tesUC.Service
	Retry respond.RetryAdvisor
}

// ServeHTTP 推薦文一覧取得
// @Summary      List testimonials
// @Tags         testimonials
// @Produce      json
// @Success      200 {array}  DTO
// @Failure      500 {object} map[string]string "internal server error"
// @Failure      503 {object} map[string]string "service unavailable"
// @Router       /testimonials [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	items, err := h.Svc.List(r.Context())
	if err != nil {
		respond.StoreFailure(w, err, h.Retry)
		return
	}
	out := make([]DTO, 0, len(items))
	for _, t := range items {
		out = append(out, DTO{ID: t.ID, Name: t.Name, Text: t.Text})
	}
	respond.JSON(w, http.StatusOK, out)
}

type CreateHandler struct {
	Svc   *tesUC.Service
	Retry respond.RetryAdvisor
}

// ServeHTTP 推薦文投稿
// @Summary      Add testimonial
// @Tags         testimonials
// @Accept       json
// @Produce      json
// @Param        testimonial body createRequest true "Testimonial"
// @Success      200 {object} respond.InsertResult
// @Failure      400 {object} map[string]string "invalid request body"
// @Failure      500 {object} map[string]string "internal server error"
// @Failure      503 {object} map[string]string "service unavailable"
// @Router       /testimonials [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	id, err := h.Svc.Create(r.Context(), tesUC.CreateInput{Name: req.Name, Text: req.Text})
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

// Register registers the testimonial routes.
func Register(mux *http.ServeMux, svc *tesUC.Service, retry respond.RetryAdvisor) {
	mux.Handle("GET    /testimonials", ListHandler{svc, retry})
	mux.Handle("POST   /testimonials", CreateHandler{svc, retry})
}
