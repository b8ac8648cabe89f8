package article

import (
	"encoding/json"
	"net/http"

	"daily-news/internal/handler/http/respond"
	artUC "daily-news/internal/usecase/article"
)

type VisitHandler struct {
	Svc   *artUC.Service
	Retry respond.RetryAdvisor
}

// ServeHTTP 閲覧数加算
// @Summary      Count a visit
// @Description  Adds one to the article's visit counter.
// @Tags         articles
// @Produce      json
// @Param        id path string true "Article ID"
// @Success      200 {object} respond.UpdateResult
// @Failure      400 {object} map[string]string "invalid article ID"
// @Failure      404 {object} map[string]string "article not found"
// @Failure      500 {object} map[string]string "internal server error"
// @Failure      503 {object} map[string]string "service unavailable"
// @Router       /article/{id}/visit [patch]
func (h VisitHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	res, err := h.Svc.IncrementVisit(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err, h.Retry)
		return
	}
	respond.JSON(w, http.StatusOK, respond.Updated(res))
}

// replaceRequest is the body of PUT /articles/{id}.
type replaceRequest struct {
	Title       string   `json:"title"`
	Image       string   `json:"image"`
	Publisher   string   `json:"publisher"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
}

type ReplaceHandler struct {
	Svc   *artUC.Service
	Retry respond.RetryAdvisor
}

// ServeHTTP 記事内容更新
// @Summary      Replace article content
// @Description  Overwrites title, image, publisher, tags and description.
// @Description  When no article has the id a new pending article is created under it.
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        id      path string         true "Article ID"
// @Param        article body replaceRequest true "Content"
// @Success      200 {object} respond.UpdateResult
// @Failure      400 {object} map[string]string "invalid article ID"
// @Failure      500 {object} map[string]string "internal server error"
// @Failure      503 {object} map[string]string "service unavailable"
// @Router       /articles/{id} [put]
func (h ReplaceHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req replaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errInvalidBody)
		return
	}

	res, err := h.Svc.Replace(r.Context(), r.PathValue("id"), artUC.ReplaceInput{
		Title:       req.Title,
		Image:       req.Image,
		Publisher:   req.Publisher,
		Tags:        req.Tags,
		Description: req.Description,
	})
	if err != nil {
		writeError(w, err, h.Retry)
		return
	}
	respond.JSON(w, http.StatusOK, respond.Updated(res))
}

// statusRequest is the body of PATCH /articles/{id}. Absent fields are left untouched.
type statusRequest struct {
	Status        string `json:"status" example:"declined"`
	DeclineReason string `json:"declineReason" example:"low quality"`
	IsPremium     *bool  `json:"isPremium"`
}

type StatusHandler struct {
	Svc   *artUC.Service
	Retry respond.RetryAdvisor
}

// ServeHTTP 記事審査
// @Summary      Moderate article
// @Description  Partially updates status, decline reason and premium flag.
// @Description  declineReason is only stored together with status "declined".
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        id     path string        true "Article ID"
// @Param        update body statusRequest true "Moderation fields"
// @Success      200 {object} respond.UpdateResult
// @Failure      400 {object} map[string]string "invalid article ID"
// @Failure      404 {object} map[string]string "article not found"
// @Failure      500 {object} map[string]string "internal server error"
// @Failure      503 {object} map[string]string "service unavailable"
// @Router       /articles/{id} [patch]
func (h StatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errInvalidBody)
		return
	}

	res, err := h.Svc.UpdateStatus(r.Context(), r.PathValue("id"), artUC.StatusInput{
		Status:        req.Status,
		DeclineReason: req.DeclineReason,
		IsPremium:     req.IsPremium,
	})
	if err != nil {
		writeError(w, err, h.Retry)
		return
	}
	respond.JSON(w, http.StatusOK, respond.Updated(res))
}
