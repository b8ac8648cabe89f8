package article

import (
	"encoding/json"
	"net/http"
	"time"

	"daily-news/internal/handler/http/respond"
	artUC "daily-news/internal/usecase/article"
)

// createRequest is the body of POST /addArticles.
type createRequest struct {
	Title       string     `json:"title" example:"Parliament passes the budget"`
	Image       string     `json:"image"`
	Publisher   string     `json:"publisher" example:"Daily Star"`
	Description string     `json:"description"`
	Tags        []string   `json:"tags" example:"politics,economy"`
	AuthorEmail string     `json:"authorEmail" example:"author@example.com"`
	AuthorName  string     `json:"authorName"`
	AuthorPhoto string     `json:"authorPhoto"`
	PostedDate  *time.Time `json:"postedDate"`
	IsPremium   bool       `json:"isPremium"`
}

type CreateHandler struct {
	Svc   *artUC.Service
	Retry respond.RetryAdvisor
}

// ServeHTTP 記事投稿
// @Summary      Submit article
// @Description  Stores a new article. The visit counter starts at zero and every new article starts pending.
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        article body createRequest true "Article"
// @Success      200 {object} respond.InsertResult
// @Failure      400 {object} map[string]string "invalid request body"
// @Failure      500 {object} map[string]string "internal server error"
// @Failure      503 {object} map[string]string "service unavailable"
// @Router       /addArticles [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errInvalidBody)
		return
	}

	id, err := h.Svc.Create(r.Context(), artUC.CreateInput{
		Title:       req.Title,
		Image:       req.Image,
		Publisher:   req.Publisher,
		Description: req.Description,
		Tags:        req.Tags,
		AuthorEmail: req.AuthorEmail,
		AuthorName:  req.AuthorName,
		AuthorPhoto: req.AuthorPhoto,
		PostedDate:  req.PostedDate,
		IsPremium:   req.IsPremium,
	})
	if err != nil {
		writeError(w, err, h.Retry)
		return
	}
	respond.JSON(w, http.StatusOK, respond.Inserted(id))
}
