package article

import (
	"net/http"

	"daily-news/internal/domain/entity"
	"daily-news/internal/handler/http/respond"
	artUC "daily-news/internal/usecase/article"
)

type SearchHandler struct {
	Svc   *artUC.Service
	Retry respond.RetryAdvisor
}

// ServeHTTP 記事検索
// @Summary      Search articles
// @Description  Returns approved articles matching every supplied filter.
// @Description  search is a case-insensitive title substring, publisher an exact name and
// @Description  tags a comma separated list of which at least one must match.
// @Tags         articles
// @Produce      json
// @Param        search     query  string  false  "Title substring"
// @Param        publisher  query  string  false  "Publisher name"
// @Param        tags       query  string  false  "Comma separated tags"
// @Success      200 {array}  DTO
// @Failure      500 {object} map[string]string "internal server error"
// @Failure      503 {object} map[string]string "service unavailable"
// @Router       /searcharticles [get]
func (h SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	articles, err := h.Svc.Search(r.Context(), artUC.SearchInput{
		Text:      q.Get("search"),
		Publisher: q.Get("publisher"),
		Tags:      entity.SplitTags(q.Get("tags")),
	})
	if err != nil {
		writeError(w, err, h.Retry)
		return
	}
	respond.JSON(w, http.StatusOK, toDTOs(articles))
}
