package article

import (
	"net/http"

	"daily-news/internal/common/pagination"
	"daily-news/internal/handler/http/respond"
	artUC "daily-news/internal/usecase/article"
)

// Register registers all article-related HTTP handlers with the given mux.
// adminOnly wraps the admin listing; it must authenticate the caller and check the admin role.
func Register(mux *http.ServeMux, svc *artUC.Service, paginationCfg pagination.Config,
	retry respond.RetryAdvisor, adminOnly func(http.Handler) http.Handler) {
	mux.Handle("GET    /articles", ListHandler{svc, retry})
	mux.Handle("GET    /adminarticles", adminOnly(AdminListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Retry:         retry,
	}))
	mux.Handle("GET    /myarticles", MyArticlesHandler{svc, retry})
	mux.Handle("GET    /articles/{id}", GetHandler{svc, retry})
	mux.Handle("GET    /trending-articles", TrendingHandler{Svc: svc, MaxLimit: paginationCfg.MaxLimit, Retry: retry})
	mux.Handle("GET    /searcharticles", SearchHandler{svc, retry})

	mux.Handle("POST   /addArticles", CreateHandler{svc, retry})
	mux.Handle("PATCH  /article/{id}/visit", VisitHandler{svc, retry})
	mux.Handle("PUT    /articles/{id}", ReplaceHandler{svc, retry})
	mux.Handle("PATCH  /articles/{id}", StatusHandler{svc, retry})
	mux.Handle("DELETE /articles/{id}", DeleteHandler{svc, retry})
}
