package user

import (
	"net/http"

	"daily-news/internal/common/pagination"
	"daily-news/internal/handler/http/auth"
	"daily-news/internal/handler/http/respond"
	userUC "daily-news/internal/usecase/user"
)

// Guards are the access control middlewares user routes depend on.
type Guards struct {
	// Authenticated verifies the caller's token.
	Authenticated func(http.Handler) http.Handler
	// Admin must run after Authenticated.
	Admin func(http.Handler) http.Handler
}

// Register registers all user-related HTTP handlers with the given mux.
// The flag endpoints only answer for the caller's own email.
func Register(mux *http.ServeMux, svc *userUC.Service, paginationCfg pagination.Config,
	retry respond.RetryAdvisor, g Guards) {
	self := func(h http.Handler) http.Handler {
		return g.Authenticated(auth.RequireSelf("email")(h))
	}

	mux.Handle("GET    /users", ListHandler{svc, retry})
	mux.Handle("GET    /adminusers", g.Authenticated(g.Admin(AdminListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Retry:         retry,
	})))
	mux.Handle("GET    /users/{id}", GetHandler{svc, retry})
	mux.Handle("POST   /users", CreateHandler{svc, retry})
	mux.Handle("GET    /users/admin/{email}", self(AdminFlagHandler{svc, retry}))
	mux.Handle("GET    /users/membership/{email}", self(MembershipFlagHandler{svc, retry}))
	mux.Handle("PATCH  /users/{email}", ProfileHandler{svc, retry})
	mux.Handle("DELETE /users/{id}", DeleteHandler{svc, retry})
	mux.Handle("PATCH  /updatesubscription/{email}", SubscriptionHandler{svc, retry})
	mux.Handle("PATCH  /users/admin/{id}", PromoteHandler{svc, retry})
}
