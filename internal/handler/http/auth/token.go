package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"daily-news/internal/handler/http/respond"
	"daily-news/internal/observability/logging"
	authservice "daily-news/internal/service/auth"
)

// TokenIssuer signs claims into a session token.
type TokenIssuer interface {
	Issue(claims authservice.Claims, ttl time.Duration) (string, error)
}

type tokenRequest struct {
	Email string `json:"email" example:"reader@example.com"`
}

type tokenResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

type sessionResponse struct {
	Success bool `json:"success" example:"true"`
}

// TokenHandler issues session tokens for the email in the request body.
// The caller's identity is taken at face value; guards re-check it against the store.
type TokenHandler struct {
	Issuer     TokenIssuer
	AccessTTL  time.Duration
	SessionTTL time.Duration
	// Production marks the session cookie Secure with SameSite=None so that the
	// hosted client on another origin can send it.
	Production bool
}

// ServeHTTP godoc
// @Summary      Issue a session token
// @Description  Signs the posted email into a JWT. With session=cookie the token is set as an HttpOnly cookie instead of returned in the body.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        session  query  string        false  "set to cookie for a cookie session"
// @Param        request  body   tokenRequest  true   "claims"
// @Success      200 {object} tokenResponse    "bearer token, or {success:true} with session=cookie"
// @Failure      400 {object} map[string]string
// @Failure      429 {object} map[string]string
// @Header       429 {integer} Retry-After "seconds until the client should retry"
// @Failure      500 {object} map[string]string
// @Router       /jwt [post]
func (h TokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContext(r.Context())
	delivery := "bearer"
	if r.URL.Query().Get("session") == "cookie" {
		delivery = "cookie"
	}

	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RecordTokenIssued(delivery, "invalid_request")
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}
	email := strings.TrimSpace(req.Email)
	if email == "" {
		RecordTokenIssued(delivery, "invalid_request")
		respond.SafeError(w, http.StatusBadRequest, errors.New("email is required"))
		return
	}

	ttl := h.AccessTTL
	if ttl <= 0 {
		ttl = authservice.DefaultAccessTokenTTL
	}
	if delivery == "cookie" {
		ttl = h.SessionTTL
		if ttl <= 0 {
			ttl = authservice.DefaultSessionTokenTTL
		}
	}

	token, err := h.Issuer.Issue(authservice.Claims{Email: email}, ttl)
	if err != nil {
		RecordTokenIssued(delivery, "failure")
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	RecordTokenIssued(delivery, "success")
	logger.Info("token issued",
		slog.String("email", email),
		slog.String("delivery", delivery),
		slog.Duration("ttl", ttl))

	if delivery == "bearer" {
		respond.JSON(w, http.StatusOK, tokenResponse{Token: token})
		return
	}

	http.SetCookie(w, h.sessionCookie(token, ttl))
	respond.JSON(w, http.StatusOK, sessionResponse{Success: true})
}

func (h TokenHandler) sessionCookie(token string, ttl time.Duration) *http.Cookie {
	c := &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
	if h.Production {
		c.Secure = true
		c.SameSite = http.SameSiteNoneMode
	}
	return c
}
