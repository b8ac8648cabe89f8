package user_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daily-news/internal/common/pagination"
	"daily-news/internal/domain/entity"
	"daily-news/internal/handler/http/auth"
	"daily-news/internal/handler/http/user"
	"daily-news/internal/infra/adapter/persistence/memory"
	"daily-news/internal/repository"
	authservice "daily-news/internal/service/auth"
	userUC "daily-news/internal/usecase/user"
)

const testSecret = "k3Jx9vQ2mL7pR4tW8yZ1bN6cF0hD5gS2"

type fixture struct {
	h      http.Handler
	repo   repository.UserRepository
	tokens *authservice.TokenService
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	tokens, err := authservice.NewTokenService(testSecret)
	require.NoError(t, err)

	repo := memory.NewStore().Users()
	svc := &userUC.Service{Repo: repo}
	mux := http.NewServeMux()
	user.Register(mux, svc, pagination.UsersConfig(), nil, user.Guards{
		Authenticated: auth.RequireAuthenticated(tokens),
		Admin:         auth.RequireAdmin(svc, nil),
	})
	return fixture{h: mux, repo: repo, tokens: tokens}
}

func (f fixture) seed(t *testing.T, u entity.User) string {
	t.Helper()
	id, err := f.repo.Create(context.Background(), &u)
	require.NoError(t, err)
	return id
}

func (f fixture) do(t *testing.T, method, target, body, bearerFor string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	if bearerFor != "" {
		tok, err := f.tokens.Issue(authservice.Claims{Email: bearerFor}, time.Hour)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	rr := httptest.NewRecorder()
	f.h.ServeHTTP(rr, req)
	return rr
}

func TestCreate_Idempotent(t *testing.T) {
	f := newFixture(t)

	rr := f.do(t, http.MethodPost, "/users", `{"email":"a@x.com","name":"A","role":"admin"}`, "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var first struct {
		InsertedID string `json:"insertedId"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &first))
	require.Len(t, first.InsertedID, entity.IDLength)

	rr = f.do(t, http.MethodPost, "/users", `{"email":"a@x.com","name":"Other"}`, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"user already exists","insertedId":null}`, rr.Body.String())

	rr = f.do(t, http.MethodGet, "/users/"+first.InsertedID, "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"_id":"`+first.InsertedID+`","email":"a@x.com","name":"A","photoURL":"",
		"role":null,"membershipStatus":null,"membershipTaken":null}`, rr.Body.String())
}

func TestCreate_InvalidEmail(t *testing.T) {
	f := newFixture(t)
	rr := f.do(t, http.MethodPost, "/users", `{"email":"not-an-email"}`, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid format")
}

func TestAdminFlag_SelfOnly(t *testing.T) {
	f := newFixture(t)
	f.seed(t, entity.User{Email: "a@x.com"})

	rr := f.do(t, http.MethodGet, "/users/admin/a@x.com", "", "a@x.com")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"admin":false}`, rr.Body.String())

	rr = f.do(t, http.MethodGet, "/users/admin/b@x.com", "", "a@x.com")
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.JSONEq(t, `{"message":"forbidden access"}`, rr.Body.String())

	rr = f.do(t, http.MethodGet, "/users/admin/a@x.com", "", "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestSelfOnly_CaseVariantIsAnotherUser(t *testing.T) {
	f := newFixture(t)
	f.seed(t, entity.User{Email: "a@x.com"})
	f.seed(t, entity.User{Email: "A@X.com", Role: entity.RoleAdmin, MembershipStatus: entity.MembershipPremium})

	for _, target := range []string{"/users/admin/A@X.com", "/users/membership/A@X.com"} {
		rr := f.do(t, http.MethodGet, target, "", "a@x.com")
		assert.Equal(t, http.StatusForbidden, rr.Code, target)
		assert.JSONEq(t, `{"message":"forbidden access"}`, rr.Body.String())
	}

	rr := f.do(t, http.MethodGet, "/users/admin/A@X.com", "", "A@X.com")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"admin":true}`, rr.Body.String())
}

func TestMembershipFlag(t *testing.T) {
	f := newFixture(t)
	f.seed(t, entity.User{Email: "p@x.com", MembershipStatus: entity.MembershipPremium})

	rr := f.do(t, http.MethodGet, "/users/membership/p@x.com", "", "p@x.com")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"isPremiumMember":true}`, rr.Body.String())

	rr = f.do(t, http.MethodGet, "/users/membership/nobody@x.com", "", "nobody@x.com")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"isPremiumMember":false}`, rr.Body.String())
}

func TestAdminUsers_RequiresAdmin(t *testing.T) {
	f := newFixture(t)
	f.seed(t, entity.User{Email: "boss@x.com", Role: entity.RoleAdmin})
	for _, e := range []string{"a@x.com", "b@x.com", "c@x.com", "d@x.com", "e@x.com", "f@x.com"} {
		f.seed(t, entity.User{Email: e})
	}

	rr := f.do(t, http.MethodGet, "/adminusers", "", "a@x.com")
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = f.do(t, http.MethodGet, "/adminusers", "", "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = f.do(t, http.MethodGet, "/adminusers", "", "boss@x.com")
	require.Equal(t, http.StatusOK, rr.Code)
	var page user.PageDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &page))
	assert.Equal(t, int64(7), page.TotalCount)
	assert.Len(t, page.Users, 5)

	rr = f.do(t, http.MethodGet, "/adminusers?page=2&limit=5", "", "boss@x.com")
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &page))
	assert.Len(t, page.Users, 2)

	rr = f.do(t, http.MethodGet, "/adminusers?limit=0", "", "boss@x.com")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpdateProfile(t *testing.T) {
	f := newFixture(t)
	f.seed(t, entity.User{Email: "a@x.com", Name: "A"})

	rr := f.do(t, http.MethodPatch, "/users/a@x.com", `{"name":"Alice","photoURL":"p.png"}`, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"User updated successfully","modifiedCount":1}`, rr.Body.String())

	rr = f.do(t, http.MethodPatch, "/users/a@x.com", `{"name":"Alice","photoURL":"p.png"}`, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"No changes made to the user profile"}`, rr.Body.String())

	rr = f.do(t, http.MethodPatch, "/users/nobody@x.com", `{"name":"N"}`, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"message":"User not found"}`, rr.Body.String())
}

func TestUpdateSubscription(t *testing.T) {
	f := newFixture(t)
	f.seed(t, entity.User{Email: "a@x.com"})

	rr := f.do(t, http.MethodPatch, "/updatesubscription/a@x.com",
		`{"membershipStatus":"premium","membershipTaken":"2026-03-01T10:00:00Z"}`, "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.JSONEq(t, `{"message":"User updated successfully","modifiedCount":1}`, rr.Body.String())

	rr = f.do(t, http.MethodPatch, "/updatesubscription/a@x.com", `{"membershipStatus":"gold"}`, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	u, err := f.repo.GetByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.True(t, u.IsPremiumMember())
	require.NotNil(t, u.MembershipTaken)
	assert.Equal(t, 2026, u.MembershipTaken.Year())
}

func TestPromoteAndDelete(t *testing.T) {
	f := newFixture(t)
	id := f.seed(t, entity.User{Email: "a@x.com"})

	rr := f.do(t, http.MethodPatch, "/users/admin/"+id, "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"acknowledged":true,"matchedCount":1,"modifiedCount":1,"upsertedId":null,"upsertedCount":0}`, rr.Body.String())

	rr = f.do(t, http.MethodGet, "/users/admin/a@x.com", "", "a@x.com")
	assert.JSONEq(t, `{"admin":true}`, rr.Body.String())

	rr = f.do(t, http.MethodPatch, "/users/admin/"+entity.NewID(), "", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = f.do(t, http.MethodDelete, "/users/"+id, "", "")
	assert.JSONEq(t, `{"acknowledged":true,"deletedCount":1}`, rr.Body.String())

	rr = f.do(t, http.MethodGet, "/users/"+id, "", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = f.do(t, http.MethodGet, "/users/xyz", "", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
