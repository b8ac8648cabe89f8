package testimonial_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daily-news/internal/domain/entity"
	"daily-news/internal/handler/http/testimonial"
	"daily-news/internal/infra/adapter/persistence/memory"
	tesUC "daily-news/internal/usecase/testimonial"
)

type brokenRepo struct{}

func (brokenRepo) List(context.Context) ([]*entity.Testimonial, error) {
	return nil, errors.New("connection reset by mongodb://app:s3cret@db:27017")
}

func (brokenRepo) Create(context.Context, *entity.Testimonial) (string, error) {
	return "", errors.New("connection reset")
}

func TestCreateThenList(t *testing.T) {
	mux := http.NewServeMux()
	testimonial.Register(mux, &tesUC.Service{Repo: memory.NewStore().Testimonials()}, nil)

	req := httptest.NewRequest(http.MethodPost, "/testimonials", strings.NewReader(`{"name":"Jane","text":"Great read"}`))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	req = httptest.NewRequest(http.MethodPost, "/testimonials", strings.NewReader(`{"name":"Jane","text":"  "}`))
	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "is required")

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/testimonials", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"text":"Great read"`)
}

func TestList_StoreError(t *testing.T) {
	mux := http.NewServeMux()
	testimonial.Register(mux, &tesUC.Service{Repo: brokenRepo{}}, nil)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/testimonials", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"message":"internal server error"}`, rr.Body.String())
	assert.NotContains(t, rr.Body.String(), "s3cret")
}
