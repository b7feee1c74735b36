package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"trending-ingest/domain/model"
	"trending-ingest/infrastructure/utils"
	httpHandler "trending-ingest/interfaces/http"
	"trending-ingest/server"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUsecase struct {
	calls int
}

func (s *stubUsecase) Run(context.Context) model.InvocationResult {
	s.calls++
	return model.NewSuccessResult(usecaseMessage, "", "")
}

const (
	secret         = "router-secret"
	usecaseMessage = "No videos found to process."
)

func TestInitiateRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	uc := &stubUsecase{}
	router := server.InitiateRouter(httpHandler.NewTrendingHandler(uc), secret)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/trending/run", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 0, uc.calls)

	token, err := utils.GenerateTriggerToken("scheduler", time.Minute, secret)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/trending/run", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"No videos found to process."}`, w.Body.String())
	assert.Equal(t, 1, uc.calls)
}
