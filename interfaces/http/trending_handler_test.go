package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"trending-ingest/domain/model"
	httpHandler "trending-ingest/interfaces/http"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockTrendingUsecase struct {
	mock.Mock
}

func (m *MockTrendingUsecase) Run(ctx context.Context) model.InvocationResult {
	args := m.Called(ctx)
	return args.Get(0).(model.InvocationResult)
}

func serve(handler httpHandler.ITrendingHandler, method, path string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/healthz", handler.Healthz)
	router.POST("/run", handler.Run)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestTrendingHandler_Run_Success(t *testing.T) {
	uc := new(MockTrendingUsecase)
	uc.On("Run", mock.Anything).
		Return(model.NewSuccessResult("saved", "archive-bucket", "raw-data/k.json")).
		Once()

	w := serve(httpHandler.NewTrendingHandler(uc), http.MethodPost, "/run")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"saved","bucket":"archive-bucket","key":"raw-data/k.json"}`, w.Body.String())
	uc.AssertExpectations(t)
}

func TestTrendingHandler_Run_Failure(t *testing.T) {
	uc := new(MockTrendingUsecase)
	uc.On("Run", mock.Anything).
		Return(model.NewFailureResult(model.NewStageError(model.StageSearch, model.ErrUpstreamRequest, nil))).
		Once()

	w := serve(httpHandler.NewTrendingHandler(uc), http.MethodPost, "/run")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"search: upstream request failed"}`, w.Body.String())
}

func TestTrendingHandler_Healthz(t *testing.T) {
	uc := new(MockTrendingUsecase)

	w := serve(httpHandler.NewTrendingHandler(uc), http.MethodGet, "/healthz")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	uc.AssertNotCalled(t, "Run", mock.Anything)
}
