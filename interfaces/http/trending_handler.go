package http

import (
	"net/http"

	"trending-ingest/infrastructure/logger"
	"trending-ingest/interfaces/middleware"
	"trending-ingest/usecase"

	"github.com/gin-gonic/gin"
)

type ITrendingHandler interface {
	Run(c *gin.Context)
	Healthz(c *gin.Context)
}

type TrendingHandler struct {
	TrendingUsecase usecase.ITrendingUsecase
}

func NewTrendingHandler(trendingUsecase usecase.ITrendingUsecase) ITrendingHandler {
	return &TrendingHandler{TrendingUsecase: trendingUsecase}
}

// Run performs one ingestion and mirrors its result status code.
func (h *TrendingHandler) Run(c *gin.Context) {
	logger.GetLogger().WithField("subject", c.GetString(middleware.ContextSubject)).Info("Trending run triggered over HTTP")
	result := h.TrendingUsecase.Run(c.Request.Context())
	c.JSON(result.StatusCode, result.Body)
}

// Healthz returns OK for health checks
func (h *TrendingHandler) Healthz(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
