package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gyeongmo89/samsip/internal/apierror"
	"github.com/gyeongmo89/samsip/internal/dto"
	"github.com/gyeongmo89/samsip/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const statsCacheKey = "stats:orders"

// StatsHandler serves the dashboard aggregates (monthly totals, per-supplier
// totals). Results are cached in redis with a short TTL; the cache is a pure
// read-through — a miss or a redis outage just means hitting postgres.
type StatsHandler struct {
	repo repository.OrderRepository
	rdb  *redis.Client
	ttl  time.Duration
}

func NewStatsHandler(repo repository.OrderRepository, rdb *redis.Client, ttl time.Duration) *StatsHandler {
	return &StatsHandler{repo: repo, rdb: rdb, ttl: ttl}
}

func (h *StatsHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	if h.rdb != nil {
		if cached, err := h.rdb.Get(ctx, statsCacheKey).Bytes(); err == nil {
			var resp dto.StatsResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				c.JSON(http.StatusOK, resp)
				return
			}
		}
	}

	byMonth, err := h.repo.StatsByMonth(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to compute stats"))
		return
	}
	bySupplier, err := h.repo.StatsBySupplier(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to compute stats"))
		return
	}

	resp := dto.StatsResponse{ByMonth: byMonth, BySupplier: bySupplier}

	// Populate cache — best effort, ignore errors
	if h.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = h.rdb.Set(context.Background(), statsCacheKey, b, h.ttl).Err()
		}
	}

	c.JSON(http.StatusOK, resp)
}
