package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/mealfolio/backend/config"
	"github.com/mealfolio/backend/internal/logger"
)

// Client talks to the external recipe provider's search API.
type Client struct {
	http     *resty.Client
	appID    string
	appKey   string
	cache    *redis.Client
	cacheTTL time.Duration
}

// NewClient creates a provider client. The cache client is optional; pass nil
// to disable response caching.
func NewClient(cfg *config.Config, cache *redis.Client) *Client {
	client := resty.New().
		SetBaseURL(cfg.ProviderBaseURL).
		SetTimeout(cfg.ProviderTimeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(3).
		SetRetryWaitTime(100 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second)

	client.AddRetryCondition(retryCondition)

	return &Client{
		http:     client,
		appID:    cfg.ProviderAppID,
		appKey:   cfg.ProviderAppKey,
		cache:    cache,
		cacheTTL: cfg.ProviderCacheTTL,
	}
}

// retryCondition determines if a request should be retried
func retryCondition(r *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	if r == nil {
		return false
	}
	code := r.StatusCode()
	return code >= 500 || code == 429 || code == 408
}

// Search queries the provider for public recipes matching every diet and
// health filter. Filters must already be in the provider's lowercase form;
// each one becomes its own repeated query parameter. The response is returned
// as-is, including a nil Hits slice when the provider sent none.
func (c *Client) Search(ctx context.Context, dietFilters, healthFilters []string) (*SearchResponse, error) {
	key := cacheKey(dietFilters, healthFilters)
	if cached := c.fromCache(ctx, key); cached != nil {
		return cached, nil
	}

	var result SearchResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("type", "public").
		SetQueryParam("app_id", c.appID).
		SetQueryParam("app_key", c.appKey).
		SetQueryParamsFromValues(url.Values{
			"diet":   dietFilters,
			"health": healthFilters,
		}).
		SetResult(&result).
		Get("")
	if err != nil {
		return nil, fmt.Errorf("provider request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("provider returned status %d: %s", resp.StatusCode(), resp.String())
	}

	c.toCache(ctx, key, &result)
	return &result, nil
}

func cacheKey(dietFilters, healthFilters []string) string {
	return fmt.Sprintf("provider:search:diet=%s&health=%s",
		strings.Join(dietFilters, ","), strings.Join(healthFilters, ","))
}

// fromCache returns the cached response for the key, or nil on a miss. Any
// cache failure counts as a miss; the provider call proceeds normally.
func (c *Client) fromCache(ctx context.Context, key string) *SearchResponse {
	if c.cache == nil {
		return nil
	}

	data, err := c.cache.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Warn("provider cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil
	}

	var cached SearchResponse
	if err := json.Unmarshal(data, &cached); err != nil {
		logger.Warn("provider cache entry corrupt", zap.String("key", key), zap.Error(err))
		return nil
	}

	logger.Debug("provider cache hit", zap.String("key", key))
	return &cached
}

// toCache stores the response best-effort. A nil Hits slice serializes to
// null and comes back nil, so the absent-container case survives caching.
func (c *Client) toCache(ctx context.Context, key string, result *SearchResponse) {
	if c.cache == nil {
		return
	}

	data, err := json.Marshal(result)
	if err != nil {
		logger.Warn("provider cache marshal failed", zap.String("key", key), zap.Error(err))
		return
	}

	if err := c.cache.Set(ctx, key, data, c.cacheTTL).Err(); err != nil {
		logger.Warn("provider cache write failed", zap.String("key", key), zap.Error(err))
	}
}
