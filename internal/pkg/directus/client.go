// Package directus 对 Directus REST API 的只读封装
package directus

import (
	"Hustings/internal/api/config"
	"Hustings/internal/pkg/logger"
	"Hustings/internal/pkg/metrics"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

const (
	defaultTimeout = 10 * time.Second
	userAgent      = "hustings/1.0"
)

// ErrUnavailable 网络错误或 CMS 返回非 2xx
var ErrUnavailable = errors.New("directus unavailable")

// APIError CMS 返回的错误响应
type APIError struct {
	Status   int
	Messages []string
}

func (e *APIError) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("directus responded %d", e.Status)
	}
	return fmt.Sprintf("directus responded %d: %s", e.Status, strings.Join(e.Messages, "; "))
}

func (e *APIError) Unwrap() error {
	return ErrUnavailable
}

// Query /items 查询参数
type Query struct {
	Fields []string
	Filter map[string]any
	Sort   []string
	// Deep 嵌套关联的查询参数，未设置时关联列表受服务端默认条数限制
	Deep map[string]any
	// Limit 为 0 时表示不分页（-1）
	Limit int
}

func (q Query) params() (map[string]string, error) {
	params := map[string]string{}
	if len(q.Fields) > 0 {
		params["fields"] = strings.Join(q.Fields, ",")
	}
	if len(q.Filter) > 0 {
		filter, err := json.Marshal(q.Filter)
		if err != nil {
			return nil, err
		}
		params["filter"] = string(filter)
	}
	if len(q.Sort) > 0 {
		params["sort"] = strings.Join(q.Sort, ",")
	}
	if len(q.Deep) > 0 {
		deep, err := json.Marshal(q.Deep)
		if err != nil {
			return nil, err
		}
		params["deep"] = string(deep)
	}
	limit := q.Limit
	if limit == 0 {
		limit = -1
	}
	params["limit"] = strconv.Itoa(limit)
	return params, nil
}

type dataEnvelope struct {
	Data json.RawMessage `json:"data"`
}

type errorEnvelope struct {
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// Client Directus 客户端
type Client struct {
	http    *resty.Client
	metrics *metrics.Manager
}

// NewClient 创建客户端，metrics 可以为 nil
func NewClient(cfg config.DirectusConfig, m *metrics.Manager) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json")
	if cfg.Token != "" {
		httpClient.SetAuthToken(cfg.Token)
	}
	logger.SetupResty(httpClient)

	return &Client{
		http:    httpClient,
		metrics: m,
	}
}

// Items 查询集合，把 data 字段原样返回
func (s *Client) Items(ctx context.Context, collection string, query Query) ([]byte, error) {
	params, err := query.params()
	if err != nil {
		return nil, fmt.Errorf("build query for %s: %w", collection, err)
	}

	start := time.Now()
	resp, err := s.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetPathParam("collection", collection).
		Get("/items/{collection}")
	if err != nil {
		s.metrics.ObserveCMSRequest(collection, "error", time.Since(start))
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	s.metrics.ObserveCMSRequest(collection, strconv.Itoa(resp.StatusCode()), time.Since(start))

	if resp.IsError() || resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return nil, newAPIError(resp.StatusCode(), resp.Body())
	}

	var envelope dataEnvelope
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", collection, err)
	}
	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return []byte("[]"), nil
	}
	return envelope.Data, nil
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status}
	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil {
		for _, e := range envelope.Errors {
			if e.Message != "" {
				apiErr.Messages = append(apiErr.Messages, e.Message)
			}
		}
	}
	return apiErr
}
