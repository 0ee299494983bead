package logger

import (
	log "log/slog"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	cmsSlowThreshold = 500 * time.Millisecond
	bodyLogLimit     = 1000
)

// SetupResty 为 CMS 请求挂载日志钩子
func SetupResty(client *resty.Client) {
	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		req := resp.Request
		elapsed := resp.Time()

		fields := []any{
			log.String("method", req.Method),
			log.String("url", req.URL),
			log.Int("status", resp.StatusCode()),
			log.Duration("latency", elapsed),
		}

		switch {
		case resp.IsError():
			log.ErrorContext(req.Context(), "CMS_QUERY_ERROR", append(fields, log.String("res_body", truncate(resp.String())))...)
		case elapsed > cmsSlowThreshold:
			log.WarnContext(req.Context(), "CMS_QUERY_SLOW", fields...)
		default:
			log.InfoContext(req.Context(), "CMS_QUERY", fields...)
		}
		return nil
	})

	client.OnError(func(req *resty.Request, err error) {
		log.ErrorContext(req.Context(), "CMS_QUERY_ERROR",
			log.String("method", req.Method),
			log.String("url", req.URL),
			log.Any("err", err),
		)
	})
}

func truncate(s string) string {
	if len(s) > bodyLogLimit {
		return s[:bodyLogLimit] + "...[truncated]"
	}
	return s
}
