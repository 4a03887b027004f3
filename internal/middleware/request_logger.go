package middleware

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
)

// RequestLogger は1リクエスト1行の構造化ログを出す。
// 4xx は Warn、5xx は Error。
func RequestLogger(l *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// echo の HTTPErrorHandler にレスポンスを書かせてから status を読む
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			path := req.URL.Path
			if q := req.URL.RawQuery; q != "" {
				path = path + "?" + q
			}

			status := res.Status
			level := slog.LevelInfo
			if status >= 500 {
				level = slog.LevelError
			} else if status >= 400 {
				level = slog.LevelWarn
			}

			attrs := []slog.Attr{
				slog.String("request_id", res.Header().Get(echo.HeaderXRequestID)),
				slog.String("method", req.Method),
				slog.String("path", path),
				slog.Int("status", status),
				slog.Duration("latency", time.Since(start)),
				slog.Int64("bytes", res.Size),
				slog.String("client_ip", c.RealIP()),
			}
			if err != nil {
				attrs = append(attrs, slog.String("error", err.Error()))
			}

			l.LogAttrs(req.Context(), level, "http_request", attrs...)
			return nil
		}
	}
}
