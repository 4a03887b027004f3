package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"partscatalog/internal/config"
)

const maxErrorBody = 64 << 10

// Client は カタログAPI の JSON/HTTP クライアント。状態を持たない。
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

type Option func(*Client)

// WithHTTPClient は http.Client を差し替える（テスト用）。
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithToken は管理APIの Bearer トークンを設定する。
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// DI
func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewFromConfig は ClientConfig から組み立てる。
func NewFromConfig(cfg config.ClientConfig) *Client {
	return New(cfg.BaseURL, cfg.Timeout, WithToken(cfg.Token))
}

// SetToken はログイン後にトークンを差し込む。
func (c *Client) SetToken(token string) {
	c.token = token
}

type errorBody struct {
	Error  string          `json:"error"`
	Detail json.RawMessage `json:"detail"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return &Error{Kind: Failure, Message: "encode request", Err: err}
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return &Error{Kind: Failure, Message: "build request", Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return networkError(err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return decodeError(res)
	}
	if out == nil || res.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, res.Body)
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return networkError(err)
		}
		return &Error{Kind: Failure, Status: res.StatusCode, Message: "invalid response body", Err: err}
	}
	return nil
}

// decodeError は {"error": "..."} と {"detail": "..."} の両方を読む。
func decodeError(res *http.Response) *Error {
	e := &Error{Kind: kindForStatus(res.StatusCode), Status: res.StatusCode}

	raw, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
	var b errorBody
	if json.Unmarshal(raw, &b) == nil {
		switch {
		case b.Error != "":
			e.Message = b.Error
		case len(b.Detail) > 0:
			e.Message = detailMessage(b.Detail)
		}
	}
	if e.Message == "" {
		e.Message = strings.TrimSpace(string(raw))
	}
	if e.Message == "" {
		e.Message = http.StatusText(res.StatusCode)
	}
	return e
}

// detail は文字列か、{"msg": ...} の配列。
func detailMessage(raw json.RawMessage) string {
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return s
	}
	var items []struct {
		Msg string        `json:"msg"`
		Loc []interface{} `json:"loc"`
	}
	if json.Unmarshal(raw, &items) == nil && len(items) > 0 {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if len(it.Loc) > 0 {
				msgs = append(msgs, fmt.Sprintf("%v: %s", it.Loc[len(it.Loc)-1], it.Msg))
				continue
			}
			msgs = append(msgs, it.Msg)
		}
		return strings.Join(msgs, "; ")
	}
	return string(raw)
}

func escape(id string) string {
	return url.PathEscape(id)
}
