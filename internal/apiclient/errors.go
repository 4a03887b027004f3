package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind は失敗の種類。
type Kind int

const (
	Failure            Kind = iota // その他（5xx、予期しないステータス、壊れたレスポンス）
	NetworkFailure                 // 接続できない・タイムアウト（再試行可）
	NotFound                       // 404
	ValidationRejected             // 400 / 422
)

func (k Kind) String() string {
	switch k {
	case NetworkFailure:
		return "network failure"
	case NotFound:
		return "not found"
	case ValidationRejected:
		return "validation rejected"
	default:
		return "failure"
	}
}

// Error は ApiClient が返すエラー。Message は画面にそのまま出せる文言。
type Error struct {
	Kind    Kind
	Status  int // HTTPステータス（ネットワーク失敗なら0）
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf は err の種類を返す。*Error でなければ Failure。
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return Failure
}

// IsRetryable はユーザーがそのまま再実行してよいか。
func IsRetryable(err error) bool {
	return KindOf(err) == NetworkFailure
}

func kindForStatus(status int) Kind {
	switch status {
	case http.StatusNotFound:
		return NotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ValidationRejected
	default:
		return Failure
	}
}

func networkError(err error) *Error {
	return &Error{Kind: NetworkFailure, Message: err.Error(), Err: err}
}
