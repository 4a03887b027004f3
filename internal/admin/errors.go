package admin

import "errors"

var (
	// ErrBusy は同じパネルで送信/削除が実行中。
	ErrBusy = errors.New("another request is in progress")
	// ErrNotLoaded は一覧に無いIDを編集しようとした。
	ErrNotLoaded = errors.New("entity is not in the loaded list")
	// ErrInvalidDraft はフォームの値を送信できる形にできない。
	ErrInvalidDraft = errors.New("invalid draft")
)
