package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"partscatalog/internal/apiclient"
)

// Confirmer は削除前の yes/no 確認。
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// ConfirmFunc は関数を Confirmer にする。
type ConfirmFunc func(ctx context.Context, prompt string) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) (bool, error) {
	return f(ctx, prompt)
}

// Panel は1種類のエンティティの管理画面。
// フォーム（EditSession）と一覧（ListStore）を API でつなぐ:
// 作成・更新・削除が成功したら一覧を1回だけ取り直す。
type Panel[E, D, P any] struct {
	name    string
	session *EditSession[E, D, P]
	store   *ListStore[E]
	gw      Gateway[E, P]
	idOf    func(E) string
	confirm Confirmer
	timeout time.Duration
	logger  *slog.Logger

	busy atomic.Bool
}

type PanelConfig struct {
	Timeout time.Duration // 0 ならタイムアウトなし
	Logger  *slog.Logger
}

func NewPanel[E, D, P any](name string, form Form[E, D, P], gw Gateway[E, P], idOf func(E) string, confirm Confirmer, cfg PanelConfig) *Panel[E, D, P] {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	p := &Panel[E, D, P]{
		name:    name,
		session: NewEditSession(form),
		gw:      gw,
		idOf:    idOf,
		confirm: confirm,
		timeout: cfg.Timeout,
		logger:  logger,
	}
	p.store = NewListStore(name, func(ctx context.Context) ([]E, error) {
		ctx, cancel := p.withTimeout(ctx)
		defer cancel()
		items, err := gw.List(ctx)
		return items, timeoutAsNetwork(ctx, err)
	}, logger)
	return p
}

func (p *Panel[E, D, P]) Name() string                  { return p.name }
func (p *Panel[E, D, P]) Session() *EditSession[E, D, P] { return p.session }
func (p *Panel[E, D, P]) Store() *ListStore[E]           { return p.store }
func (p *Panel[E, D, P]) Items() []E                     { return p.store.Items() }

// Busy は送信/削除が実行中か（ボタンの無効化に使う）。
func (p *Panel[E, D, P]) Busy() bool { return p.busy.Load() }

// Reload は一覧を取り直す。
func (p *Panel[E, D, P]) Reload(ctx context.Context) error {
	return p.store.Reload(ctx)
}

// Edit は一覧にある id の行をフォームに渡す（スナップショットのコピー）。
// 送信/削除の実行中は ErrBusy。
func (p *Panel[E, D, P]) Edit(id string) error {
	if !p.busy.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer p.busy.Store(false)

	e, ok := p.store.Find(func(e E) bool { return p.idOf(e) == id })
	if !ok {
		return fmt.Errorf("%s %q: %w", p.name, id, ErrNotLoaded)
	}
	p.session.Populate(e)
	return nil
}

// Cancel はフォームを Create に戻す。送信/削除の実行中は ErrBusy。
func (p *Panel[E, D, P]) Cancel() error {
	if !p.busy.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer p.busy.Store(false)

	p.session.Cancel()
	return nil
}

// SetDraft は入力中の値を置き換える。送信/削除の実行中は ErrBusy。
func (p *Panel[E, D, P]) SetDraft(d D) error {
	if !p.busy.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer p.busy.Store(false)

	p.session.SetDraft(d)
	return nil
}

// Submit はフォームを送信する。成功したら Create に戻り、一覧を1回取り直す。
// 取り直しの失敗はログだけで、送信結果はそのまま返す。
func (p *Panel[E, D, P]) Submit(ctx context.Context) (E, error) {
	var zero E
	if !p.busy.CompareAndSwap(false, true) {
		return zero, ErrBusy
	}
	defer p.busy.Store(false)

	opCtx, cancel := p.withTimeout(ctx)
	out, err := p.session.Submit(opCtx, p.gw)
	err = timeoutAsNetwork(opCtx, err)
	cancel()
	if err != nil {
		return zero, err
	}

	_ = p.store.Reload(ctx)
	return out, nil
}

// Delete は確認を取ってから削除する。確認で断られたら何もしないで false。
// 成功したら一覧を1回取り直す。削除に失敗したら一覧はそのまま。
func (p *Panel[E, D, P]) Delete(ctx context.Context, id string) (bool, error) {
	if !p.busy.CompareAndSwap(false, true) {
		return false, ErrBusy
	}
	defer p.busy.Store(false)

	ok, err := p.confirm.Confirm(ctx, fmt.Sprintf("Delete %s %s?", p.name, id))
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	opCtx, cancel := p.withTimeout(ctx)
	err = timeoutAsNetwork(opCtx, p.gw.Delete(opCtx, id))
	cancel()
	if err != nil {
		return false, err
	}

	//編集中の対象を消したらフォームも戻す
	if target, editing := p.session.Target(); editing && target == id {
		p.session.Cancel()
	}

	_ = p.store.Reload(ctx)
	return true, nil
}

func (p *Panel[E, D, P]) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, p.timeout)
}

// timeoutAsNetwork は期限切れを NetworkFailure にそろえる。
func timeoutAsNetwork(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	var apiErr *apiclient.Error
	if errors.As(err, &apiErr) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return &apiclient.Error{Kind: apiclient.NetworkFailure, Message: "request timed out", Err: err}
	}
	return err
}
