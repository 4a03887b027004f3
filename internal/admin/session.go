package admin

import (
	"context"
	"sync"
)

// Mode はフォームが新規作成か編集か。
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

// Form はエンティティごとのドラフトの扱い方。
//   - Blank: 既定値のドラフト
//   - Load:  既存エンティティから ID とドラフトを作る（任意項目はゼロ値で埋める）
//   - Payload: ドラフトを送信用に変換する（失敗は ErrInvalidDraft を包む）
type Form[E, D, P any] interface {
	Blank() D
	Load(e E) (id string, d D)
	Payload(d D) (P, error)
}

// Mutator は作成/更新の呼び出し先。
type Mutator[E, P any] interface {
	Create(ctx context.Context, in P) (E, error)
	Update(ctx context.Context, id string, in P) (E, error)
}

// EditSession は1つのフォームの状態（Create か Edit(target)）とドラフトを持つ。
// 同時に編集できる対象は1つ。送信の多重実行は呼び出し側（Panel）で防ぐ。
type EditSession[E, D, P any] struct {
	form Form[E, D, P]

	mu     sync.Mutex
	mode   Mode
	target string
	draft  D
}

func NewEditSession[E, D, P any](form Form[E, D, P]) *EditSession[E, D, P] {
	return &EditSession[E, D, P]{form: form, mode: ModeCreate, draft: form.Blank()}
}

func (s *EditSession[E, D, P]) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Target は編集対象のID。Create なら ok=false。
func (s *EditSession[E, D, P]) Target() (id string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != ModeEdit {
		return "", false
	}
	return s.target, true
}

func (s *EditSession[E, D, P]) Draft() D {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// SetDraft は入力中の値を置き換える（モードは変えない）。
func (s *EditSession[E, D, P]) SetDraft(d D) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = d
}

// Populate は e を編集対象にする。どの状態からでも Edit(e.id) になる。
func (s *EditSession[E, D, P]) Populate(e E) {
	id, d := s.form.Load(e)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = ModeEdit
	s.target = id
	s.draft = d
}

// Cancel は Create と既定のドラフトに戻す。
func (s *EditSession[E, D, P]) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

// mu を持った状態で呼ぶ
func (s *EditSession[E, D, P]) reset() {
	s.mode = ModeCreate
	s.target = ""
	s.draft = s.form.Blank()
}

// Submit は Create なら作成、Edit なら target の更新を呼ぶ。
// 成功したら Create に戻してサーバーの返したエンティティを返す。
// 失敗したら状態もドラフトもそのまま。
func (s *EditSession[E, D, P]) Submit(ctx context.Context, m Mutator[E, P]) (E, error) {
	var zero E

	s.mu.Lock()
	mode, target, draft := s.mode, s.target, s.draft
	s.mu.Unlock()

	in, err := s.form.Payload(draft)
	if err != nil {
		return zero, err
	}

	var out E
	if mode == ModeEdit {
		out, err = m.Update(ctx, target, in)
	} else {
		out, err = m.Create(ctx, in)
	}
	if err != nil {
		return zero, err
	}

	s.mu.Lock()
	s.reset()
	s.mu.Unlock()
	return out, nil
}
