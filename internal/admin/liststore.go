package admin

import (
	"context"
	"log/slog"
	"sync"
)

// ListStore は1種類のエンティティ一覧を持つ。Reload で丸ごと置き換える。
// 各 Reload に連番を振り、最後に反映したものより古い応答は捨てる。
type ListStore[E any] struct {
	name   string
	fetch  func(ctx context.Context) ([]E, error)
	logger *slog.Logger

	mu      sync.Mutex
	items   []E
	loaded  bool
	issued  uint64
	applied uint64
}

func NewListStore[E any](name string, fetch func(ctx context.Context) ([]E, error), logger *slog.Logger) *ListStore[E] {
	if logger == nil {
		logger = slog.Default()
	}
	return &ListStore[E]{name: name, fetch: fetch, logger: logger, items: []E{}}
}

// Reload は一覧を取り直す。失敗したら前の内容を残してログに出し、エラーを返す。
func (s *ListStore[E]) Reload(ctx context.Context) error {
	s.mu.Lock()
	s.issued++
	seq := s.issued
	s.mu.Unlock()

	items, err := s.fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.logger.Warn("reload failed; keeping previous list",
			slog.String("list", s.name),
			slog.Uint64("seq", seq),
			slog.Any("error", err),
		)
		return err
	}
	if seq <= s.applied {
		s.logger.Debug("stale reload discarded",
			slog.String("list", s.name),
			slog.Uint64("seq", seq),
			slog.Uint64("applied", s.applied),
		)
		return nil
	}

	if items == nil {
		items = []E{}
	}
	s.items = items
	s.applied = seq
	s.loaded = true
	return nil
}

// Items はコピーを返す。
func (s *ListStore[E]) Items() []E {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]E, len(s.items))
	copy(out, s.items)
	return out
}

func (s *ListStore[E]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Loaded は一度でも反映できたか。
func (s *ListStore[E]) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Find は条件に合う最初の要素。
func (s *ListStore[E]) Find(match func(E) bool) (E, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.items {
		if match(e) {
			return e, true
		}
	}
	var zero E
	return zero, false
}
