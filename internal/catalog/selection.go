package catalog

// Selection は1つのファセットの選択状態。
// ゼロ値は「未選択（すべて）」で、どのブランド名・カテゴリ名とも衝突しない。
type Selection struct {
	value string
	set   bool
}

// Any は未選択。
func Any() Selection { return Selection{} }

// Only は name だけに絞る。name が "all" でも通常の値として扱う。
func Only(name string) Selection { return Selection{value: name, set: true} }

// IsSet は値が選ばれているか。
func (s Selection) IsSet() bool { return s.set }

// Value は選ばれた値（未選択なら ""）。
func (s Selection) Value() string { return s.value }

// Matches は完全一致（大文字小文字を区別）。未選択なら常に true。
func (s Selection) Matches(v string) bool {
	return !s.set || s.value == v
}

func (s Selection) String() string {
	if !s.set {
		return "(any)"
	}
	return s.value
}
