package model

// Drink ドリンクデータセットの1行分のレコード
// 現状の画面は件数のみを参照するため、カラムは生の値のまま保持する
type Drink struct {
	Fields []string `json:"fields"`
}

// Snapshot 起動時に一度だけ読み込まれる読み取り専用のデータセット一式
// サーバー起動前に構築され、以降は変更されないためロックは不要
type Snapshot struct {
	Bars   []Bar
	Drinks []Drink
}

// BarAt 指定した行番号のバーを返す。範囲外の場合は ok=false
func (s *Snapshot) BarAt(index int) (Bar, bool) {
	if index < 0 || index >= len(s.Bars) {
		return Bar{}, false
	}
	return s.Bars[index], true
}
