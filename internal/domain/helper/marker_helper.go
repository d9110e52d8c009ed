package helper

import (
	"fmt"
	"html"
)

// MarkerStyleFor 設備フラグの組み合わせからマーカーの色とアイコンを決定する
// (rooftop, food) のみで一意に決まる純粋関数
func MarkerStyleFor(rooftop, food bool) (color, icon string) {
	switch {
	case rooftop && food:
		return "red", "star"
	case rooftop:
		return "orange", "lemon"
	case food:
		return "green", "cat"
	default:
		return "lightgray", "frown"
	}
}

// PopupHTML マーカーのポップアップに表示するHTMLを組み立てる
// バー名と詳細ページへのリンク（行番号がキー）を含む
func PopupHTML(index int, name string) string {
	return fmt.Sprintf(`<b>%s</b><br><a href="/bar/%d">View details</a>`, html.EscapeString(name), index)
}
