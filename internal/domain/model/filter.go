package model

import "strings"

// PreferenceCategory 設備フラグ（ルーフトップ・フード）による絞り込みカテゴリ
type PreferenceCategory string

const (
	// PreferenceAll 絞り込みなし
	PreferenceAll PreferenceCategory = "all"
	// PreferenceRooftopOnly ルーフトップ席ありのバーのみ（フードの有無は問わない）
	PreferenceRooftopOnly PreferenceCategory = "r"
	// PreferenceFoodOnly フードメニューありのバーのみ（ルーフトップの有無は問わない）
	PreferenceFoodOnly PreferenceCategory = "f"
	// PreferenceBoth 両方の設備があるバーのみ
	PreferenceBoth PreferenceCategory = "both"
	// PreferenceNeither どちらの設備もないバーのみ
	PreferenceNeither PreferenceCategory = "none"
)

// ParsePreferenceCategory クエリパラメータの値を絞り込みカテゴリに変換する
// 未知の値や空文字は「絞り込みなし」として扱う
func ParsePreferenceCategory(raw string) PreferenceCategory {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "r":
		return PreferenceRooftopOnly
	case "f":
		return PreferenceFoodOnly
	case "both":
		return PreferenceBoth
	case "none":
		return PreferenceNeither
	default:
		return PreferenceAll
	}
}

// FilterCriteria リクエストごとに組み立てる絞り込み条件
// 永続化はせず、クエリパラメータから毎回生成する
type FilterCriteria struct {
	Query      string             // バー名に対する大文字小文字を区別しない部分一致（空なら全件）
	Preference PreferenceCategory // 設備カテゴリ
}
