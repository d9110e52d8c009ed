package service

import (
	"strings"

	"LCW-App/internal/domain/model"
)

// BarFilterService 検索条件に一致するバーを抽出するサービス
// 読み込み済みの不変データに対する純粋な操作のためロックは不要
type BarFilterService struct{}

// NewBarFilterService BarFilterServiceの新しいインスタンスを作成
func NewBarFilterService() *BarFilterService {
	return &BarFilterService{}
}

// Filter criteria に一致するバーを元の行番号付きで返す
// 元データセットの並び順を保持する。一致なしの場合は空のスライス
func (s *BarFilterService) Filter(bars []model.Bar, criteria model.FilterCriteria) []model.IndexedBar {
	query := strings.ToLower(criteria.Query)

	matched := make([]model.IndexedBar, 0, len(bars))
	for i, bar := range bars {
		// テキスト絞り込み: バー名の部分一致（大文字小文字を区別しない、空なら全件一致）
		if query != "" && !strings.Contains(strings.ToLower(bar.Name), query) {
			continue
		}
		// 設備カテゴリ絞り込みはテキスト絞り込みの後に適用する
		if !matchesPreference(bar, criteria.Preference) {
			continue
		}
		matched = append(matched, model.IndexedBar{Index: i, Bar: bar})
	}
	return matched
}

// matchesPreference 設備カテゴリの判定
// RooftopOnly / FoodOnly は自分のフラグのみを見る（両方trueのバーも一致する）
func matchesPreference(bar model.Bar, pref model.PreferenceCategory) bool {
	switch pref {
	case model.PreferenceRooftopOnly:
		return bar.Rooftop
	case model.PreferenceFoodOnly:
		return bar.Food
	case model.PreferenceBoth:
		return bar.Rooftop && bar.Food
	case model.PreferenceNeither:
		return !bar.Rooftop && !bar.Food
	default:
		// All および未知のカテゴリは追加の絞り込みなし
		return true
	}
}
