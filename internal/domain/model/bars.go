package model

import "math"

// LatLng 緯度経度を表す基本的な型（マーカー配置・地図中心の計算で使用）
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// IsValid 有限な座標を持っているかチェック（NaN や欠損値は地図に置けない）
func (l LatLng) IsValid() bool {
	return !math.IsNaN(l.Lat) && !math.IsNaN(l.Lng) &&
		!math.IsInf(l.Lat, 0) && !math.IsInf(l.Lng, 0)
}

// OpeningHours 曜日ごとの営業時間（CSVの文字列をそのまま保持する）
type OpeningHours struct {
	Mon string `json:"mon"`
	Tue string `json:"tue"`
	Wed string `json:"wed"`
	Thu string `json:"thu"`
	Fri string `json:"fri"`
	Sat string `json:"sat"`
	Sun string `json:"sun"`
}

// DayHours テンプレートで営業時間を曜日順に描画するための1行分
type DayHours struct {
	Day   string
	Hours string
}

// Bar ロンドンカクテルウィーク参加バーの1行分のレコード
// 行番号（読み込み時のインデックス）が詳細ページのキーになる
type Bar struct {
	Name          string       `json:"name"`
	Address       string       `json:"address"`
	Phone         string       `json:"phone"`
	Description   string       `json:"description"`
	Neighbourhood string       `json:"neighbourhood"`
	District      string       `json:"district"`
	Hours         OpeningHours `json:"hours"`
	Location      LatLng       `json:"location"`
	Rooftop       bool         `json:"rooftop"` // R フラグ: ルーフトップ席あり
	Food          bool         `json:"food"`    // F フラグ: フードメニューあり
}

// HoursByDay 営業時間を月曜始まりの順序付きスライスで返す
func (b *Bar) HoursByDay() []DayHours {
	return []DayHours{
		{Day: "Mon", Hours: b.Hours.Mon},
		{Day: "Tue", Hours: b.Hours.Tue},
		{Day: "Wed", Hours: b.Hours.Wed},
		{Day: "Thu", Hours: b.Hours.Thu},
		{Day: "Fri", Hours: b.Hours.Fri},
		{Day: "Sat", Hours: b.Hours.Sat},
		{Day: "Sun", Hours: b.Hours.Sun},
	}
}

// IndexedBar 元データセット内の行番号付きバーレコード
// 絞り込み後も元の行番号を保持し、詳細ページへのリンクに使う
type IndexedBar struct {
	Index int `json:"index"`
	Bar   Bar `json:"bar"`
}
