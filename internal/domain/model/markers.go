package model

// Marker 地図上の1マーカー分の描画情報
type Marker struct {
	Index int     `json:"index"`
	Name  string  `json:"name"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Color string  `json:"color"`
	Icon  string  `json:"icon"`
	Popup string  `json:"popup"`
}

// BarMapView 一覧ページと /api/bars が返す、地図描画に必要な情報一式
type BarMapView struct {
	Markers     []Marker `json:"bars"`
	Center      LatLng   `json:"center"`
	BarCount    int      `json:"bar_count"`    // 絞り込み後の件数
	TotalBars   int      `json:"total_bars"`   // 読み込んだバーの全件数
	TotalDrinks int      `json:"total_drinks"` // 読み込んだドリンクの全件数
}
