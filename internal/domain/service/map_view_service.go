package service

import (
	"github.com/paulmach/orb"

	"LCW-App/internal/domain/helper"
	"LCW-App/internal/domain/model"
)

// DefaultCenter 有効な座標が1つもないときに使う地図中心（ロンドン中心部）
var DefaultCenter = model.LatLng{Lat: 51.5074, Lng: -0.1278}

// MapViewService 絞り込み結果を地図描画用の情報へ変換するサービス
type MapViewService struct{}

// NewMapViewService MapViewServiceの新しいインスタンスを作成
func NewMapViewService() *MapViewService {
	return &MapViewService{}
}

// Center 有効な座標を持つバーの緯度・経度の算術平均を地図中心として返す
// 絞り込み結果が空、または全行の座標が欠損している場合は DefaultCenter にフォールバックする
func (s *MapViewService) Center(bars []model.IndexedBar) model.LatLng {
	var sum orb.Point
	count := 0
	for _, b := range bars {
		if !b.Bar.Location.IsValid() {
			continue
		}
		sum[0] += b.Bar.Location.Lng
		sum[1] += b.Bar.Location.Lat
		count++
	}
	if count == 0 {
		return DefaultCenter
	}

	center := orb.Point{sum[0] / float64(count), sum[1] / float64(count)}
	return model.LatLng{Lat: center.Lat(), Lng: center.Lon()}
}

// Markers バーのレコードをマーカー描画情報へ変換する
// 座標が欠損している行は地図に置けないためマーカーを作らない
func (s *MapViewService) Markers(bars []model.IndexedBar) []model.Marker {
	markers := make([]model.Marker, 0, len(bars))
	for _, b := range bars {
		if !b.Bar.Location.IsValid() {
			continue
		}
		color, icon := helper.MarkerStyleFor(b.Bar.Rooftop, b.Bar.Food)
		markers = append(markers, model.Marker{
			Index: b.Index,
			Name:  b.Bar.Name,
			Lat:   b.Bar.Location.Lat,
			Lng:   b.Bar.Location.Lng,
			Color: color,
			Icon:  icon,
			Popup: helper.PopupHTML(b.Index, b.Bar.Name),
		})
	}
	return markers
}
