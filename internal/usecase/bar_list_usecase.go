package usecase

import (
	"context"

	"LCW-App/internal/domain/model"
	"LCW-App/internal/domain/service"
)

// BarListUseCase 一覧ページ・地図表示のための絞り込みと描画情報の組み立て
type BarListUseCase interface {
	// ListBars 絞り込み条件に一致するバーのマーカーと地図中心を組み立てる
	ListBars(ctx context.Context, criteria model.FilterCriteria) *model.BarMapView
}

// barListUseCaseImpl BarListUseCaseの実装
type barListUseCaseImpl struct {
	snapshot       *model.Snapshot
	filterService  *service.BarFilterService
	mapViewService *service.MapViewService
}

// NewBarListUseCase 新しいBarListUseCaseインスタンスを作成
// snapshot は起動時に一度だけ構築された読み取り専用データを受け取る
func NewBarListUseCase(snapshot *model.Snapshot, filterService *service.BarFilterService, mapViewService *service.MapViewService) BarListUseCase {
	return &barListUseCaseImpl{
		snapshot:       snapshot,
		filterService:  filterService,
		mapViewService: mapViewService,
	}
}

// ListBars 絞り込み → マーカー変換 → 地図中心の計算を行う
// 全操作が不変データに対する純粋関数のためエラーは発生しない
func (u *barListUseCaseImpl) ListBars(ctx context.Context, criteria model.FilterCriteria) *model.BarMapView {
	matched := u.filterService.Filter(u.snapshot.Bars, criteria)

	return &model.BarMapView{
		Markers:     u.mapViewService.Markers(matched),
		Center:      u.mapViewService.Center(matched),
		BarCount:    len(matched),
		TotalBars:   len(u.snapshot.Bars),
		TotalDrinks: len(u.snapshot.Drinks),
	}
}
