package usecase

import (
	"context"
	"fmt"

	"LCW-App/internal/domain/model"
)

// BarDetailUseCase 詳細ページ用に1件のバーを取得する
type BarDetailUseCase interface {
	// GetBarDetail 指定した行番号のバーを返す
	// 範囲外の場合は model.ErrBarNotFound をラップしたエラーを返す
	GetBarDetail(ctx context.Context, index int) (*model.IndexedBar, error)
}

// barDetailUseCaseImpl BarDetailUseCaseの実装
type barDetailUseCaseImpl struct {
	snapshot *model.Snapshot
}

// NewBarDetailUseCase 新しいBarDetailUseCaseインスタンスを作成
func NewBarDetailUseCase(snapshot *model.Snapshot) BarDetailUseCase {
	return &barDetailUseCaseImpl{snapshot: snapshot}
}

// GetBarDetail 行番号をキーに全フィールドを取得する
func (u *barDetailUseCaseImpl) GetBarDetail(ctx context.Context, index int) (*model.IndexedBar, error) {
	bar, ok := u.snapshot.BarAt(index)
	if !ok {
		return nil, fmt.Errorf("bar index %d: %w", index, model.ErrBarNotFound)
	}
	return &model.IndexedBar{Index: index, Bar: bar}, nil
}
