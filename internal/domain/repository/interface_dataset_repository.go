package repository

import (
	"context"

	"LCW-App/internal/domain/model"
)

// DatasetRepository バーとドリンクのデータセットを読み込むリポジトリ
type DatasetRepository interface {
	// Load 呼び出しのたびにソースを読み直してスナップショットを作成する（冪等）
	// 失敗時は空のデータセットを持つスナップショットと *model.LoadError を返す
	Load(ctx context.Context) (*model.Snapshot, error)
}
