package model

import (
	"errors"
	"fmt"
)

// LoadErrorKind データ読み込み失敗の分類
type LoadErrorKind string

const (
	// LoadErrorMissingFile ソースファイルが存在しない
	LoadErrorMissingFile LoadErrorKind = "missing_file"
	// LoadErrorEmptyData ソースファイルは存在するが行も列もない
	LoadErrorEmptyData LoadErrorKind = "empty_data"
	// LoadErrorUnexpected その他の読み込み失敗（パースエラー・I/Oエラーなど）
	LoadErrorUnexpected LoadErrorKind = "unexpected"
)

// LoadError 起動時のデータ読み込みエラー
// プロセスは落とさず、全リクエストに対して劣化応答のメッセージとして表示される
type LoadError struct {
	Kind   LoadErrorKind
	Source string // 対象のファイルパス
	Err    error  // 元のエラー（存在する場合）
}

func (e *LoadError) Error() string {
	switch e.Kind {
	case LoadErrorMissingFile:
		return fmt.Sprintf("Missing data file — File not found: %s", e.Source)
	case LoadErrorEmptyData:
		return fmt.Sprintf("Data file is empty — No columns to parse from file: %s", e.Source)
	default:
		if e.Err != nil {
			return fmt.Sprintf("Unexpected error loading data — %v", e.Err)
		}
		return "Unexpected error loading data"
	}
}

func (e *LoadError) Unwrap() error { return e.Err }

// ErrBarNotFound 指定された行番号のバーが存在しない（リクエスト単位の404）
var ErrBarNotFound = errors.New("bar not found")
