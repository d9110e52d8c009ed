package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"LCW-App/internal/domain/model"
)

// requiredBarColumns bars.csv のヘッダーに必須のカラム
// 読み込み時にスキーマを検証し、動的なカラム参照を型付きレコードへの変換に置き換える
var requiredBarColumns = []string{
	"name", "address", "phone", "description", "neighbourhood", "district",
	"hours_mon", "hours_tue", "hours_wed", "hours_thu", "hours_fri", "hours_sat", "hours_sun",
	"latitude", "longitude", "rooftop", "food",
}

// CSVDatasetRepository CSVファイルからデータセットを読み込むリポジトリの実装
type CSVDatasetRepository struct {
	barsPath   string
	drinksPath string
}

// NewCSVDatasetRepository CSVDatasetRepositoryの新しいインスタンスを作成
func NewCSVDatasetRepository(barsPath, drinksPath string) *CSVDatasetRepository {
	return &CSVDatasetRepository{
		barsPath:   barsPath,
		drinksPath: drinksPath,
	}
}

// Load 2つのCSVを読み直してスナップショットを作成する
// 失敗時も nil ではなく空のデータセットを持つスナップショットを返す（劣化モード用）
func (r *CSVDatasetRepository) Load(ctx context.Context) (*model.Snapshot, error) {
	empty := &model.Snapshot{Bars: []model.Bar{}, Drinks: []model.Drink{}}

	// 元実装と同じく bars → drinks の順で存在確認する
	for _, path := range []string{r.barsPath, r.drinksPath} {
		if _, err := os.Stat(path); err != nil {
			return empty, &model.LoadError{Kind: model.LoadErrorMissingFile, Source: path, Err: err}
		}
	}

	bars, err := r.loadBars()
	if err != nil {
		return empty, err
	}

	drinks, err := r.loadDrinks()
	if err != nil {
		return empty, err
	}

	log.Debugf("datasets loaded: bars=%d drinks=%d", len(bars), len(drinks))
	return &model.Snapshot{Bars: bars, Drinks: drinks}, nil
}

// loadBars bars.csv を型付きレコードのスライスに読み込む
func (r *CSVDatasetRepository) loadBars() ([]model.Bar, error) {
	f, err := os.Open(r.barsPath)
	if err != nil {
		return nil, &model.LoadError{Kind: model.LoadErrorUnexpected, Source: r.barsPath, Err: err}
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1 // 列数の揺れには寛容に読み、値はカラム名で引く

	header, err := cr.Read()
	if err == io.EOF {
		// ヘッダーすらないファイルは「列がない」扱い
		return nil, &model.LoadError{Kind: model.LoadErrorEmptyData, Source: r.barsPath}
	}
	if err != nil {
		return nil, &model.LoadError{Kind: model.LoadErrorUnexpected, Source: r.barsPath, Err: err}
	}

	col, err := columnIndex(header, requiredBarColumns)
	if err != nil {
		return nil, &model.LoadError{Kind: model.LoadErrorUnexpected, Source: r.barsPath, Err: err}
	}

	bars := []model.Bar{}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &model.LoadError{Kind: model.LoadErrorUnexpected, Source: r.barsPath, Err: err}
		}
		bars = append(bars, decodeBar(rec, col))
	}
	return bars, nil
}

// loadDrinks drinks.csv を読み込む。現状は件数のみ使うため行は生のまま保持する
func (r *CSVDatasetRepository) loadDrinks() ([]model.Drink, error) {
	f, err := os.Open(r.drinksPath)
	if err != nil {
		return nil, &model.LoadError{Kind: model.LoadErrorUnexpected, Source: r.drinksPath, Err: err}
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1

	if _, err := cr.Read(); err == io.EOF {
		return nil, &model.LoadError{Kind: model.LoadErrorEmptyData, Source: r.drinksPath}
	} else if err != nil {
		return nil, &model.LoadError{Kind: model.LoadErrorUnexpected, Source: r.drinksPath, Err: err}
	}

	drinks := []model.Drink{}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &model.LoadError{Kind: model.LoadErrorUnexpected, Source: r.drinksPath, Err: err}
		}
		drinks = append(drinks, model.Drink{Fields: rec})
	}
	return drinks, nil
}

// columnIndex ヘッダーからカラム名 → 列番号の対応表を作り、必須カラムの存在を検証する
func columnIndex(header, required []string) (map[string]int, error) {
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range required {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("required column %q not found in header", name)
		}
	}
	return col, nil
}

// decodeBar 1行分のレコードを型付きの Bar に変換する
func decodeBar(rec []string, col map[string]int) model.Bar {
	get := func(name string) string {
		idx, ok := col[name]
		if !ok || idx >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[idx])
	}

	return model.Bar{
		Name:          get("name"),
		Address:       get("address"),
		Phone:         get("phone"),
		Description:   get("description"),
		Neighbourhood: get("neighbourhood"),
		District:      get("district"),
		Hours: model.OpeningHours{
			Mon: get("hours_mon"),
			Tue: get("hours_tue"),
			Wed: get("hours_wed"),
			Thu: get("hours_thu"),
			Fri: get("hours_fri"),
			Sat: get("hours_sat"),
			Sun: get("hours_sun"),
		},
		Location: model.LatLng{
			Lat: parseCoordinate(get("latitude")),
			Lng: parseCoordinate(get("longitude")),
		},
		Rooftop: parseBool(get("rooftop")),
		Food:    parseBool(get("food")),
	}
}

// parseCoordinate 座標のパース。欠損・不正な値は NaN として保持する
// （NaN は地図中心の計算時にスキップされ、エラーにはしない）
func parseCoordinate(raw string) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// parseBool 設備フラグのパース。true/1/yes のみ真とみなす
func parseBool(raw string) bool {
	switch strings.ToLower(raw) {
	case "true", "1", "yes", "t", "y":
		return true
	default:
		return false
	}
}
