package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LCW-App/internal/domain/model"
	"LCW-App/internal/domain/service"
	"LCW-App/internal/usecase"
)

// setupTestRouter テスト用のルーターを組み立てる。loadErr で劣化モードを再現できる
func setupTestRouter(t *testing.T, snapshot *model.Snapshot, loadErr error) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.LoadHTMLGlob(filepath.Join("..", "..", "templates", "*.html"))

	listUseCase := usecase.NewBarListUseCase(snapshot, service.NewBarFilterService(), service.NewMapViewService())
	detailUseCase := usecase.NewBarDetailUseCase(snapshot)

	SetupRoutes(r, NewPagesHandler(listUseCase, detailUseCase, loadErr), NewBarsAPIHandler(listUseCase, loadErr))
	return r
}

func testSnapshot() *model.Snapshot {
	return &model.Snapshot{
		Bars: []model.Bar{
			{
				Name:          "Alpha Bar",
				Address:       "1 Test Street",
				Phone:         "+44 20 0000 0001",
				Description:   "First test bar",
				Neighbourhood: "Soho",
				District:      "Westminster",
				Hours:         model.OpeningHours{Mon: "10:00-23:00", Sun: "Closed"},
				Location:      model.LatLng{Lat: 51.5, Lng: -0.1},
				Rooftop:       true,
				Food:          false,
			},
			{Name: "Beta Lounge", Location: model.LatLng{Lat: 51.51, Lng: -0.11}, Food: true},
			{Name: "Gamma Rooftop", Location: model.LatLng{Lat: 51.52, Lng: -0.12}, Rooftop: true, Food: true},
		},
		Drinks: []model.Drink{
			{Fields: []string{"Test Negroni", "Alpha Bar", "Gin", "12.00"}},
		},
	}
}

func doRequest(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestIndexRendersMapPage(t *testing.T) {
	router := setupTestRouter(t, testSnapshot(), nil)

	w := doRequest(router, "/")

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "London Cocktail Week 2025")
	assert.Contains(t, body, "Bars loaded: 3. Drinks loaded: 1.")
	assert.Contains(t, body, `id="map"`)
	assert.Contains(t, body, "Alpha Bar")
}

func TestIndexAppliesFilters(t *testing.T) {
	router := setupTestRouter(t, testSnapshot(), nil)

	w := doRequest(router, "/?query=alpha&preference=r")

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "1 bar(s) match")
	assert.Contains(t, body, "Alpha Bar")
	assert.NotContains(t, body, "Beta Lounge")
}

func TestIndexDegradedModeReturnsPlainText(t *testing.T) {
	loadErr := &model.LoadError{Kind: model.LoadErrorMissingFile, Source: "data/bars.csv"}
	router := setupTestRouter(t, &model.Snapshot{}, loadErr)

	w := doRequest(router, "/")

	// 劣化モードでもプロセスは応答し続ける（クラッシュさせない）
	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "London Cocktail Week 2025!")
	assert.Contains(t, body, "Missing data file")
	assert.Contains(t, body, "data/bars.csv")
	assert.NotContains(t, body, "<html")
}

func TestBarDetailRendersFullFieldSet(t *testing.T) {
	router := setupTestRouter(t, testSnapshot(), nil)

	w := doRequest(router, "/bar/0")

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Alpha Bar")
	assert.Contains(t, body, "1 Test Street")
	assert.Contains(t, body, "+44 20 0000 0001")
	assert.Contains(t, body, "Soho")
	assert.Contains(t, body, "Westminster")
	assert.Contains(t, body, "10:00-23:00")
}

func TestBarDetailNotFound(t *testing.T) {
	router := setupTestRouter(t, testSnapshot(), nil)

	// インデックス空間は 0..2
	w := doRequest(router, "/bar/5")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Bar not found")
}

func TestBarDetailNonNumericID(t *testing.T) {
	router := setupTestRouter(t, testSnapshot(), nil)

	w := doRequest(router, "/bar/abc")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Bar not found")
}

func TestAPIBarsFilteredScenario(t *testing.T) {
	router := setupTestRouter(t, testSnapshot(), nil)

	w := doRequest(router, "/api/bars?query=alpha&preference=r")

	require.Equal(t, http.StatusOK, w.Code)

	var view model.BarMapView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	require.Len(t, view.Markers, 1)
	assert.Equal(t, "Alpha Bar", view.Markers[0].Name)
	assert.Equal(t, "orange", view.Markers[0].Color)
	assert.Equal(t, "lemon", view.Markers[0].Icon)
	assert.Equal(t, 1, view.BarCount)
	assert.Equal(t, 3, view.TotalBars)
}

func TestAPIBarsDegradedMode(t *testing.T) {
	loadErr := &model.LoadError{Kind: model.LoadErrorEmptyData, Source: "data/drinks.csv"}
	router := setupTestRouter(t, &model.Snapshot{}, loadErr)

	w := doRequest(router, "/api/bars")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "data_unavailable")
}

func TestHealthEndpoint(t *testing.T) {
	router := setupTestRouter(t, testSnapshot(), nil)

	w := doRequest(router, "/api/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)

	degraded := setupTestRouter(t, &model.Snapshot{}, &model.LoadError{Kind: model.LoadErrorMissingFile, Source: "data/bars.csv"})
	w = doRequest(degraded, "/api/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"degraded"`)
}

func TestRequestIDHeaderIsSet(t *testing.T) {
	router := setupTestRouter(t, testSnapshot(), nil)

	w := doRequest(router, "/api/health")

	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}
