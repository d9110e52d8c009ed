package handler

import (
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"LCW-App/internal/domain/model"
	"LCW-App/internal/usecase"
)

// PagesHandler HTMLページを返すハンドラー
type PagesHandler struct {
	listUseCase   usecase.BarListUseCase
	detailUseCase usecase.BarDetailUseCase
	loadErr       error // 起動時の読み込みエラー（nil なら健全）
}

// NewPagesHandler PagesHandlerの新しいインスタンスを作成
func NewPagesHandler(listUseCase usecase.BarListUseCase, detailUseCase usecase.BarDetailUseCase, loadErr error) *PagesHandler {
	return &PagesHandler{
		listUseCase:   listUseCase,
		detailUseCase: detailUseCase,
		loadErr:       loadErr,
	}
}

// Index GET / - 絞り込みフォームと地図付きの一覧ページ
func (h *PagesHandler) Index(c *gin.Context) {
	// 読み込みに失敗している場合は劣化モード: 全リクエストにテキストで応答する
	if h.loadErr != nil {
		c.String(http.StatusOK, "⚠️ London Cocktail Week 2025! %s", h.loadErr.Error())
		return
	}

	criteria := criteriaFromQuery(c)
	view := h.listUseCase.ListBars(c.Request.Context(), criteria)

	// Leaflet 側でそのまま使えるようマーカーをJSONで埋め込む
	markersJSON, err := json.Marshal(view.Markers)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to render map")
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"title":       "London Cocktail Week 2025",
		"query":       criteria.Query,
		"preference":  strings.ToLower(strings.TrimSpace(c.Query("preference"))),
		"barCount":    view.BarCount,
		"totalBars":   view.TotalBars,
		"totalDrinks": view.TotalDrinks,
		"center":      view.Center,
		"markersJSON": template.JS(markersJSON),
	})
}

// BarDetail GET /bar/:id - バーの詳細ページ
func (h *PagesHandler) BarDetail(c *gin.Context) {
	if h.loadErr != nil {
		c.String(http.StatusOK, "⚠️ London Cocktail Week 2025! %s", h.loadErr.Error())
		return
	}

	// 行番号はデータセット読み込み時のインデックス。数値以外は存在しないキー扱い
	index, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "Bar not found")
		return
	}

	detail, err := h.detailUseCase.GetBarDetail(c.Request.Context(), index)
	if err != nil {
		if errors.Is(err, model.ErrBarNotFound) {
			c.String(http.StatusNotFound, "Bar not found")
			return
		}
		c.String(http.StatusInternalServerError, "Failed to load bar")
		return
	}

	c.HTML(http.StatusOK, "bar.html", gin.H{
		"title": detail.Bar.Name + " | London Cocktail Week 2025",
		"index": detail.Index,
		"bar":   detail.Bar,
		"hours": detail.Bar.HoursByDay(),
	})
}

// criteriaFromQuery クエリパラメータから絞り込み条件を組み立てる
// 不正な preference 値は ParsePreferenceCategory 側で「絞り込みなし」に落ちる
func criteriaFromQuery(c *gin.Context) model.FilterCriteria {
	return model.FilterCriteria{
		Query:      strings.TrimSpace(c.Query("query")),
		Preference: model.ParsePreferenceCategory(c.Query("preference")),
	}
}
