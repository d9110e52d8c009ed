package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"LCW-App/internal/usecase"
)

// BarsAPIHandler 地図ページや外部クライアントが利用するJSON APIのハンドラー
type BarsAPIHandler struct {
	listUseCase usecase.BarListUseCase
	loadErr     error
}

// NewBarsAPIHandler BarsAPIHandlerの新しいインスタンスを作成
func NewBarsAPIHandler(listUseCase usecase.BarListUseCase, loadErr error) *BarsAPIHandler {
	return &BarsAPIHandler{
		listUseCase: listUseCase,
		loadErr:     loadErr,
	}
}

// GetBars GET /api/bars - 絞り込み結果のマーカー一覧と地図中心を返す
func (h *BarsAPIHandler) GetBars(c *gin.Context) {
	if h.loadErr != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "data_unavailable",
			"message": h.loadErr.Error(),
		})
		return
	}

	criteria := criteriaFromQuery(c)
	view := h.listUseCase.ListBars(c.Request.Context(), criteria)

	c.JSON(http.StatusOK, view)
}

// Health GET /api/health - ヘルスチェック
// 読み込み失敗中でもプロセスは応答し続けるため、劣化状態はステータス文字列で表す
func (h *BarsAPIHandler) Health(c *gin.Context) {
	status := "healthy"
	if h.loadErr != nil {
		status = "degraded"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  status,
		"service": "LCW-App",
	})
}
