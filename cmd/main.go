package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"LCW-App/internal/config"
	"LCW-App/internal/domain/model"
	"LCW-App/internal/domain/repository"
	"LCW-App/internal/domain/service"
	"LCW-App/internal/handler"
	repoImpl "LCW-App/internal/repository"
	"LCW-App/internal/usecase"
	"LCW-App/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗: %v", err)
	}

	if err := logger.Setup(cfg.LogLevel, cfg.LogDir); err != nil {
		log.Fatalf("ロガーの初期化に失敗: %v", err)
	}

	log.Info("London Cocktail Week 2025 server initializing...")

	// データセットは起動時に一度だけ読み込む（再読み込みは再起動で行う）
	var datasetRepo repository.DatasetRepository = repoImpl.NewCSVDatasetRepository(cfg.BarsCSVPath, cfg.DrinksCSVPath)
	snapshot, loadErr := datasetRepo.Load(context.Background())
	if loadErr != nil {
		// 読み込み失敗でもプロセスは落とさず、劣化モードで応答し続ける
		log.Errorf("⚠️ データ読み込みに失敗、劣化モードで起動します: %v", loadErr)
	} else {
		log.Infof("✅ Bars loaded: %d. Drinks loaded: %d.", len(snapshot.Bars), len(snapshot.Drinks))
	}

	router := setupRouter(snapshot, loadErr)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Infof("LCW-App server starting on :%d...", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced shutdown: %v", err)
	}
	log.Info("Server stopped gracefully")
}

// setupRouter 依存関係を組み立ててGinルーターを設定する
// snapshot と loadErr は起動時に一度だけ作られ、ハンドラーへ明示的に注入される
func setupRouter(snapshot *model.Snapshot, loadErr error) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.LoadHTMLGlob("templates/*.html")

	// Dependency injection
	filterService := service.NewBarFilterService()
	mapViewService := service.NewMapViewService()
	listUseCase := usecase.NewBarListUseCase(snapshot, filterService, mapViewService)
	detailUseCase := usecase.NewBarDetailUseCase(snapshot)

	pagesHandler := handler.NewPagesHandler(listUseCase, detailUseCase, loadErr)
	apiHandler := handler.NewBarsAPIHandler(listUseCase, loadErr)

	handler.SetupRoutes(r, pagesHandler, apiHandler)
	return r
}
