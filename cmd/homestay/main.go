package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/sanosuguru/go-homestay-booking/internal/application"
	"github.com/sanosuguru/go-homestay-booking/internal/cli"
	"github.com/sanosuguru/go-homestay-booking/internal/config"
	"github.com/sanosuguru/go-homestay-booking/internal/infrastructure/textfile"
	"github.com/sanosuguru/go-homestay-booking/internal/pkg/logger"
	"github.com/sanosuguru/go-homestay-booking/internal/worker"
)

func main() {
	// .env があれば読み込む（なくてもよい）
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.NewLogger(cfg.Env).With(zap.String("session_id", uuid.NewString()))
	logger.Set(log)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// リポジトリ初期化とデータ読み込み
	homestayRepo := textfile.NewHomestayRepository(cfg.Storage.HomestayPath())
	tourRepo := textfile.NewTourRepository(cfg.Storage.TourPath())
	bookingRepo := textfile.NewBookingRepository(cfg.Storage.BookingPath())

	for _, load := range []func(context.Context) error{
		homestayRepo.Load, tourRepo.Load, bookingRepo.Load,
	} {
		if err := load(ctx); err != nil {
			logger.Warn("データ読み込みに失敗（空のコレクションで継続）", zap.Error(err))
		}
	}

	homestayService := application.NewHomestayService(homestayRepo)
	tourService := application.NewTourService(tourRepo, homestayRepo)
	bookingService := application.NewBookingService(bookingRepo, tourRepo)

	// 自動保存ワーカー
	// ホームステイは参照データなので書き出し対象に含めない
	var autosaver *worker.Autosaver
	if cfg.Autosave.Enabled {
		autosaver = worker.NewAutosaver(cfg.Autosave.Interval, tourRepo, bookingRepo)
		go autosaver.Start(ctx)
	}

	menu := cli.NewMenu(homestayService, tourService, bookingService,
		cli.NewInputter(os.Stdin, os.Stdout), os.Stdout)
	if err := menu.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("メニューループが異常終了", zap.Error(err))
	}

	if autosaver != nil {
		autosaver.Stop()
	}

	// 終了時に全データを書き出す
	flushCtx := context.Background()
	if err := tourRepo.Flush(flushCtx); err != nil {
		logger.Error("ツアーの保存に失敗", zap.Error(err))
	}
	if err := bookingRepo.Flush(flushCtx); err != nil {
		logger.Error("予約の保存に失敗", zap.Error(err))
	}

	logger.Info("正常に終了しました")
}
