package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-homestay-booking/internal/pkg/logger"
)

// Flusher はメモリ上のコレクションを永続化するインターフェース
type Flusher interface {
	Flush(ctx context.Context) error
}

// Autosaver は一定間隔で各リポジトリをファイルへ書き出すワーカー
// サービス層はメモリ上の整合性のみを保証し、永続化タイミングは本ワーカーと
// シャットダウン時の明示的なFlushに委ねる
type Autosaver struct {
	flushers []Flusher
	interval time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewAutosaver は新しいAutosaverを作成する
func NewAutosaver(interval time.Duration, flushers ...Flusher) *Autosaver {
	return &Autosaver{
		flushers: flushers,
		interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start は自動保存ループを開始する
func (a *Autosaver) Start(ctx context.Context) {
	logger.Info("自動保存ワーカー開始", zap.Duration("interval", a.interval))

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()
	defer close(a.doneCh)

	for {
		select {
		case <-ctx.Done():
			logger.Info("自動保存ワーカー停止（コンテキストキャンセル）")
			return
		case <-a.stopCh:
			logger.Info("自動保存ワーカー停止（シグナル受信）")
			return
		case <-ticker.C:
			a.flushAll(ctx)
		}
	}
}

// Stop はワーカーを停止し、ループの終了を待つ
func (a *Autosaver) Stop() {
	close(a.stopCh)
	<-a.doneCh
}

// flushAll は全リポジトリを書き出す。一部の失敗で残りは止めない
func (a *Autosaver) flushAll(ctx context.Context) {
	logger.Debug("自動保存開始")
	for _, f := range a.flushers {
		if err := f.Flush(ctx); err != nil {
			logger.Error("自動保存に失敗", zap.Error(err))
		}
	}
}
