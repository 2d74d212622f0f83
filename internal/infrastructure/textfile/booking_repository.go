package textfile

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-homestay-booking/internal/domain/booking"
	"github.com/sanosuguru/go-homestay-booking/internal/pkg/logger"
)

// BookingRepository は予約リポジトリのテキストファイル実装
// コレクションはRWMutexで保護し、FindByIDはコピーを返す
type BookingRepository struct {
	mu    sync.RWMutex
	path  string
	items []*booking.Booking
}

// NewBookingRepository はBookingRepositoryを作成する
func NewBookingRepository(path string) *BookingRepository {
	return &BookingRepository{path: path}
}

// FindAll は全予約を挿入順で返す
func (r *BookingRepository) FindAll() []*booking.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*booking.Booking, len(r.items))
	copy(out, r.items)
	return out
}

// FindByID はIDから予約を取得する。返すのはコピー
func (r *BookingRepository) FindByID(id string) (*booking.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.indexOf(id)
	if i < 0 {
		return nil, booking.ErrBookingNotFound
	}
	b := *r.items[i]
	return &b, nil
}

// FindByTourID は指定ツアーを参照する予約を返す
func (r *BookingRepository) FindByTourID(tourID string) []*booking.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*booking.Booking
	for _, b := range r.items {
		if strings.EqualFold(b.TourID, tourID) {
			out = append(out, b)
		}
	}
	return out
}

// FindByCustomerName は顧客名の部分一致で予約を検索する
func (r *BookingRepository) FindByCustomerName(name string) []*booking.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*booking.Booking
	lower := strings.ToLower(name)
	for _, b := range r.items {
		if strings.Contains(strings.ToLower(b.CustomerName), lower) {
			out = append(out, b)
		}
	}
	return out
}

// Save は新しい予約を追加する
func (r *BookingRepository) Save(b *booking.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexOf(b.ID) >= 0 {
		return booking.ErrDuplicateID
	}
	r.items = append(r.items, b)
	return nil
}

// Update は既存予約を置き換える（位置は保持）
func (r *BookingRepository) Update(b *booking.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(b.ID)
	if i < 0 {
		return booking.ErrBookingNotFound
	}
	r.items[i] = b
	return nil
}

// Delete はIDに一致する予約を削除する
func (r *BookingRepository) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return false
	}
	r.items = append(r.items[:i], r.items[i+1:]...)
	return true
}

// Exists はIDの存在を確認する
func (r *BookingRepository) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.indexOf(id) >= 0
}

// indexOf はIDに一致する要素位置を返す（大文字小文字を区別しない）
// 呼び出し側でロックを保持していること
func (r *BookingRepository) indexOf(id string) int {
	for i, b := range r.items {
		if strings.EqualFold(b.ID, id) {
			return i
		}
	}
	return -1
}

// Load はバッキングファイルからコレクションを再構築する
func (r *BookingRepository) Load(ctx context.Context) error {
	lines, err := readLines(ctx, r.path)
	if err != nil {
		logger.Error("予約ファイルの読み込みに失敗", zap.String("path", r.path), zap.Error(err))
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = r.items[:0]
	for _, line := range lines {
		b, err := decodeBookingLine(line)
		if err != nil {
			if !errors.Is(err, errSkipLine) {
				logger.Warn("不正な予約行をスキップ",
					zap.String("line", sanitizeLine(line)), zap.Error(err))
			}
			continue
		}
		r.items = append(r.items, b)
	}

	logger.Debug("予約を読み込み", zap.String("path", r.path), zap.Int("count", len(r.items)))
	return nil
}

// Flush は現在のコレクションをバッキングファイルへ全件書き出す
func (r *BookingRepository) Flush(ctx context.Context) error {
	r.mu.RLock()
	lines := make([]string, 0, len(r.items))
	for _, b := range r.items {
		lines = append(lines, encodeBookingLine(b))
	}
	r.mu.RUnlock()

	if err := writeLines(ctx, r.path, lines); err != nil {
		logger.Error("予約ファイルの書き出しに失敗", zap.String("path", r.path), zap.Error(err))
		return err
	}
	return nil
}
