package textfile

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-homestay-booking/internal/domain/tour"
	"github.com/sanosuguru/go-homestay-booking/internal/pkg/logger"
)

// TourRepository はツアーリポジトリのテキストファイル実装
//
// 自動保存ワーカーからFlushが並行して呼ばれるため、全操作をRWMutexで保護する。
// 格納済みエンティティは置き換えでのみ更新し、FindByIDはコピーを返すので、
// 呼び出し側の変更が格納値に漏れることはない
type TourRepository struct {
	mu    sync.RWMutex
	path  string
	items []*tour.Tour
}

// NewTourRepository はTourRepositoryを作成する
func NewTourRepository(path string) *TourRepository {
	return &TourRepository{path: path}
}

// FindAll は全ツアーを挿入順で返す
func (r *TourRepository) FindAll() []*tour.Tour {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*tour.Tour, len(r.items))
	copy(out, r.items)
	return out
}

// FindByID はIDからツアーを取得する。返すのはコピー
func (r *TourRepository) FindByID(id string) (*tour.Tour, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.indexOf(id)
	if i < 0 {
		return nil, tour.ErrTourNotFound
	}
	t := *r.items[i]
	return &t, nil
}

// FindByHomestayID は指定ホームステイのツアーを返す
func (r *TourRepository) FindByHomestayID(homestayID string) []*tour.Tour {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*tour.Tour
	for _, t := range r.items {
		if strings.EqualFold(t.HomestayID, homestayID) {
			out = append(out, t)
		}
	}
	return out
}

// FindDepartingAfter は出発日が指定日より後のツアーを総額降順で返す
func (r *TourRepository) FindDepartingAfter(date time.Time) []*tour.Tour {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*tour.Tour
	for _, t := range r.items {
		if t.DepartureDate.After(date) {
			out = append(out, t)
		}
	}
	sortByTotalAmountDesc(out)
	return out
}

// FindDepartingBefore は出発日が指定日より前のツアーを返す
func (r *TourRepository) FindDepartingBefore(date time.Time) []*tour.Tour {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*tour.Tour
	for _, t := range r.items {
		if t.DepartureDate.Before(date) {
			out = append(out, t)
		}
	}
	return out
}

// FindByBooked は予約状態が一致するツアーを返す
func (r *TourRepository) FindByBooked(booked bool) []*tour.Tour {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*tour.Tour
	for _, t := range r.items {
		if t.Booked == booked {
			out = append(out, t)
		}
	}
	return out
}

// FindUpcomingByRevenue は出発日が未来のツアーを総額降順で返す
func (r *TourRepository) FindUpcomingByRevenue() []*tour.Tour {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*tour.Tour
	for _, t := range r.items {
		if t.IsUpcoming() {
			out = append(out, t)
		}
	}
	sortByTotalAmountDesc(out)
	return out
}

// FindExpired は出発日が過去のツアーを返す
func (r *TourRepository) FindExpired() []*tour.Tour {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*tour.Tour
	for _, t := range r.items {
		if t.IsExpired() {
			out = append(out, t)
		}
	}
	return out
}

// HasTimeConflict は候補ツアーが既存ツアーと期間衝突するかを返す
func (r *TourRepository) HasTimeConflict(candidate *tour.Tour) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, existing := range r.items {
		if existing.OverlapsWith(candidate) {
			return true
		}
	}
	return false
}

// Save は新しいツアーを追加する
func (r *TourRepository) Save(t *tour.Tour) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexOf(t.ID) >= 0 {
		return tour.ErrDuplicateID
	}
	r.items = append(r.items, t)
	return nil
}

// Update は既存ツアーを置き換える（位置は保持）
func (r *TourRepository) Update(t *tour.Tour) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(t.ID)
	if i < 0 {
		return tour.ErrTourNotFound
	}
	r.items[i] = t
	return nil
}

// Delete はIDに一致するツアーを削除する
func (r *TourRepository) Delete(id string) bool {
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
func (r *TourRepository) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.indexOf(id) >= 0
}

// indexOf はIDに一致する要素位置を返す（大文字小文字を区別しない）
// 呼び出し側でロックを保持していること
func (r *TourRepository) indexOf(id string) int {
	for i, t := range r.items {
		if strings.EqualFold(t.ID, id) {
			return i
		}
	}
	return -1
}

// Load はバッキングファイルからコレクションを再構築する
func (r *TourRepository) Load(ctx context.Context) error {
	lines, err := readLines(ctx, r.path)
	if err != nil {
		logger.Error("ツアーファイルの読み込みに失敗", zap.String("path", r.path), zap.Error(err))
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = r.items[:0]
	for _, line := range lines {
		t, err := decodeTourLine(line)
		if err != nil {
			if !errors.Is(err, errSkipLine) {
				logger.Warn("不正なツアー行をスキップ",
					zap.String("line", sanitizeLine(line)), zap.Error(err))
			}
			continue
		}
		r.items = append(r.items, t)
	}

	logger.Debug("ツアーを読み込み", zap.String("path", r.path), zap.Int("count", len(r.items)))
	return nil
}

// Flush は現在のコレクションをバッキングファイルへ全件書き出す
func (r *TourRepository) Flush(ctx context.Context) error {
	r.mu.RLock()
	lines := make([]string, 0, len(r.items))
	for _, t := range r.items {
		lines = append(lines, encodeTourLine(t))
	}
	r.mu.RUnlock()

	if err := writeLines(ctx, r.path, lines); err != nil {
		logger.Error("ツアーファイルの書き出しに失敗", zap.String("path", r.path), zap.Error(err))
		return err
	}
	return nil
}

func sortByTotalAmountDesc(tours []*tour.Tour) {
	sort.SliceStable(tours, func(i, j int) bool {
		return tours[i].TotalAmount() > tours[j].TotalAmount()
	})
}
