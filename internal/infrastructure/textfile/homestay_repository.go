package textfile

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-homestay-booking/internal/domain/homestay"
	"github.com/sanosuguru/go-homestay-booking/internal/pkg/logger"
)

// HomestayRepository はホームステイリポジトリのテキストファイル実装
// コレクションはRWMutexで保護し、FindByIDはコピーを返す
type HomestayRepository struct {
	mu    sync.RWMutex
	path  string
	items []*homestay.Homestay
}

// NewHomestayRepository はHomestayRepositoryを作成する
func NewHomestayRepository(path string) *HomestayRepository {
	return &HomestayRepository{path: path}
}

// FindAll は全ホームステイを挿入順で返す
func (r *HomestayRepository) FindAll() []*homestay.Homestay {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*homestay.Homestay, len(r.items))
	copy(out, r.items)
	return out
}

// FindByID はIDからホームステイを取得する。返すのはコピー
func (r *HomestayRepository) FindByID(id string) (*homestay.Homestay, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.indexOf(id)
	if i < 0 {
		return nil, homestay.ErrHomestayNotFound
	}
	h := *r.items[i]
	return &h, nil
}

// FindByName は名前の部分一致でホームステイを検索する
func (r *HomestayRepository) FindByName(name string) []*homestay.Homestay {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*homestay.Homestay
	lower := strings.ToLower(name)
	for _, h := range r.items {
		if strings.Contains(strings.ToLower(h.Name), lower) {
			out = append(out, h)
		}
	}
	return out
}

// Save は新しいホームステイを追加する
func (r *HomestayRepository) Save(h *homestay.Homestay) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexOf(h.ID) >= 0 {
		return homestay.ErrDuplicateID
	}
	r.items = append(r.items, h)
	return nil
}

// Update は既存ホームステイを置き換える（位置は保持）
func (r *HomestayRepository) Update(h *homestay.Homestay) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(h.ID)
	if i < 0 {
		return homestay.ErrHomestayNotFound
	}
	r.items[i] = h
	return nil
}

// Delete はIDに一致するホームステイを削除する
func (r *HomestayRepository) Delete(id string) bool {
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
func (r *HomestayRepository) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.indexOf(id) >= 0
}

// indexOf はIDに一致する要素位置を返す（大文字小文字を区別しない）
// 呼び出し側でロックを保持していること
func (r *HomestayRepository) indexOf(id string) int {
	for i, h := range r.items {
		if strings.EqualFold(h.ID, id) {
			return i
		}
	}
	return -1
}

// Load はバッキングファイルからコレクションを再構築する
func (r *HomestayRepository) Load(ctx context.Context) error {
	lines, err := readLines(ctx, r.path)
	if err != nil {
		logger.Error("ホームステイファイルの読み込みに失敗", zap.String("path", r.path), zap.Error(err))
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = r.items[:0]
	for _, line := range lines {
		h, err := decodeHomestayLine(line)
		if err != nil {
			if !errors.Is(err, errSkipLine) {
				logger.Warn("不正なホームステイ行をスキップ",
					zap.String("line", sanitizeLine(line)), zap.Error(err))
			}
			continue
		}
		r.items = append(r.items, h)
	}

	logger.Debug("ホームステイを読み込み", zap.String("path", r.path), zap.Int("count", len(r.items)))
	return nil
}

// Flush は現在のコレクションをバッキングファイルへ全件書き出す
func (r *HomestayRepository) Flush(ctx context.Context) error {
	r.mu.RLock()
	lines := make([]string, 0, len(r.items))
	for _, h := range r.items {
		lines = append(lines, encodeHomestayLine(h))
	}
	r.mu.RUnlock()

	if err := writeLines(ctx, r.path, lines); err != nil {
		logger.Error("ホームステイファイルの書き出しに失敗", zap.String("path", r.path), zap.Error(err))
		return err
	}
	return nil
}
