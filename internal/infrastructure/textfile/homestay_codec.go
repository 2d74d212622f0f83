package textfile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sanosuguru/go-homestay-booking/internal/domain/homestay"
)

// decodeHomestayLine は1行をホームステイに変換する
// 形式: HomeID-HomeName-RoomNumber-Address-MaxCapacity
// 住所自体が区切り文字 "-" を含む場合があるため、余分な分割片は住所に連結し直す
func decodeHomestayLine(line string) (*homestay.Homestay, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, errSkipLine
	}

	parts := strings.Split(line, "-")
	if len(parts) < 5 {
		return nil, fmt.Errorf("フィールド数が不足しています（5必要、%d件）", len(parts))
	}

	id := strings.TrimSpace(parts[0])
	if id == "" || strings.EqualFold(id, "HomeID") {
		return nil, errSkipLine
	}

	name := strings.TrimSpace(parts[1])
	roomCount, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return nil, fmt.Errorf("部屋数の解析に失敗: %w", err)
	}

	address := strings.TrimSpace(parts[3])
	for i := 4; i < len(parts)-1; i++ {
		address += "-" + parts[i]
	}

	maxCapacity, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1]))
	if err != nil {
		return nil, fmt.Errorf("最大宿泊人数の解析に失敗: %w", err)
	}

	return &homestay.Homestay{
		ID:          id,
		Name:        name,
		RoomCount:   roomCount,
		Address:     address,
		MaxCapacity: maxCapacity,
	}, nil
}

// encodeHomestayLine はホームステイを1行に変換する
func encodeHomestayLine(h *homestay.Homestay) string {
	return fmt.Sprintf("%s-%s-%d-%s-%d", h.ID, h.Name, h.RoomCount, h.Address, h.MaxCapacity)
}
