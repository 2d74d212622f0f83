package textfile

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-homestay-booking/internal/domain/booking"
	"github.com/sanosuguru/go-homestay-booking/internal/pkg/logger"
)

// decodeBookingLine は1行を予約に変換する
// 形式: BookingID,FullName,TourID,BookingDate,Phone
// 予約日は標準形式を優先し、旧データ向けにISO形式（yyyy-MM-dd）も受け付ける
func decodeBookingLine(line string) (*booking.Booking, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, errSkipLine
	}

	parts := strings.Split(line, ",")
	if len(parts) < 5 {
		return nil, fmt.Errorf("フィールド数が不足しています（5必要、%d件）", len(parts))
	}

	id := strings.TrimSpace(parts[0])
	if id == "" || strings.EqualFold(id, "BookingID") {
		return nil, errSkipLine
	}

	date, err := parseDateWithFallback(parts[3])
	if err != nil {
		return nil, fmt.Errorf("予約日の解析に失敗（%s形式が必要）: %w", DateLayout, err)
	}

	return &booking.Booking{
		ID:           id,
		CustomerName: strings.TrimSpace(parts[1]),
		TourID:       strings.TrimSpace(parts[2]),
		BookingDate:  date,
		Phone:        strings.TrimSpace(parts[4]),
	}, nil
}

// encodeBookingLine は予約を1行に変換する
// 予約日は常に標準形式で書き出す（ISO形式は読み込み時のみ）
func encodeBookingLine(b *booking.Booking) string {
	if b.BookingDate.IsZero() {
		logger.Error("予約のエンコードに失敗", zap.String("booking_id", b.ID))
		return b.ID + ",ERROR,ERROR,ERROR,ERROR"
	}
	return fmt.Sprintf("%s,%s,%s,%s,%s",
		b.ID, b.CustomerName, b.TourID, b.BookingDate.Format(DateLayout), b.Phone)
}
