package textfile

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-homestay-booking/internal/domain/tour"
	"github.com/sanosuguru/go-homestay-booking/internal/pkg/logger"
)

// decodeTourLine は1行をツアーに変換する
// 形式: TourID,TourName,Duration,Price,HomeID,DepartureDate,EndDate,TouristCount,IsBooked
func decodeTourLine(line string) (*tour.Tour, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, errSkipLine
	}

	parts := strings.Split(line, ",")
	if len(parts) < 9 {
		return nil, fmt.Errorf("フィールド数が不足しています（9必要、%d件）", len(parts))
	}

	id := strings.TrimSpace(parts[0])
	if id == "" || strings.EqualFold(id, "TourID") {
		return nil, errSkipLine
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
	if err != nil {
		return nil, fmt.Errorf("価格の解析に失敗: %w", err)
	}

	departureDate, err := parseDate(parts[5])
	if err != nil {
		return nil, fmt.Errorf("出発日の解析に失敗（%s形式が必要）: %w", DateLayout, err)
	}
	endDate, err := parseDate(parts[6])
	if err != nil {
		return nil, fmt.Errorf("終了日の解析に失敗（%s形式が必要）: %w", DateLayout, err)
	}

	touristCount, err := strconv.Atoi(strings.TrimSpace(parts[7]))
	if err != nil {
		return nil, fmt.Errorf("参加人数の解析に失敗: %w", err)
	}

	booked := strings.EqualFold(strings.TrimSpace(parts[8]), "true")

	return &tour.Tour{
		ID:            id,
		Name:          strings.TrimSpace(parts[1]),
		Duration:      strings.TrimSpace(parts[2]),
		Price:         price,
		HomestayID:    strings.TrimSpace(parts[4]),
		DepartureDate: departureDate,
		EndDate:       endDate,
		TouristCount:  touristCount,
		Booked:        booked,
	}, nil
}

// encodeTourLine はツアーを1行に変換する
// 日付が欠けた不正レコードでもファイル全体の保存を止めないよう、ERRORプレースホルダーで埋める
func encodeTourLine(t *tour.Tour) string {
	if t.DepartureDate.IsZero() || t.EndDate.IsZero() {
		logger.Error("ツアーのエンコードに失敗", zap.String("tour_id", t.ID))
		return t.ID + ",ERROR,ERROR,ERROR,ERROR,ERROR,ERROR,ERROR,ERROR"
	}
	return fmt.Sprintf("%s,%s,%s,%.1f,%s,%s,%s,%d,%s",
		t.ID, t.Name, t.Duration, t.Price, t.HomestayID,
		t.DepartureDate.Format(DateLayout), t.EndDate.Format(DateLayout),
		t.TouristCount, formatBool(t.Booked))
}
