package tour

import (
	"strings"
	"time"
)

// Status はツアーの状態を表す
type Status string

const (
	StatusAvailable Status = "Available"
	StatusBooked    Status = "Booked"
	StatusExpired   Status = "Expired"
)

// MaxDurationDays はツアー期間の上限（日数）
const MaxDurationDays = 30

// Tour はツアーエンティティを表す
type Tour struct {
	ID            string // T + 5桁（T00001）
	Name          string
	Duration      string // "N days M nights" 形式、M == N-1
	Price         float64
	HomestayID    string // 開催ホームステイへの外部キー（HS0001）
	DepartureDate time.Time
	EndDate       time.Time
	TouristCount  int
	Booked        bool
}

// New は新しいツアーを作成する
func New(id, name, duration string, price float64, homestayID string, departureDate, endDate time.Time, touristCount int, booked bool) (*Tour, error) {
	t := &Tour{
		ID:            strings.TrimSpace(id),
		Name:          strings.TrimSpace(name),
		Duration:      strings.TrimSpace(duration),
		Price:         price,
		HomestayID:    strings.TrimSpace(homestayID),
		DepartureDate: departureDate,
		EndDate:       endDate,
		TouristCount:  touristCount,
		Booked:        booked,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate はツアーの検証を行う
func (t *Tour) Validate() error {
	if t.ID == "" {
		return ErrIDRequired
	}
	if t.Name == "" {
		return ErrNameRequired
	}
	if err := ValidateDuration(t.Duration); err != nil {
		return err
	}
	if t.Price < 0 {
		return ErrInvalidPrice
	}
	if t.HomestayID == "" {
		return ErrHomestayIDRequired
	}
	if t.DepartureDate.IsZero() || t.EndDate.IsZero() {
		return ErrDateRequired
	}
	if !t.HasValidDates() {
		return ErrInvalidDateRange
	}
	if t.TouristCount < 0 {
		return ErrInvalidTouristCount
	}
	return nil
}

// TotalAmount は総額を返す（単価 × 人数）
func (t *Tour) TotalAmount() float64 {
	return t.Price * float64(t.TouristCount)
}

// HasValidDates は日付範囲が妥当かを返す
// 出発日は終了日より前、かつ期間は最大30日まで
func (t *Tour) HasValidDates() bool {
	if !t.DepartureDate.Before(t.EndDate) {
		return false
	}
	return t.EndDate.Sub(t.DepartureDate) <= MaxDurationDays*24*time.Hour
}

// IsExpired は出発日が過去かを返す
func (t *Tour) IsExpired() bool {
	return t.DepartureDate.Before(today())
}

// IsUpcoming は出発日が未来かを返す
func (t *Tour) IsUpcoming() bool {
	return t.DepartureDate.After(today())
}

// CurrentStatus は現在のツアー状態を返す
// 優先順位: EXPIRED > BOOKED > AVAILABLE
func (t *Tour) CurrentStatus() Status {
	if t.IsExpired() {
		return StatusExpired
	}
	if t.Booked {
		return StatusBooked
	}
	return StatusAvailable
}

// OverlapsWith は同一ホームステイの別ツアーと期間が重なるかを返す
// 閉区間判定: (A.departure <= B.end) && (B.departure <= A.end)
// あるツアーの終了日に別のツアーが出発する場合も重なりとみなす
func (t *Tour) OverlapsWith(other *Tour) bool {
	if other == nil || !strings.EqualFold(t.HomestayID, other.HomestayID) {
		return false
	}
	return !t.DepartureDate.After(other.EndDate) && !other.DepartureDate.After(t.EndDate)
}

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
