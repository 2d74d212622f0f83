package booking

import (
	"strings"
	"time"
)

// Booking は顧客によるツアー予約エンティティを表す
// 1つのツアーには同時に1件の予約のみ成立する
type Booking struct {
	ID           string // B + 5桁（B00001）
	CustomerName string
	TourID       string // 予約対象ツアーへの外部キー（T00001）
	BookingDate  time.Time
	Phone        string
}

// New は新しい予約を作成する
func New(id, customerName, tourID string, bookingDate time.Time, phone string) (*Booking, error) {
	b := &Booking{
		ID:           strings.TrimSpace(id),
		CustomerName: strings.TrimSpace(customerName),
		TourID:       strings.TrimSpace(tourID),
		BookingDate:  bookingDate,
		Phone:        strings.TrimSpace(phone),
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Validate は予約の検証を行う
func (b *Booking) Validate() error {
	if b.ID == "" {
		return ErrIDRequired
	}
	if b.CustomerName == "" {
		return ErrCustomerNameRequired
	}
	if b.TourID == "" {
		return ErrTourIDRequired
	}
	if b.BookingDate.IsZero() {
		return ErrBookingDateRequired
	}
	if b.Phone == "" {
		return ErrPhoneRequired
	}
	return nil
}
