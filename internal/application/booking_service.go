package application

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-homestay-booking/internal/domain/booking"
	"github.com/sanosuguru/go-homestay-booking/internal/domain/tour"
	"github.com/sanosuguru/go-homestay-booking/internal/pkg/logger"
)

// BookingService は予約とツアー予約状態の同期を担うサービス
//
// 予約の追加・削除・更新は予約リポジトリとツアーリポジトリの両方に
// またがるため、単一のミューテックスで直列化する
type BookingService struct {
	mu          sync.Mutex
	bookingRepo booking.Repository
	tourRepo    tour.Repository
}

// NewBookingService はBookingServiceを作成する
func NewBookingService(br booking.Repository, tr tour.Repository) *BookingService {
	return &BookingService{bookingRepo: br, tourRepo: tr}
}

// CreateBookingInput は予約作成の入力
type CreateBookingInput struct {
	ID           string
	CustomerName string
	TourID       string
	BookingDate  time.Time
	Phone        string
}

// CreateBooking は業務検証付きで予約を作成する
//
// 検証順序:
//  1. ツアーが存在すること
//  2. ツアーが未予約であること（1ツアー1予約）
//  3. 予約日がツアー出発日より前であること
//
// 予約保存後にツアー側の更新が失敗した場合は、保存済みの予約を
// 削除して全体を失敗として返す（取り残された予約を残さない）
func (s *BookingService) CreateBooking(input CreateBookingInput) (*booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := booking.New(input.ID, input.CustomerName, input.TourID, input.BookingDate, input.Phone)
	if err != nil {
		return nil, err
	}

	t, err := s.tourRepo.FindByID(b.TourID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", tour.ErrTourNotFound, b.TourID)
	}

	if t.Booked {
		return nil, fmt.Errorf("%w: %s", tour.ErrAlreadyBooked, t.ID)
	}

	if !b.BookingDate.Before(t.DepartureDate) {
		return nil, booking.ErrBookingDateTooLate
	}

	if err := s.bookingRepo.Save(b); err != nil {
		return nil, err
	}

	t.Booked = true
	if err := s.tourRepo.Update(t); err != nil {
		t.Booked = false
		s.bookingRepo.Delete(b.ID)
		logger.Error("ツアー更新失敗により予約をロールバック",
			zap.String("booking_id", b.ID), zap.String("tour_id", t.ID), zap.Error(err))
		return nil, fmt.Errorf("ツアーの予約状態更新に失敗: %w", err)
	}

	return b, nil
}

// RemoveBooking は予約を削除し、参照先ツアーを利用可能に戻す
//
// ツアーの解放は予約削除の前に行う。参照先ツアーが既に存在しない
// 場合は解放をスキップするが、削除自体は失敗にしない
func (s *BookingService) RemoveBooking(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.bookingRepo.FindByID(id)
	if err != nil {
		return err
	}

	if t, err := s.tourRepo.FindByID(b.TourID); err == nil {
		t.Booked = false
		if err := s.tourRepo.Update(t); err != nil {
			logger.Warn("予約削除時のツアー解放に失敗",
				zap.String("booking_id", b.ID), zap.String("tour_id", t.ID), zap.Error(err))
		}
	}

	if !s.bookingRepo.Delete(b.ID) {
		return booking.ErrBookingNotFound
	}
	return nil
}

// UpdateBookingInput は予約更新の入力
type UpdateBookingInput struct {
	ID           string
	CustomerName string
	TourID       string
	BookingDate  time.Time
	Phone        string
}

// UpdateBooking は業務検証付きで予約を更新する
//
// ツアーが変わる場合は旧ツアーを解放してから新ツアーを確保する。
// 新ツアーが確保できないときは旧ツアーの解放を取り消してから
// 失敗を返す（補償アクション）
func (s *BookingService) UpdateBooking(input UpdateBookingInput) (*booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, err := s.bookingRepo.FindByID(input.ID)
	if err != nil {
		return nil, err
	}

	updated, err := booking.New(old.ID, input.CustomerName, input.TourID, input.BookingDate, input.Phone)
	if err != nil {
		return nil, err
	}

	if !strings.EqualFold(old.TourID, updated.TourID) {
		oldTour, oldTourErr := s.tourRepo.FindByID(old.TourID)
		if oldTourErr == nil {
			oldTour.Booked = false
			if err := s.tourRepo.Update(oldTour); err != nil {
				return nil, fmt.Errorf("旧ツアーの解放に失敗: %w", err)
			}
		}

		newTour, err := s.tourRepo.FindByID(updated.TourID)
		if err != nil {
			s.relockOldTour(oldTour, oldTourErr)
			return nil, fmt.Errorf("%w: %s", tour.ErrTourNotFound, updated.TourID)
		}
		if newTour.Booked {
			s.relockOldTour(oldTour, oldTourErr)
			return nil, fmt.Errorf("%w: %s", tour.ErrAlreadyBooked, newTour.ID)
		}

		newTour.Booked = true
		if err := s.tourRepo.Update(newTour); err != nil {
			s.relockOldTour(oldTour, oldTourErr)
			return nil, fmt.Errorf("新ツアーの確保に失敗: %w", err)
		}
	}

	if err := s.bookingRepo.Update(updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// relockOldTour は予約更新の失敗経路で旧ツアーの解放を取り消す
func (s *BookingService) relockOldTour(oldTour *tour.Tour, oldTourErr error) {
	if oldTourErr != nil || oldTour == nil {
		return
	}
	oldTour.Booked = true
	if err := s.tourRepo.Update(oldTour); err != nil {
		logger.Error("旧ツアーの再確保に失敗", zap.String("tour_id", oldTour.ID), zap.Error(err))
	}
}

// GetBooking はIDから予約を取得する
func (s *BookingService) GetBooking(id string) (*booking.Booking, error) {
	return s.bookingRepo.FindByID(id)
}

// ListBookings は全予約を返す
func (s *BookingService) ListBookings() []*booking.Booking {
	return s.bookingRepo.FindAll()
}

// SearchBookingsByCustomerName は顧客名の部分一致で予約を検索する
func (s *BookingService) SearchBookingsByCustomerName(name string) []*booking.Booking {
	return s.bookingRepo.FindByCustomerName(name)
}
