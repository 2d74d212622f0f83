package application

import (
	"fmt"
	"strings"
	"time"

	"github.com/sanosuguru/go-homestay-booking/internal/domain/homestay"
	"github.com/sanosuguru/go-homestay-booking/internal/domain/tour"
)

// TourService はツアーの業務ルールを担うサービス
type TourService struct {
	tourRepo     tour.Repository
	homestayRepo homestay.Repository
}

// NewTourService はTourServiceを作成する
func NewTourService(tr tour.Repository, hr homestay.Repository) *TourService {
	return &TourService{tourRepo: tr, homestayRepo: hr}
}

// CreateTourInput はツアー作成の入力
type CreateTourInput struct {
	ID            string
	Name          string
	Duration      string
	Price         float64
	HomestayID    string
	DepartureDate time.Time
	EndDate       time.Time
	TouristCount  int
}

// CreateTour は業務検証付きでツアーを作成する
//
// 検証順序:
//  1. ホームステイが存在すること
//  2. 参加人数がホームステイの最大宿泊人数以内であること
//  3. 日付範囲が妥当であること
//  4. 同じホームステイの既存ツアーと期間が重ならないこと
func (s *TourService) CreateTour(input CreateTourInput) (*tour.Tour, error) {
	candidate, err := tour.New(input.ID, input.Name, input.Duration, input.Price,
		input.HomestayID, input.DepartureDate, input.EndDate, input.TouristCount, false)
	if err != nil {
		return nil, err
	}

	hs, err := s.homestayRepo.FindByID(candidate.HomestayID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", homestay.ErrHomestayNotFound, candidate.HomestayID)
	}

	if candidate.TouristCount > hs.MaxCapacity {
		return nil, fmt.Errorf("%w（最大%d名）", tour.ErrCapacityExceeded, hs.MaxCapacity)
	}

	if !candidate.HasValidDates() {
		return nil, tour.ErrInvalidDateRange
	}

	if s.tourRepo.HasTimeConflict(candidate) {
		return nil, tour.ErrTourOverlap
	}

	if err := s.tourRepo.Save(candidate); err != nil {
		return nil, err
	}
	return candidate, nil
}

// UpdateTourInput はツアー更新の入力
// 開催ホームステイは変更できない
type UpdateTourInput struct {
	ID            string
	Name          string
	Duration      string
	Price         float64
	DepartureDate time.Time
	EndDate       time.Time
	TouristCount  int
}

// UpdateTour は業務検証付きでツアーを更新する
// 日付が変わる場合は同じホームステイの他ツアー全件と重なりを再検査し、
// 衝突したツアーのIDをエラーに含める
func (s *TourService) UpdateTour(input UpdateTourInput) (*tour.Tour, error) {
	old, err := s.tourRepo.FindByID(input.ID)
	if err != nil {
		return nil, err
	}

	updated, err := tour.New(old.ID, input.Name, input.Duration, input.Price,
		old.HomestayID, input.DepartureDate, input.EndDate, input.TouristCount, old.Booked)
	if err != nil {
		return nil, err
	}

	hs, err := s.homestayRepo.FindByID(updated.HomestayID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", homestay.ErrHomestayNotFound, updated.HomestayID)
	}
	if updated.TouristCount > hs.MaxCapacity {
		return nil, fmt.Errorf("%w（最大%d名）", tour.ErrCapacityExceeded, hs.MaxCapacity)
	}

	datesChanged := !updated.DepartureDate.Equal(old.DepartureDate) || !updated.EndDate.Equal(old.EndDate)
	if datesChanged {
		for _, existing := range s.tourRepo.FindAll() {
			if strings.EqualFold(existing.ID, updated.ID) {
				continue
			}
			if updated.OverlapsWith(existing) {
				return nil, fmt.Errorf("%w: %s", tour.ErrTourOverlap, existing.ID)
			}
		}
	}

	if err := s.tourRepo.Update(updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// GetTour はIDからツアーを取得する
func (s *TourService) GetTour(id string) (*tour.Tour, error) {
	return s.tourRepo.FindByID(id)
}

// ListTours は全ツアーを返す
func (s *TourService) ListTours() []*tour.Tour {
	return s.tourRepo.FindAll()
}

// ListUpcomingToursByRevenue は出発日が未来のツアーを総額降順で返す
func (s *TourService) ListUpcomingToursByRevenue() []*tour.Tour {
	return s.tourRepo.FindUpcomingByRevenue()
}

// ListExpiredTours は出発日が過去のツアーを返す
func (s *TourService) ListExpiredTours() []*tour.Tour {
	return s.tourRepo.FindExpired()
}

// HomestayStat はホームステイごとの予約済み観光客数
type HomestayStat struct {
	HomestayName string
	TouristCount int
}

// Statistics はホームステイごとに予約済みツアーの参加人数を集計する
// 予約されていないツアー（AVAILABLEや未予約のEXPIRED）は集計に含めない
// 結果はホームステイの反復順で1施設1行
func (s *TourService) Statistics() []HomestayStat {
	homestays := s.homestayRepo.FindAll()
	stats := make([]HomestayStat, 0, len(homestays))
	for _, hs := range homestays {
		total := 0
		for _, t := range s.tourRepo.FindByHomestayID(hs.ID) {
			if t.Booked {
				total += t.TouristCount
			}
		}
		stats = append(stats, HomestayStat{HomestayName: hs.Name, TouristCount: total})
	}
	return stats
}
