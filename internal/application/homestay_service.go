package application

import (
	"github.com/sanosuguru/go-homestay-booking/internal/domain/homestay"
)

// HomestayService はホームステイの参照系ユースケースを提供する
// ホームステイは参照データであり、業務操作からは作成・更新されない
type HomestayService struct {
	homestayRepo homestay.Repository
}

// NewHomestayService はHomestayServiceを作成する
func NewHomestayService(hr homestay.Repository) *HomestayService {
	return &HomestayService{homestayRepo: hr}
}

// ListHomestays は全ホームステイを返す
func (s *HomestayService) ListHomestays() []*homestay.Homestay {
	return s.homestayRepo.FindAll()
}

// GetHomestay はIDからホームステイを取得する
func (s *HomestayService) GetHomestay(id string) (*homestay.Homestay, error) {
	return s.homestayRepo.FindByID(id)
}

// SearchHomestaysByName は名前の部分一致でホームステイを検索する
func (s *HomestayService) SearchHomestaysByName(name string) []*homestay.Homestay {
	return s.homestayRepo.FindByName(name)
}
