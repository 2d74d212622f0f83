package homestay

import "strings"

// Homestay は宿泊施設エンティティを表す
// ツアー定員の上限を決める参照データであり、業務操作からは変更されない
type Homestay struct {
	ID          string // HS + 数字（HS0001）
	Name        string
	RoomCount   int
	Address     string
	MaxCapacity int // ツアー定員検証に使用する最大宿泊人数
}

// New は新しいホームステイを作成する
func New(id, name string, roomCount int, address string, maxCapacity int) (*Homestay, error) {
	h := &Homestay{
		ID:          strings.TrimSpace(id),
		Name:        strings.TrimSpace(name),
		RoomCount:   roomCount,
		Address:     strings.TrimSpace(address),
		MaxCapacity: maxCapacity,
	}
	if err := h.Validate(); err != nil {
		return nil, err
	}
	return h, nil
}

// Validate はホームステイの検証を行う
func (h *Homestay) Validate() error {
	if h.ID == "" {
		return ErrIDRequired
	}
	if h.Name == "" {
		return ErrNameRequired
	}
	if h.RoomCount <= 0 {
		return ErrInvalidRoomCount
	}
	if h.Address == "" {
		return ErrAddressRequired
	}
	if h.MaxCapacity < 0 {
		return ErrInvalidMaxCapacity
	}
	return nil
}
