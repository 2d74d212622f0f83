package homestay

import "errors"

// Homestay ドメインのエラー定義
var (
	ErrHomestayNotFound   = errors.New("ホームステイが見つかりません")
	ErrIDRequired         = errors.New("ホームステイIDは必須です")
	ErrNameRequired       = errors.New("ホームステイ名は必須です")
	ErrInvalidRoomCount   = errors.New("部屋数は1以上である必要があります")
	ErrAddressRequired    = errors.New("住所は必須です")
	ErrInvalidMaxCapacity = errors.New("最大宿泊人数は0以上である必要があります")
	ErrDuplicateID        = errors.New("同じIDのホームステイが既に存在します")
)
