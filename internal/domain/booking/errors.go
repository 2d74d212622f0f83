package booking

import "errors"

// Booking ドメインのエラー定義
var (
	ErrBookingNotFound      = errors.New("予約が見つかりません")
	ErrIDRequired           = errors.New("予約IDは必須です")
	ErrCustomerNameRequired = errors.New("顧客名は必須です")
	ErrTourIDRequired       = errors.New("ツアーIDは必須です")
	ErrBookingDateRequired  = errors.New("予約日は必須です")
	ErrPhoneRequired        = errors.New("電話番号は必須です")
	ErrDuplicateID          = errors.New("同じIDの予約が既に存在します")
	ErrBookingDateTooLate   = errors.New("予約日はツアー出発日より前である必要があります")
)
