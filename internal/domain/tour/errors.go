package tour

import "errors"

// Tour ドメインのエラー定義
var (
	ErrTourNotFound          = errors.New("ツアーが見つかりません")
	ErrIDRequired            = errors.New("ツアーIDは必須です")
	ErrNameRequired          = errors.New("ツアー名は必須です")
	ErrInvalidDurationFormat = errors.New("期間は 'N days M nights' 形式である必要があります")
	ErrInvalidDurationLogic  = errors.New("期間ラベルの泊数が不正です")
	ErrInvalidPrice          = errors.New("価格は0以上である必要があります")
	ErrHomestayIDRequired    = errors.New("ホームステイIDは必須です")
	ErrDateRequired          = errors.New("出発日と終了日は必須です")
	ErrInvalidDateRange      = errors.New("出発日は終了日より前で、期間は30日以内である必要があります")
	ErrInvalidTouristCount   = errors.New("参加人数は0以上である必要があります")
	ErrDuplicateID           = errors.New("同じIDのツアーが既に存在します")
	ErrCapacityExceeded      = errors.New("参加人数がホームステイの最大宿泊人数を超えています")
	ErrTourOverlap           = errors.New("同じホームステイの既存ツアーと期間が重なっています")
	ErrAlreadyBooked         = errors.New("ツアーは既に予約されています")
)
