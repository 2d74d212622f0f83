package booking

import "context"

// Repository は予約リポジトリのインターフェース
type Repository interface {
	// FindAll は全予約を挿入順で返す（防御的コピー）
	FindAll() []*Booking

	// FindByID はIDから予約を取得する（大文字小文字を区別しない）
	FindByID(id string) (*Booking, error)

	// FindByTourID は指定ツアーを参照する予約を返す
	FindByTourID(tourID string) []*Booking

	// FindByCustomerName は顧客名の部分一致で予約を検索する（大文字小文字を区別しない）
	FindByCustomerName(name string) []*Booking

	// Save は新しい予約を追加する（ID重複は失敗）
	Save(b *Booking) error

	// Update は既存予約を置き換える（位置は保持）
	Update(b *Booking) error

	// Delete はIDに一致する予約を削除し、削除の有無を返す
	Delete(id string) bool

	// Exists はIDの存在を確認する（大文字小文字を区別しない）
	Exists(id string) bool

	// Load はバッキングファイルからコレクションを再構築する
	Load(ctx context.Context) error

	// Flush は現在のコレクションをバッキングファイルへ全件書き出す
	Flush(ctx context.Context) error
}
