package homestay

import "context"

// Repository はホームステイリポジトリのインターフェース
type Repository interface {
	// FindAll は全ホームステイを挿入順で返す（防御的コピー）
	FindAll() []*Homestay

	// FindByID はIDからホームステイを取得する（大文字小文字を区別しない）
	FindByID(id string) (*Homestay, error)

	// FindByName は名前の部分一致でホームステイを検索する（大文字小文字を区別しない）
	FindByName(name string) []*Homestay

	// Save は新しいホームステイを追加する（ID重複は失敗）
	Save(h *Homestay) error

	// Update は既存ホームステイを置き換える（位置は保持）
	Update(h *Homestay) error

	// Delete はIDに一致するホームステイを削除し、削除の有無を返す
	Delete(id string) bool

	// Exists はIDの存在を確認する（大文字小文字を区別しない）
	Exists(id string) bool

	// Load はバッキングファイルからコレクションを再構築する
	Load(ctx context.Context) error

	// Flush は現在のコレクションをバッキングファイルへ全件書き出す
	Flush(ctx context.Context) error
}
