package tour

import (
	"context"
	"time"
)

// Repository はツアーリポジトリのインターフェース
// 重なり判定や期限切れ抽出などの業務クエリも本インターフェースで公開し、
// 実装型へのダウンキャストを不要にする
type Repository interface {
	// FindAll は全ツアーを挿入順で返す（防御的コピー）
	FindAll() []*Tour

	// FindByID はIDからツアーを取得する（大文字小文字を区別しない）
	FindByID(id string) (*Tour, error)

	// FindByHomestayID は指定ホームステイのツアーを返す
	FindByHomestayID(homestayID string) []*Tour

	// FindDepartingAfter は出発日が指定日より後のツアーを総額降順で返す
	FindDepartingAfter(date time.Time) []*Tour

	// FindDepartingBefore は出発日が指定日より前のツアーを返す
	FindDepartingBefore(date time.Time) []*Tour

	// FindByBooked は予約状態が一致するツアーを返す
	FindByBooked(booked bool) []*Tour

	// FindUpcomingByRevenue は出発日が未来のツアーを総額降順で返す
	FindUpcomingByRevenue() []*Tour

	// FindExpired は出発日が過去のツアーを返す
	FindExpired() []*Tour

	// HasTimeConflict は候補ツアーが既存ツアーと期間衝突するかを返す
	HasTimeConflict(candidate *Tour) bool

	// Save は新しいツアーを追加する（ID重複は失敗）
	Save(t *Tour) error

	// Update は既存ツアーを置き換える（位置は保持）
	Update(t *Tour) error

	// Delete はIDに一致するツアーを削除し、削除の有無を返す
	Delete(id string) bool

	// Exists はIDの存在を確認する（大文字小文字を区別しない）
	Exists(id string) bool

	// Load はバッキングファイルからコレクションを再構築する
	Load(ctx context.Context) error

	// Flush は現在のコレクションをバッキングファイルへ全件書き出す
	Flush(ctx context.Context) error
}
