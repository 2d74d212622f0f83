package textfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanosuguru/go-homestay-booking/internal/domain/booking"
	"github.com/sanosuguru/go-homestay-booking/internal/domain/homestay"
	"github.com/sanosuguru/go-homestay-booking/internal/domain/tour"
)

func newTestTour(id, homestayID string, departure, end [3]int, count int, booked bool) *tour.Tour {
	return &tour.Tour{
		ID:            id,
		Name:          "テストツアー " + id,
		Duration:      "3 days 2 nights",
		Price:         100.0,
		HomestayID:    homestayID,
		DepartureDate: date(departure[0], time.Month(departure[1]), departure[2]),
		EndDate:       date(end[0], time.Month(end[1]), end[2]),
		TouristCount:  count,
		Booked:        booked,
	}
}

func TestTourRepository_CRUD(t *testing.T) {
	repo := NewTourRepository(filepath.Join(t.TempDir(), "Tours.txt"))
	t1 := newTestTour("T00001", "HS0001", [3]int{2030, 12, 10}, [3]int{2030, 12, 12}, 5, false)

	// Save
	require.NoError(t, repo.Save(t1))
	assert.ErrorIs(t, repo.Save(t1), tour.ErrDuplicateID)

	// FindByID は大文字小文字を区別しない
	found, err := repo.FindByID("t00001")
	require.NoError(t, err)
	assert.Equal(t, "T00001", found.ID)

	_, err = repo.FindByID("T99999")
	assert.ErrorIs(t, err, tour.ErrTourNotFound)

	// Update
	t1b := newTestTour("T00001", "HS0001", [3]int{2030, 12, 10}, [3]int{2030, 12, 12}, 8, true)
	require.NoError(t, repo.Update(t1b))
	found, err = repo.FindByID("T00001")
	require.NoError(t, err)
	assert.Equal(t, 8, found.TouristCount)

	missing := newTestTour("T99999", "HS0001", [3]int{2030, 12, 20}, [3]int{2030, 12, 22}, 3, false)
	assert.ErrorIs(t, repo.Update(missing), tour.ErrTourNotFound)

	// Exists / Delete
	assert.True(t, repo.Exists("T00001"))
	assert.True(t, repo.Delete("t00001"))
	assert.False(t, repo.Delete("T00001"))
	assert.False(t, repo.Exists("T00001"))
}

func TestTourRepository_UpdatePreservesPosition(t *testing.T) {
	repo := NewTourRepository(filepath.Join(t.TempDir(), "Tours.txt"))
	require.NoError(t, repo.Save(newTestTour("T00001", "HS0001", [3]int{2030, 1, 1}, [3]int{2030, 1, 3}, 1, false)))
	require.NoError(t, repo.Save(newTestTour("T00002", "HS0002", [3]int{2030, 2, 1}, [3]int{2030, 2, 3}, 2, false)))
	require.NoError(t, repo.Save(newTestTour("T00003", "HS0003", [3]int{2030, 3, 1}, [3]int{2030, 3, 3}, 3, false)))

	require.NoError(t, repo.Update(newTestTour("T00002", "HS0002", [3]int{2030, 2, 5}, [3]int{2030, 2, 7}, 9, false)))

	all := repo.FindAll()
	require.Len(t, all, 3)
	assert.Equal(t, []string{"T00001", "T00002", "T00003"}, []string{all[0].ID, all[1].ID, all[2].ID})
	assert.Equal(t, 9, all[1].TouristCount)
}

func TestTourRepository_FindAllReturnsCopy(t *testing.T) {
	repo := NewTourRepository(filepath.Join(t.TempDir(), "Tours.txt"))
	require.NoError(t, repo.Save(newTestTour("T00001", "HS0001", [3]int{2030, 12, 10}, [3]int{2030, 12, 12}, 5, false)))

	all := repo.FindAll()
	all[0] = nil

	// 呼び出し側でスライスを壊してもリポジトリには影響しない
	assert.NotNil(t, repo.FindAll()[0])
}

func TestTourRepository_Queries(t *testing.T) {
	repo := NewTourRepository(filepath.Join(t.TempDir(), "Tours.txt"))
	// 総額: T00001=500, T00002=300, T00003=900
	a := newTestTour("T00001", "HS0001", [3]int{2030, 12, 10}, [3]int{2030, 12, 12}, 5, true)
	b := newTestTour("T00002", "HS0001", [3]int{2030, 12, 20}, [3]int{2030, 12, 22}, 3, false)
	c := newTestTour("T00003", "HS0002", [3]int{2030, 12, 10}, [3]int{2030, 12, 12}, 9, false)
	for _, tr := range []*tour.Tour{a, b, c} {
		require.NoError(t, repo.Save(tr))
	}

	assert.Len(t, repo.FindByHomestayID("hs0001"), 2)
	assert.Len(t, repo.FindByBooked(true), 1)
	assert.Len(t, repo.FindByBooked(false), 2)

	// 出発日が指定日より後のツアーは総額降順
	after := repo.FindDepartingAfter(date(2030, 12, 1))
	require.Len(t, after, 3)
	assert.Equal(t, "T00003", after[0].ID)
	assert.Equal(t, "T00001", after[1].ID)
	assert.Equal(t, "T00002", after[2].ID)

	assert.Empty(t, repo.FindDepartingBefore(date(2030, 12, 1)))

	// 期間衝突（同ホームステイのみ）
	conflicting := newTestTour("T00004", "HS0001", [3]int{2030, 12, 12}, [3]int{2030, 12, 14}, 2, false)
	assert.True(t, repo.HasTimeConflict(conflicting))
	otherHome := newTestTour("T00005", "HS0009", [3]int{2030, 12, 10}, [3]int{2030, 12, 12}, 2, false)
	assert.False(t, repo.HasTimeConflict(otherHome))
}

func TestTourRepository_LoadAndFlush(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Tours.txt")
	repo := NewTourRepository(path)
	ctx := context.Background()

	// 存在しないファイルの読み込みは空コレクションで成功する
	require.NoError(t, repo.Load(ctx))
	assert.Empty(t, repo.FindAll())

	require.NoError(t, repo.Save(newTestTour("T00001", "HS0001", [3]int{2030, 12, 10}, [3]int{2030, 12, 12}, 5, true)))
	require.NoError(t, repo.Save(newTestTour("T00002", "HS0002", [3]int{2031, 1, 5}, [3]int{2031, 1, 8}, 3, false)))
	require.NoError(t, repo.Flush(ctx))

	// 再読み込みで同じ内容が復元される
	reloaded := NewTourRepository(path)
	require.NoError(t, reloaded.Load(ctx))
	all := reloaded.FindAll()
	require.Len(t, all, 2)
	assert.Equal(t, "T00001", all[0].ID)
	assert.True(t, all[0].Booked)
	assert.True(t, date(2030, 12, 10).Equal(all[0].DepartureDate))

	// 同じファイルに対する再読み込みは冪等
	require.NoError(t, reloaded.Load(ctx))
	assert.Len(t, reloaded.FindAll(), 2)
}

func TestTourRepository_LoadSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Tours.txt")
	content := "\uFEFFTourID,TourName,Time,Price,HomeID,DepartureDate,EndDate,NumberTourist,IsBooked\n" +
		"T00001,Da Lat Discovery,3 days 2 nights,150.0,HS0001,10/12/2030,12/12/2030,5,FALSE\n" +
		"\n" +
		"broken,line\n" +
		"T00002,Sapa Trek,4 days 3 nights,200.0,HS0002,not-a-date,08/01/2031,3,TRUE\n" +
		"T00003,Mekong Cruise,2 days 1 night,80.0,HS0003,05/01/2031,06/01/2031,4,TRUE\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	repo := NewTourRepository(path)
	require.NoError(t, repo.Load(context.Background()))

	// 不正行とヘッダーとBOMを読み飛ばし、有効な2件のみが残る
	all := repo.FindAll()
	require.Len(t, all, 2)
	assert.Equal(t, "T00001", all[0].ID)
	assert.Equal(t, "T00003", all[1].ID)
}

func TestHomestayRepository_FindByName(t *testing.T) {
	repo := NewHomestayRepository(filepath.Join(t.TempDir(), "Homestays.txt"))
	require.NoError(t, repo.Save(&homestay.Homestay{ID: "HS0001", Name: "Alee DaLat Homestay", RoomCount: 3, Address: "a", MaxCapacity: 10}))
	require.NoError(t, repo.Save(&homestay.Homestay{ID: "HS0002", Name: "Moc Chau Garden", RoomCount: 4, Address: "b", MaxCapacity: 12}))

	// 部分一致かつ大文字小文字を区別しない
	assert.Len(t, repo.FindByName("dalat"), 1)
	assert.Len(t, repo.FindByName("A"), 2)
	assert.Empty(t, repo.FindByName("Hanoi"))
}

func TestHomestayRepository_LoadRejoinsAddress(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Homestays.txt")
	content := "HS0001-Alee DaLat Homestay-3-12A/6 3rd-February-Street-15\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	repo := NewHomestayRepository(path)
	require.NoError(t, repo.Load(context.Background()))

	all := repo.FindAll()
	require.Len(t, all, 1)
	assert.Equal(t, "12A/6 3rd-February-Street", all[0].Address)
	assert.Equal(t, 15, all[0].MaxCapacity)
}

func TestBookingRepository_FindByCustomerNameAndTourID(t *testing.T) {
	repo := NewBookingRepository(filepath.Join(t.TempDir(), "Bookings.txt"))
	require.NoError(t, repo.Save(&booking.Booking{ID: "B00001", CustomerName: "Nguyen Van A", TourID: "T00001", BookingDate: date(2030, 12, 5), Phone: "0123456789"}))
	require.NoError(t, repo.Save(&booking.Booking{ID: "B00002", CustomerName: "Tran Thi B", TourID: "T00002", BookingDate: date(2030, 12, 6), Phone: "0987654321"}))

	assert.Len(t, repo.FindByCustomerName("nguyen"), 1)
	assert.Len(t, repo.FindByCustomerName("T"), 2)
	assert.Len(t, repo.FindByTourID("t00002"), 1)
	assert.Empty(t, repo.FindByTourID("T00009"))
}

func TestTourRepository_FindByIDReturnsCopy(t *testing.T) {
	repo := NewTourRepository(filepath.Join(t.TempDir(), "Tours.txt"))
	require.NoError(t, repo.Save(newTestTour("T00001", "HS0001", [3]int{2030, 12, 10}, [3]int{2030, 12, 12}, 5, false)))

	found, err := repo.FindByID("T00001")
	require.NoError(t, err)
	found.Booked = true

	// 取得したエンティティを書き換えても、Updateするまで格納値は変わらない
	stored, err := repo.FindByID("T00001")
	require.NoError(t, err)
	assert.False(t, stored.Booked)

	require.NoError(t, repo.Update(found))
	stored, err = repo.FindByID("T00001")
	require.NoError(t, err)
	assert.True(t, stored.Booked)
}

func TestTourRepository_ConcurrentMutationAndFlush(t *testing.T) {
	// 自動保存ワーカーがFlushする裏でメニュー側がコレクションを
	// 変更しても競合しないこと（-race付きで検出する）
	repo := NewTourRepository(filepath.Join(t.TempDir(), "Tours.txt"))
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			assert.NoError(t, repo.Flush(ctx))
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			id := fmt.Sprintf("T%05d", i+1)
			assert.NoError(t, repo.Save(newTestTour(id, "HS0001",
				[3]int{2030, 1 + i%12, 1}, [3]int{2030, 1 + i%12, 3}, 2, false)))
			found, err := repo.FindByID(id)
			if !assert.NoError(t, err) {
				return
			}
			found.Booked = true
			assert.NoError(t, repo.Update(found))
		}
	}()

	wg.Wait()

	require.NoError(t, repo.Flush(ctx))
	assert.Len(t, repo.FindByBooked(true), 50)
}
