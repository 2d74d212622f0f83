// Package cli はコンソール向けのメニュー・入力・表示レイヤーを提供する
//
// 入力値の形式検証のみをここで行い、業務ルールの検証はサービス層に委ねる
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/sanosuguru/go-homestay-booking/internal/application"
	"github.com/sanosuguru/go-homestay-booking/internal/domain/booking"
	"github.com/sanosuguru/go-homestay-booking/internal/domain/tour"
)

// Menu はメインメニューの表示と各操作への振り分けを行う
type Menu struct {
	homestayService *application.HomestayService
	tourService     *application.TourService
	bookingService  *application.BookingService
	in              *Inputter
	out             io.Writer
}

// NewMenu は新しいMenuを作成する
func NewMenu(hs *application.HomestayService, ts *application.TourService, bs *application.BookingService, in *Inputter, out io.Writer) *Menu {
	return &Menu{
		homestayService: hs,
		tourService:     ts,
		bookingService:  bs,
		in:              in,
		out:             out,
	}
}

// Run はメニューループを実行する。終了が選択されるか入力が尽きると返る
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.printMenu()
		choice, err := m.in.ReadInt("選択: ")
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			m.addTour()
		case 2:
			m.updateTour()
		case 3:
			m.listExpiredTours()
		case 4:
			m.listUpcomingTours()
		case 5:
			m.addBooking()
		case 6:
			m.removeBooking()
		case 7:
			m.updateBooking()
		case 8:
			m.searchBookings()
		case 9:
			m.showStatistics()
		case 10:
			fmt.Fprintln(m.out, ">> 終了します")
			return nil
		default:
			fmt.Fprintln(m.out, ">> 1〜10で選択してください")
		}
	}
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out, "===== ホームステイ予約管理 =====")
	fmt.Fprintln(m.out, " 1. ツアー追加")
	fmt.Fprintln(m.out, " 2. ツアー更新")
	fmt.Fprintln(m.out, " 3. 期限切れツアー一覧")
	fmt.Fprintln(m.out, " 4. 今後のツアー一覧（総額降順）")
	fmt.Fprintln(m.out, " 5. 予約追加")
	fmt.Fprintln(m.out, " 6. 予約削除")
	fmt.Fprintln(m.out, " 7. 予約更新")
	fmt.Fprintln(m.out, " 8. 予約検索（顧客名）")
	fmt.Fprintln(m.out, " 9. 統計（ホームステイ別観光客数）")
	fmt.Fprintln(m.out, "10. 保存して終了")
}

func (m *Menu) addTour() {
	renderHomestays(m.out, m.homestayService.ListHomestays())

	id, err := m.in.ReadString("ツアーID（T00001形式）: ", "required,tourid")
	if err != nil {
		return
	}
	name, err := m.in.ReadString("ツアー名: ", "required")
	if err != nil {
		return
	}
	duration, err := m.in.ReadString("期間（例: 3 days 2 nights）: ", "required")
	if err != nil {
		return
	}
	price, err := m.in.ReadFloat("単価: ")
	if err != nil {
		return
	}
	homestayID, err := m.in.ReadString("ホームステイID（HS0001形式）: ", "required,homestayid")
	if err != nil {
		return
	}
	departure, err := m.in.ReadDate("出発日（dd/MM/yyyy）: ")
	if err != nil {
		return
	}
	end, err := m.in.ReadDate("終了日（dd/MM/yyyy）: ")
	if err != nil {
		return
	}
	count, err := m.in.ReadInt("参加人数: ")
	if err != nil {
		return
	}

	t, err := m.tourService.CreateTour(application.CreateTourInput{
		ID:            id,
		Name:          name,
		Duration:      duration,
		Price:         price,
		HomestayID:    homestayID,
		DepartureDate: departure,
		EndDate:       end,
		TouristCount:  count,
	})
	if err != nil {
		fmt.Fprintf(m.out, ">> ツアー追加に失敗: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, ">> ツアー %s を追加しました\n", t.ID)
}

func (m *Menu) updateTour() {
	id, err := m.in.ReadString("更新するツアーID: ", "required,tourid")
	if err != nil {
		return
	}
	current, err := m.tourService.GetTour(id)
	if err != nil {
		fmt.Fprintf(m.out, ">> %v\n", err)
		return
	}
	renderTours(m.out, []*tour.Tour{current})

	name, err := m.in.ReadString("ツアー名: ", "required")
	if err != nil {
		return
	}
	duration, err := m.in.ReadString("期間（例: 3 days 2 nights）: ", "required")
	if err != nil {
		return
	}
	price, err := m.in.ReadFloat("単価: ")
	if err != nil {
		return
	}
	departure, err := m.in.ReadDate("出発日（dd/MM/yyyy）: ")
	if err != nil {
		return
	}
	end, err := m.in.ReadDate("終了日（dd/MM/yyyy）: ")
	if err != nil {
		return
	}
	count, err := m.in.ReadInt("参加人数: ")
	if err != nil {
		return
	}

	updated, err := m.tourService.UpdateTour(application.UpdateTourInput{
		ID:            id,
		Name:          name,
		Duration:      duration,
		Price:         price,
		DepartureDate: departure,
		EndDate:       end,
		TouristCount:  count,
	})
	if err != nil {
		fmt.Fprintf(m.out, ">> ツアー更新に失敗: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, ">> ツアー %s を更新しました\n", updated.ID)
}

func (m *Menu) listExpiredTours() {
	renderTours(m.out, m.tourService.ListExpiredTours())
}

func (m *Menu) listUpcomingTours() {
	renderTours(m.out, m.tourService.ListUpcomingToursByRevenue())
}

func (m *Menu) addBooking() {
	id, err := m.in.ReadString("予約ID（B00001形式）: ", "required,bookingid")
	if err != nil {
		return
	}
	name, err := m.in.ReadString("顧客名: ", "required,min=2,max=50")
	if err != nil {
		return
	}
	tourID, err := m.in.ReadString("ツアーID: ", "required,tourid")
	if err != nil {
		return
	}
	date, err := m.in.ReadDate("予約日（dd/MM/yyyy）: ")
	if err != nil {
		return
	}
	phone, err := m.in.ReadString("電話番号（0始まり10桁）: ", "required,phone")
	if err != nil {
		return
	}

	b, err := m.bookingService.CreateBooking(application.CreateBookingInput{
		ID:           id,
		CustomerName: name,
		TourID:       tourID,
		BookingDate:  date,
		Phone:        phone,
	})
	if err != nil {
		fmt.Fprintf(m.out, ">> 予約追加に失敗: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, ">> 予約 %s を追加しました\n", b.ID)
}

func (m *Menu) removeBooking() {
	id, err := m.in.ReadString("削除する予約ID: ", "required,bookingid")
	if err != nil {
		return
	}
	if err := m.bookingService.RemoveBooking(id); err != nil {
		fmt.Fprintf(m.out, ">> 予約削除に失敗: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, ">> 予約 %s を削除しました\n", id)
}

func (m *Menu) updateBooking() {
	id, err := m.in.ReadString("更新する予約ID: ", "required,bookingid")
	if err != nil {
		return
	}
	current, err := m.bookingService.GetBooking(id)
	if err != nil {
		fmt.Fprintf(m.out, ">> %v\n", err)
		return
	}
	renderBookings(m.out, []*booking.Booking{current})

	name, err := m.in.ReadString("顧客名: ", "required,min=2,max=50")
	if err != nil {
		return
	}
	tourID, err := m.in.ReadString("ツアーID: ", "required,tourid")
	if err != nil {
		return
	}
	date, err := m.in.ReadDate("予約日（dd/MM/yyyy）: ")
	if err != nil {
		return
	}
	phone, err := m.in.ReadString("電話番号（0始まり10桁）: ", "required,phone")
	if err != nil {
		return
	}

	updated, err := m.bookingService.UpdateBooking(application.UpdateBookingInput{
		ID:           id,
		CustomerName: name,
		TourID:       tourID,
		BookingDate:  date,
		Phone:        phone,
	})
	if err != nil {
		fmt.Fprintf(m.out, ">> 予約更新に失敗: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, ">> 予約 %s を更新しました\n", updated.ID)
}

func (m *Menu) searchBookings() {
	name, err := m.in.ReadString("検索する顧客名: ", "required")
	if err != nil {
		return
	}
	renderBookings(m.out, m.bookingService.SearchBookingsByCustomerName(name))
}

func (m *Menu) showStatistics() {
	renderStats(m.out, m.tourService.Statistics())
}
