package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/sanosuguru/go-homestay-booking/internal/application"
	"github.com/sanosuguru/go-homestay-booking/internal/domain/booking"
	"github.com/sanosuguru/go-homestay-booking/internal/domain/homestay"
	"github.com/sanosuguru/go-homestay-booking/internal/domain/tour"
)

// renderHomestays はホームステイ一覧を表形式で出力する
func renderHomestays(w io.Writer, homestays []*homestay.Homestay) {
	if len(homestays) == 0 {
		fmt.Fprintln(w, ">> ホームステイがありません")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\t名前\t部屋数\t住所\t最大宿泊人数")
	for _, h := range homestays {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%d\n", h.ID, h.Name, h.RoomCount, h.Address, h.MaxCapacity)
	}
	tw.Flush()
}

// renderTours はツアー一覧を表形式で出力する
func renderTours(w io.Writer, tours []*tour.Tour) {
	if len(tours) == 0 {
		fmt.Fprintln(w, ">> ツアーがありません")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\t名前\t期間\t単価\tホームステイ\t出発日\t終了日\t人数\t総額\t状態")
	for _, t := range tours {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.1f\t%s\t%s\t%s\t%d\t%.1f\t%s\n",
			t.ID, t.Name, t.Duration, t.Price, t.HomestayID,
			t.DepartureDate.Format(DateLayout), t.EndDate.Format(DateLayout),
			t.TouristCount, t.TotalAmount(), t.CurrentStatus())
	}
	tw.Flush()
}

// renderBookings は予約一覧を表形式で出力する
func renderBookings(w io.Writer, bookings []*booking.Booking) {
	if len(bookings) == 0 {
		fmt.Fprintln(w, ">> 予約がありません")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\t顧客名\tツアー\t予約日\t電話番号")
	for _, b := range bookings {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			b.ID, b.CustomerName, b.TourID, b.BookingDate.Format(DateLayout), b.Phone)
	}
	tw.Flush()
}

// renderStats はホームステイごとの予約済み観光客数を表形式で出力する
func renderStats(w io.Writer, stats []application.HomestayStat) {
	if len(stats) == 0 {
		fmt.Fprintln(w, ">> ホームステイがありません")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ホームステイ\t予約済み観光客数")
	for _, s := range stats {
		fmt.Fprintf(tw, "%s\t%d\n", s.HomestayName, s.TouristCount)
	}
	tw.Flush()
}
