package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	// Arrange
	bookingDate := time.Date(2030, 12, 5, 0, 0, 0, 0, time.UTC)

	// Act
	b, err := New("B00001", "Nguyen Van A", "T00001", bookingDate, "0123456789")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "B00001", b.ID)
	assert.Equal(t, "Nguyen Van A", b.CustomerName)
	assert.Equal(t, "T00001", b.TourID)
	assert.True(t, bookingDate.Equal(b.BookingDate))
	assert.Equal(t, "0123456789", b.Phone)
}

func TestBooking_Validate(t *testing.T) {
	valid := func() *Booking {
		return &Booking{
			ID:           "B00001",
			CustomerName: "Nguyen Van A",
			TourID:       "T00001",
			BookingDate:  time.Date(2030, 12, 5, 0, 0, 0, 0, time.UTC),
			Phone:        "0123456789",
		}
	}

	tests := []struct {
		name        string
		mutate      func(*Booking)
		expectedErr error
	}{
		{
			name:        "有効な予約",
			mutate:      func(*Booking) {},
			expectedErr: nil,
		},
		{
			name:        "IDが空",
			mutate:      func(b *Booking) { b.ID = "" },
			expectedErr: ErrIDRequired,
		},
		{
			name:        "顧客名が空",
			mutate:      func(b *Booking) { b.CustomerName = "" },
			expectedErr: ErrCustomerNameRequired,
		},
		{
			name:        "ツアーIDが空",
			mutate:      func(b *Booking) { b.TourID = "" },
			expectedErr: ErrTourIDRequired,
		},
		{
			name:        "予約日がゼロ値",
			mutate:      func(b *Booking) { b.BookingDate = time.Time{} },
			expectedErr: ErrBookingDateRequired,
		},
		{
			name:        "電話番号が空",
			mutate:      func(b *Booking) { b.Phone = "" },
			expectedErr: ErrPhoneRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := valid()
			tt.mutate(b)

			err := b.Validate()
			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
