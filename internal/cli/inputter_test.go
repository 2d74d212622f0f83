package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputter_ReadString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		rules string
		want  string
	}{
		{
			name:  "有効なツアーIDを受け付ける",
			input: "T00001\n",
			rules: "required,tourid",
			want:  "T00001",
		},
		{
			name:  "不正なツアーIDは再入力させる",
			input: "abc\nT12\nT00042\n",
			rules: "required,tourid",
			want:  "T00042",
		},
		{
			name:  "有効な予約IDを受け付ける",
			input: "B00007\n",
			rules: "required,bookingid",
			want:  "B00007",
		},
		{
			name:  "電話番号は0始まり10桁のみ",
			input: "12345\n0123456789\n",
			rules: "required,phone",
			want:  "0123456789",
		},
		{
			name:  "前後の空白は取り除く",
			input: "  T00001  \n",
			rules: "required,tourid",
			want:  "T00001",
		},
		{
			name:  "空行はrequiredで弾く",
			input: "\nNguyen Van A\n",
			rules: "required,min=2,max=50",
			want:  "Nguyen Van A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			in := NewInputter(strings.NewReader(tt.input), &out)

			got, err := in.ReadString("> ", tt.rules)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInputter_ReadString_EOF(t *testing.T) {
	var out bytes.Buffer
	in := NewInputter(strings.NewReader(""), &out)

	_, err := in.ReadString("> ", "required")
	assert.ErrorIs(t, err, io.EOF)
}

func TestInputter_ReadInt(t *testing.T) {
	var out bytes.Buffer
	in := NewInputter(strings.NewReader("abc\n-1\n5\n"), &out)

	n, err := in.ReadInt("> ")

	require.NoError(t, err)
	assert.Equal(t, 5, n)
	// 再入力メッセージが2回出力されている
	assert.Equal(t, 2, strings.Count(out.String(), ">> 0以上の整数を入力してください"))
}

func TestInputter_ReadFloat(t *testing.T) {
	var out bytes.Buffer
	in := NewInputter(strings.NewReader("free\n-0.5\n150.5\n"), &out)

	f, err := in.ReadFloat("> ")

	require.NoError(t, err)
	assert.InDelta(t, 150.5, f, 0.0001)
}

func TestInputter_ReadDate(t *testing.T) {
	var out bytes.Buffer
	// dd/MM/yyyy以外の形式は再入力させる
	in := NewInputter(strings.NewReader("2030-12-10\n32/12/2030\n10/12/2030\n"), &out)

	d, err := in.ReadDate("> ")

	require.NoError(t, err)
	assert.Equal(t, time.Date(2030, 12, 10, 0, 0, 0, 0, time.UTC), d)
}
