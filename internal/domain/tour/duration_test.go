package tour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDuration(t *testing.T) {
	tests := []struct {
		name        string
		label       string
		expectedErr error
	}{
		{
			name:        "有効なラベル",
			label:       "3 days 2 nights",
			expectedErr: nil,
		},
		{
			name:        "単数形も有効",
			label:       "1 day 0 night",
			expectedErr: nil,
		},
		{
			name:        "余分な空白と大文字は正規化される",
			label:       "  3  Days   2  Nights ",
			expectedErr: nil,
		},
		{
			name:        "泊数が日数-1でない",
			label:       "3 days 3 nights",
			expectedErr: ErrInvalidDurationLogic,
		},
		{
			name:        "泊数が多すぎる",
			label:       "2 days 5 nights",
			expectedErr: ErrInvalidDurationLogic,
		},
		{
			name:        "形式が不正",
			label:       "three days two nights",
			expectedErr: ErrInvalidDurationFormat,
		},
		{
			name:        "空文字",
			label:       "",
			expectedErr: ErrInvalidDurationFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDuration(tt.label)
			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateDuration_ErrorNamesExpectedNights(t *testing.T) {
	// 5日間なら4泊が正しいことをエラーメッセージで伝える
	err := ValidateDuration("5 days 2 nights")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDurationLogic)
	assert.Contains(t, err.Error(), "4泊")
}
