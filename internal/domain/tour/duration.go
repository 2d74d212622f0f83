package tour

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var durationPattern = regexp.MustCompile(`^(\d+) days? (\d+) nights?$`)

// ValidateDuration は "N days M nights" 形式の期間ラベルを検証する
// 泊数は日数より1少なくなければならない（例: "3 days 2 nights"）
func ValidateDuration(label string) error {
	normalized := strings.ToLower(strings.Join(strings.Fields(label), " "))
	m := durationPattern.FindStringSubmatch(normalized)
	if m == nil {
		return ErrInvalidDurationFormat
	}
	days, _ := strconv.Atoi(m[1])
	nights, _ := strconv.Atoi(m[2])
	if nights != days-1 {
		return fmt.Errorf("%w: %d日間の場合は%d泊である必要があります", ErrInvalidDurationLogic, days, days-1)
	}
	return nil
}
