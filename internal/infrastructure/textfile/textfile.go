// Package textfile は行指向テキストファイルを使った各リポジトリの実装を提供する
//
// 1行が1エンティティに対応し、不正な行は警告ログを出してスキップする
// 保存は常にファイル全体の書き直しで行う
package textfile

import (
	"bufio"
	"context"
	"errors"
	"os"
	"strings"
	"time"
)

const (
	// DateLayout はプロジェクト標準の日付形式（dd/MM/yyyy）
	DateLayout = "02/01/2006"

	// isoDateLayout は旧データ読み込み用のフォールバック形式（yyyy-MM-dd）
	isoDateLayout = "2006-01-02"
)

// errSkipLine は空行・ヘッダー行など、エラーではない読み飛ばしを表す
var errSkipLine = errors.New("skip line")

var lineSanitizer = strings.NewReplacer("\r", "_", "\n", "_", "\t", "_")

// sanitizeLine はログ出力用に制御文字を置き換える
func sanitizeLine(line string) string {
	return lineSanitizer.Replace(line)
}

// parseDate は標準形式で日付を解釈する
func parseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

// parseDateWithFallback は標準形式を優先し、失敗時のみISO形式を試す
func parseDateWithFallback(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if d, err := time.Parse(DateLayout, s); err == nil {
		return d, nil
	}
	return time.Parse(isoDateLayout, s)
}

// formatBool は予約フラグをファイル上の表記に変換する
func formatBool(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}

// readLines はファイルを行単位で読み込む
// 先頭のBOMは取り除く。ファイルが存在しない場合は空として扱う
func readLines(ctx context.Context, path string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, "\uFEFF")
			first = false
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// writeLines はファイル全体を書き直す（追記はしない）
func writeLines(ctx context.Context, path string, lines []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(sb.String()), 0o644)
}
