package cli

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout は対話入力で受け付ける日付形式（dd/MM/yyyy）
const DateLayout = "02/01/2006"

var (
	homestayIDPattern = regexp.MustCompile(`^HS\d+$`)
	tourIDPattern     = regexp.MustCompile(`^T\d{5}$`)
	bookingIDPattern  = regexp.MustCompile(`^B\d{5}$`)
	phonePattern      = regexp.MustCompile(`^0\d{9}$`)
)

// Inputter はコンソールからの入力収集と形式検証を担う
// ここでの検証は形式のみで、業務ルールはサービス層が改めて検証する
type Inputter struct {
	reader   *bufio.Reader
	writer   io.Writer
	validate *validator.Validate
}

// NewInputter は新しいInputterを作成する
func NewInputter(r io.Reader, w io.Writer) *Inputter {
	v := validator.New()
	v.RegisterValidation("homestayid", patternValidator(homestayIDPattern))
	v.RegisterValidation("tourid", patternValidator(tourIDPattern))
	v.RegisterValidation("bookingid", patternValidator(bookingIDPattern))
	v.RegisterValidation("phone", patternValidator(phonePattern))

	return &Inputter{
		reader:   bufio.NewReader(r),
		writer:   w,
		validate: v,
	}
}

func patternValidator(pattern *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return pattern.MatchString(fl.Field().String())
	}
}

// ReadString は検証ルールを満たす文字列が入力されるまで再入力を促す
// rules はvalidatorのタグをそのまま渡す（例: "required,tourid"）
func (in *Inputter) ReadString(prompt, rules string) (string, error) {
	for {
		fmt.Fprint(in.writer, prompt)
		line, err := in.reader.ReadString('\n')
		if err != nil {
			return "", err
		}
		value := strings.TrimSpace(line)
		if err := in.validate.Var(value, rules); err != nil {
			fmt.Fprintln(in.writer, ">> 入力が不正です。もう一度入力してください")
			continue
		}
		return value, nil
	}
}

// ReadInt は0以上の整数が入力されるまで再入力を促す
func (in *Inputter) ReadInt(prompt string) (int, error) {
	for {
		fmt.Fprint(in.writer, prompt)
		line, err := in.reader.ReadString('\n')
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr != nil || n < 0 {
			fmt.Fprintln(in.writer, ">> 0以上の整数を入力してください")
			continue
		}
		return n, nil
	}
}

// ReadFloat は0以上の数値が入力されるまで再入力を促す
func (in *Inputter) ReadFloat(prompt string) (float64, error) {
	for {
		fmt.Fprint(in.writer, prompt)
		line, err := in.reader.ReadString('\n')
		if err != nil {
			return 0, err
		}
		f, convErr := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if convErr != nil || f < 0 {
			fmt.Fprintln(in.writer, ">> 0以上の数値を入力してください")
			continue
		}
		return f, nil
	}
}

// ReadDate はdd/MM/yyyy形式の日付が入力されるまで再入力を促す
func (in *Inputter) ReadDate(prompt string) (time.Time, error) {
	for {
		fmt.Fprint(in.writer, prompt)
		line, err := in.reader.ReadString('\n')
		if err != nil {
			return time.Time{}, err
		}
		d, convErr := time.Parse(DateLayout, strings.TrimSpace(line))
		if convErr != nil {
			fmt.Fprintln(in.writer, ">> dd/MM/yyyy形式で入力してください")
			continue
		}
		return d, nil
	}
}
