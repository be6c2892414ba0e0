package schema

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the only accepted date format, on input and output.
const DateLayout = "2006-01-02"

// Null is the console input that clears a nullable field.
const Null = "null"

type Kind int

const (
	KindUnknown Kind = iota
	KindInt
	KindNullableInt
	KindString
	KindDecimal
	KindDate
	KindNullableDate
)

// KindOf returns the kind of the field behind ptr.
func KindOf(ptr any) Kind {
	switch ptr.(type) {
	case *int64:
		return KindInt
	case **int64:
		return KindNullableInt
	case *string:
		return KindString
	case *decimal.Decimal:
		return KindDecimal
	case *time.Time:
		return KindDate
	case **time.Time:
		return KindNullableDate
	default:
		return KindUnknown
	}
}

func (k Kind) Nullable() bool {
	return k == KindNullableInt || k == KindNullableDate
}

// Hint is the input format shown next to a prompt.
func (k Kind) Hint() string {
	switch k {
	case KindDate, KindNullableDate:
		return "yyyy-mm-dd"
	case KindDecimal:
		return "00.00"
	default:
		return ""
	}
}

// Parse converts console input into the field behind ptr. Empty input yields
// the zero value, or nil for nullable kinds.
func Parse(ptr any, raw string) error {
	raw = strings.TrimSpace(raw)
	if KindOf(ptr).Nullable() && strings.EqualFold(raw, Null) {
		raw = ""
	}

	switch p := ptr.(type) {
	case *string:
		*p = raw
	case *int64:
		if raw == "" {
			*p = 0
			return nil
		}
		v, err := parseInt(raw)
		if err != nil {
			return err
		}
		*p = v
	case **int64:
		if raw == "" {
			*p = nil
			return nil
		}
		v, err := parseInt(raw)
		if err != nil {
			return err
		}
		*p = &v
	case *decimal.Decimal:
		if raw == "" {
			*p = decimal.Zero
			return nil
		}
		v, err := decimal.NewFromString(strings.Replace(raw, ",", ".", 1))
		if err != nil {
			return fmt.Errorf("invalid decimal %q, expected 00.00", raw)
		}
		*p = v
	case *time.Time:
		if raw == "" {
			*p = time.Time{}
			return nil
		}
		v, err := parseDate(raw)
		if err != nil {
			return err
		}
		*p = v
	case **time.Time:
		if raw == "" {
			*p = nil
			return nil
		}
		v, err := parseDate(raw)
		if err != nil {
			return err
		}
		*p = &v
	default:
		return fmt.Errorf("unsupported field type %T", ptr)
	}
	return nil
}

func parseInt(raw string) (int64, error) {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", raw)
	}
	return v, nil
}

func parseDate(raw string) (time.Time, error) {
	v, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected yyyy-mm-dd", raw)
	}
	return v, nil
}

// Value returns the driver value of the field behind ptr.
func Value(ptr any) any {
	switch p := ptr.(type) {
	case *string:
		return *p
	case *int64:
		return *p
	case **int64:
		if *p == nil {
			return nil
		}
		return **p
	case *decimal.Decimal:
		return *p
	case *time.Time:
		return *p
	case **time.Time:
		if *p == nil {
			return nil
		}
		return **p
	default:
		return nil
	}
}

// Format renders the field behind ptr for display and as the default of an
// edit prompt. Decimals are rounded to two places, so an edit only keeps a
// longer scale when the answer is left blank.
func Format(ptr any) string {
	switch v := Value(ptr).(type) {
	case nil:
		return Null
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case decimal.Decimal:
		return v.StringFixed(2)
	case time.Time:
		return v.Format(DateLayout)
	default:
		return fmt.Sprint(v)
	}
}

// Equal compares the fields behind two pointers of the same kind.
func Equal(a, b any) bool {
	va, vb := Value(a), Value(b)
	switch x := va.(type) {
	case decimal.Decimal:
		y, ok := vb.(decimal.Decimal)
		return ok && x.Equal(y)
	case time.Time:
		y, ok := vb.(time.Time)
		return ok && x.Equal(y)
	default:
		return va == vb
	}
}
