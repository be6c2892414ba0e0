package graph

import (
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
	"github.com/shopspring/decimal"

	"github.com/hlubek/gestao-varejo/schema"
)

// toProperty converts a driver value into a value Neo4j can store as a property.
// Decimals are stored as floats and times as dates.
func toProperty(v any) any {
	switch x := v.(type) {
	case decimal.Decimal:
		return x.InexactFloat64()
	case time.Time:
		return dbtype.Date(dateOnly(x))
	default:
		return v
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// assign stores a property read from Neo4j in the field behind ptr.
func assign(ptr any, v any) error {
	switch p := ptr.(type) {
	case *int64:
		i, err := toInt64(v)
		if err != nil {
			return err
		}
		*p = i
	case **int64:
		if v == nil {
			*p = nil
			return nil
		}
		i, err := toInt64(v)
		if err != nil {
			return err
		}
		*p = &i
	case *string:
		if v == nil {
			*p = ""
			return nil
		}
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", v)
		}
		*p = s
	case *decimal.Decimal:
		d, err := toDecimal(v)
		if err != nil {
			return err
		}
		*p = d
	case *time.Time:
		if v == nil {
			*p = time.Time{}
			return nil
		}
		t, err := toTime(v)
		if err != nil {
			return err
		}
		*p = t
	case **time.Time:
		if v == nil {
			*p = nil
			return nil
		}
		t, err := toTime(v)
		if err != nil {
			return err
		}
		*p = &t
	default:
		return fmt.Errorf("unsupported field type %T", ptr)
	}
	return nil
}

func toInt64(v any) (int64, error) {
	switch x := v.(type) {
	case nil:
		return 0, nil
	case int64:
		return x, nil
	case int:
		return int64(x), nil
	default:
		return 0, fmt.Errorf("expected integer, got %T", v)
	}
}

func toDecimal(v any) (decimal.Decimal, error) {
	switch x := v.(type) {
	case nil:
		return decimal.Zero, nil
	case float64:
		return decimal.NewFromFloat(x), nil
	case int64:
		return decimal.NewFromInt(x), nil
	case string:
		return decimal.NewFromString(x)
	default:
		return decimal.Zero, fmt.Errorf("expected number, got %T", v)
	}
}

func toTime(v any) (time.Time, error) {
	switch x := v.(type) {
	case dbtype.Date:
		return dateOnly(x.Time()), nil
	case dbtype.LocalDateTime:
		return dateOnly(x.Time()), nil
	case time.Time:
		return dateOnly(x), nil
	case string:
		return time.Parse(schema.DateLayout, x)
	default:
		return time.Time{}, fmt.Errorf("expected date, got %T", v)
	}
}

// scan fills e from a record returned by selectCypher.
func scan[T any](d *schema.Descriptor[T], rec Record, e *T) error {
	for _, f := range d.Fields {
		if err := assign(f.Ptr(e), rec[f.Column]); err != nil {
			return fmt.Errorf("reading %s.%s: %w", d.Table, f.Column, err)
		}
	}
	return nil
}

// Get stores the value of key in the field behind ptr.
func (r Record) Get(key string, ptr any) error {
	if err := assign(ptr, r[key]); err != nil {
		return fmt.Errorf("reading %s: %w", key, err)
	}
	return nil
}
