package sqlite

import (
	"fmt"
	"strconv"
	"time"
)

// formatAverage renders a rating mean with one fractional digit, the shape
// listings and dashboards expose ("0.0" for stores without ratings).
func formatAverage(avg float64) string {
	return fmt.Sprintf("%.1f", avg)
}

// Column accessors tolerant of the value shapes the driver produces: INTEGER
// columns arrive as int64, aggregates as float64, and timestamp columns as
// time.Time when the declared type is known, or as text otherwise.

func rowInt64(r Row, col string) int64 {
	switch v := r[col].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	case string:
		n, _ := strconv.ParseInt(v, 10, 64)
		return n
	}
	return 0
}

func rowInt(r Row, col string) int {
	return int(rowInt64(r, col))
}

func rowFloat(r Row, col string) float64 {
	switch v := r[col].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case string:
		f, _ := strconv.ParseFloat(v, 64)
		return f
	}
	return 0
}

func rowString(r Row, col string) string {
	if s, ok := r[col].(string); ok {
		return s
	}
	return ""
}

func rowNullInt64(r Row, col string) *int64 {
	if r[col] == nil {
		return nil
	}
	v := rowInt64(r, col)
	return &v
}

func rowNullInt(r Row, col string) *int {
	if r[col] == nil {
		return nil
	}
	v := rowInt(r, col)
	return &v
}

func rowTime(r Row, col string) time.Time {
	switch v := r[col].(type) {
	case time.Time:
		return v
	case string:
		for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339} {
			if t, err := time.Parse(layout, v); err == nil {
				return t.UTC()
			}
		}
	}
	return time.Time{}
}
