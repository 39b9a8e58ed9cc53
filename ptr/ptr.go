// Package ptr takes the address of values that cannot be addressed inline.
package ptr

import "time"

func String(s string) *string {
	return &s
}

func Int(i int) *int {
	return &i
}

func Bool(b bool) *bool {
	return &b
}

func Float64(f float64) *float64 {
	return &f
}

func Time(t time.Time) *time.Time {
	return &t
}

// NonEmpty is String for optional fields: the empty string becomes nil.
func NonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Value dereferences p, giving the zero value for nil.
func Value[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
