package marshaller

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
)

var (
	errOutOfRange   = errors.New("value out of range")
	errLostFraction = errors.New("value has a fractional part")
)

// number is a numeric wire value in the widest form it was received in.
type number struct {
	kind reflect.Kind // reflect.Int64, reflect.Uint64 or reflect.Float64
	i    int64
	u    uint64
	f    float64
}

// numberOf extracts a numeric wire value. It reports false for anything that
// is not a number.
func numberOf(raw any) (number, bool) {
	if n, ok := raw.(json.Number); ok {
		if i, err := n.Int64(); err == nil {
			return number{kind: reflect.Int64, i: i, u: 0, f: 0}, true
		}

		if u, err := parseUint(n); err == nil {
			return number{kind: reflect.Uint64, i: 0, u: u, f: 0}, true
		}

		f, err := n.Float64()
		if err != nil {
			return number{}, false
		}

		return number{kind: reflect.Float64, i: 0, u: 0, f: f}, true
	}

	rv := reflect.ValueOf(raw)

	switch {
	case rv.CanInt():
		return number{kind: reflect.Int64, i: rv.Int(), u: 0, f: 0}, true
	case rv.CanUint():
		return number{kind: reflect.Uint64, i: 0, u: rv.Uint(), f: 0}, true
	case rv.CanFloat():
		return number{kind: reflect.Float64, i: 0, u: 0, f: rv.Float()}, true
	default:
		return number{}, false
	}
}

func parseUint(n json.Number) (uint64, error) {
	return strconv.ParseUint(n.String(), 10, 64) //nolint:wrapcheck
}

// checkRange reports an ErrTypeMismatch when raw is a number that would be
// wrapped or truncated when stored as typ. Non-numeric values and
// non-numeric targets pass through.
func checkRange(raw any, typ reflect.Type) error {
	n, ok := numberOf(raw)
	if !ok {
		return nil
	}

	target := reflect.New(typ).Elem()

	var err error

	switch typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		err = n.fitsInt(target)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		err = n.fitsUint(target)
	case reflect.Float32, reflect.Float64:
		err = n.fitsFloat(target)
	default:
		return nil
	}

	if err != nil {
		return fmt.Errorf("%w: %w for %s", ErrTypeMismatch, err, typ)
	}

	return nil
}

func (n number) fitsInt(target reflect.Value) error {
	switch n.kind {
	case reflect.Uint64:
		if n.u > math.MaxInt64 || target.OverflowInt(int64(n.u)) {
			return errOutOfRange
		}
	case reflect.Float64:
		if err := integral(n.f); err != nil {
			return err
		}

		if n.f < math.MinInt64 || n.f >= math.MaxInt64 || target.OverflowInt(int64(n.f)) {
			return errOutOfRange
		}
	default:
		if target.OverflowInt(n.i) {
			return errOutOfRange
		}
	}

	return nil
}

func (n number) fitsUint(target reflect.Value) error {
	switch n.kind {
	case reflect.Int64:
		if n.i < 0 || target.OverflowUint(uint64(n.i)) {
			return errOutOfRange
		}
	case reflect.Float64:
		if err := integral(n.f); err != nil {
			return err
		}

		if n.f < 0 || n.f >= math.MaxUint64 || target.OverflowUint(uint64(n.f)) {
			return errOutOfRange
		}
	default:
		if target.OverflowUint(n.u) {
			return errOutOfRange
		}
	}

	return nil
}

func (n number) fitsFloat(target reflect.Value) error {
	var f float64

	switch n.kind {
	case reflect.Int64:
		f = float64(n.i)
	case reflect.Uint64:
		f = float64(n.u)
	default:
		f = n.f
	}

	if target.OverflowFloat(f) {
		return errOutOfRange
	}

	return nil
}

func integral(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return errOutOfRange
	}

	if math.Trunc(f) != f {
		return errLostFraction
	}

	return nil
}
