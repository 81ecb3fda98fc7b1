package util

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
)

var (
	ErrUnsupportedTypeConversion = errors.New("unsupported type conversion")
	ErrParseInt                  = errors.New("invalid integer")
	ErrParseFloat                = errors.New("invalid number")
	ErrParseBool                 = errors.New("invalid boolean")
	ErrParseDuration             = errors.New("invalid duration")
	ErrParseTime                 = errors.New("invalid time")
)

// ConvertString parses value into the variable data points to. Supported targets are
// *string, *int, *int64, *uint, *float64, *bool, *time.Duration and *time.Time.
func ConvertString(value string, data any) error {
	switch t := data.(type) {
	case *string:
		*t = value
	case *int:
		val, err := strconv.ParseInt(value, 0, strconv.IntSize)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrParseInt, value)
		}
		*t = int(val)
	case *int64:
		val, err := strconv.ParseInt(value, 0, 64)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrParseInt, value)
		}
		*t = val
	case *uint:
		val, err := strconv.ParseUint(value, 0, strconv.IntSize)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrParseInt, value)
		}
		*t = uint(val)
	case *float64:
		val, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrParseFloat, value)
		}
		*t = val
	case *bool:
		val, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrParseBool, value)
		}
		*t = val
	case *time.Duration:
		val, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrParseDuration, value)
		}
		*t = val
	case *time.Time:
		val, err := dateparse.ParseAny(value)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrParseTime, value)
		}
		*t = val
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedTypeConversion, data)
	}

	return nil
}
