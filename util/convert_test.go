package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertString(t *testing.T) {
	var (
		s string
		i int
		i64 int64
		u uint
		f float64
		b bool
		d time.Duration
	)

	require.NoError(t, ConvertString("text", &s))
	assert.Equal(t, "text", s)
	require.NoError(t, ConvertString("-42", &i))
	assert.Equal(t, -42, i)
	require.NoError(t, ConvertString("0x10", &i64))
	assert.Equal(t, int64(16), i64)
	require.NoError(t, ConvertString("7", &u))
	assert.Equal(t, uint(7), u)
	require.NoError(t, ConvertString("2.5", &f))
	assert.Equal(t, 2.5, f)
	require.NoError(t, ConvertString("true", &b))
	assert.True(t, b)
	require.NoError(t, ConvertString("1m30s", &d))
	assert.Equal(t, 90*time.Second, d)
}

func TestConvertString_Time(t *testing.T) {
	var when time.Time
	require.NoError(t, ConvertString("2024-03-15", &when))
	assert.Equal(t, 2024, when.Year())
	assert.Equal(t, time.March, when.Month())
	assert.Equal(t, 15, when.Day())
}

func TestConvertString_Errors(t *testing.T) {
	var (
		i    int
		f    float64
		d    time.Duration
		when time.Time
		c    complex64
	)

	assert.ErrorIs(t, ConvertString("ten", &i), ErrParseInt)
	assert.ErrorIs(t, ConvertString("x1", &f), ErrParseFloat)
	assert.ErrorIs(t, ConvertString("soon", &d), ErrParseDuration)
	assert.ErrorIs(t, ConvertString("not a date", &when), ErrParseTime)
	assert.ErrorIs(t, ConvertString("1", &c), ErrUnsupportedTypeConversion)
}
