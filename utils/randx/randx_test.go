package randx

import (
	"regexp"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lzerrors "github.com/labzen/tool/core/errors"
	"github.com/labzen/tool/utils/timex"
	"github.com/labzen/tool/utils/tuple"
)

func TestIntParity(t *testing.T) {
	for i := 0; i < 500; i++ {
		even, err := Int(-50, 50, Even)
		require.NoError(t, err)
		assert.Equal(t, 0, even&1, "Int(Even) returned %d", even)
		assert.True(t, even >= -50 && even < 50)

		odd, err := Int(-50, 50, Odd)
		require.NoError(t, err)
		assert.Equal(t, 1, odd&1, "Int(Odd) returned %d", odd)
		assert.True(t, odd >= -50 && odd < 50)
	}
}

func TestIntRange(t *testing.T) {
	seen := make(map[int]bool)
	for i := 0; i < 500; i++ {
		n, err := Int(3, 6, AnyParity)
		require.NoError(t, err)
		require.True(t, n >= 3 && n < 6, "Int(3, 6) returned %d", n)
		seen[n] = true
	}
	assert.Len(t, seen, 3)
}

func TestIntValidation(t *testing.T) {
	_, err := Int(5, 5, AnyParity)
	assert.True(t, lzerrors.IsValidationFailed(err))

	_, err = Int64(9, 3, AnyParity)
	assert.True(t, lzerrors.IsValidationFailed(err))

	_, err = Int(4, 5, Odd)
	assert.True(t, lzerrors.IsValidationFailed(err))

	n, err := Int(4, 5, Even)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestInt64Extremes(t *testing.T) {
	const min, max = -1 << 63, 1<<63 - 1
	for i := 0; i < 100; i++ {
		n, err := Int64(min, max, Odd)
		require.NoError(t, err)
		assert.NotZero(t, n&1)
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "", String(0, Numbers))
	assert.Equal(t, "", String(-3, Numbers))

	s := String(32, NumbersWithoutZero)
	assert.Len(t, s, 32)
	assert.NotContains(t, s, "0")

	fallback := String(40, "")
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-zA-Z]{40}$`), fallback)

	cn := String(10, "甲乙丙")
	assert.Equal(t, 10, utf8.RuneCountInString(cn))
	for _, r := range cn {
		assert.True(t, strings.ContainsRune("甲乙丙", r))
	}
}

func TestBytes(t *testing.T) {
	assert.Empty(t, Bytes(0))
	assert.Len(t, Bytes(13), 13)
}

func TestElement(t *testing.T) {
	list := []string{"a", "b", "c"}
	for i := 0; i < 50; i++ {
		e, err := Element(list)
		require.NoError(t, err)
		assert.Contains(t, list, e)
	}

	_, err := Element([]int{})
	assert.True(t, lzerrors.IsInvalidInput(err))
}

func TestMapEntry(t *testing.T) {
	m := map[string]int{"one": 1, "two": 2, "three": 3}
	for i := 0; i < 50; i++ {
		entry, err := MapEntry(m)
		require.NoError(t, err)
		assert.Equal(t, m[entry.First()], entry.Second())
	}

	_, err := MapEntry(map[string]int{})
	assert.True(t, lzerrors.IsInvalidInput(err))
}

func TestColors(t *testing.T) {
	c := RGBColor()
	assert.True(t, c.IsValid())
	assert.Regexp(t, regexp.MustCompile(`^#[0-9a-f]{6}$`), HexColor())
}

func TestUUID(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)
	assert.Regexp(t, pattern, UUID())
	assert.NotEqual(t, UUID(), UUID())
}

func TestGeneratorIsReproducible(t *testing.T) {
	a := NewGenerator(7, 11)
	b := NewGenerator(7, 11)

	na, _ := a.Int(0, 1000, AnyParity)
	nb, _ := b.Int(0, 1000, AnyParity)
	assert.Equal(t, na, nb)
	assert.Equal(t, a.String(12, Letters), b.String(12, Letters))
	assert.Equal(t, a.Bytes(9), b.Bytes(9))
	assert.Equal(t, a.HexColor(), b.HexColor())
	assert.Equal(t, a.UUID(), b.UUID())

	ea, _ := ElementWith(a, []int{1, 2, 3, 4, 5})
	eb, _ := ElementWith(b, []int{1, 2, 3, 4, 5})
	assert.Equal(t, ea, eb)
}

func TestDateBetween(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	for i := 0; i < 100; i++ {
		got, err := DateBetween(tuple.NewPair(&start, &end))
		require.NoError(t, err)
		assert.True(t, got.After(start) && got.Before(end), "%v outside the bounds", got)
	}
}

func TestDateBetweenNilBound(t *testing.T) {
	fixed := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	restore := now
	now = func() time.Time { return fixed }
	defer func() { now = restore }()

	past := fixed.Add(-24 * time.Hour)
	got, err := DateBetween(tuple.NewPair[*time.Time, *time.Time](&past, nil))
	require.NoError(t, err)
	assert.True(t, got.After(past) && got.Before(fixed))

	future := fixed.Add(24 * time.Hour)
	got, err = DateBetween(tuple.NewPair[*time.Time, *time.Time](nil, &future))
	require.NoError(t, err)
	assert.True(t, got.After(fixed) && got.Before(future))

	_, err = DateBetween(tuple.NewPair[*time.Time, *time.Time](&future, nil))
	assert.True(t, lzerrors.IsValidationFailed(err))

	_, err = DateBetween(tuple.NewPair[*time.Time, *time.Time](nil, nil))
	assert.True(t, lzerrors.IsValidationFailed(err))
}

func TestDateBetweenReversed(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(-time.Minute)
	_, err := DateBetween(tuple.NewPair(&start, &end))
	assert.True(t, lzerrors.IsValidationFailed(err))

	adjacent := start.Add(time.Nanosecond)
	_, err = DateBetween(tuple.NewPair(&start, &adjacent))
	assert.True(t, lzerrors.IsValidationFailed(err))
}

func TestLocalDateTimeBetween(t *testing.T) {
	start := timex.DateTimeOf(timex.DateOf(2024, 3, 5), timex.TimeOf(8, 0, 0, 0))
	end := timex.DateTimeOf(timex.DateOf(2024, 3, 5), timex.TimeOf(9, 0, 0, 0))

	for i := 0; i < 100; i++ {
		got, err := LocalDateTimeBetween(tuple.NewPair(&start, &end))
		require.NoError(t, err)
		assert.True(t, got.After(start) && got.Before(end), "%v outside the bounds", got)
	}

	_, err := LocalDateTimeBetween(tuple.NewPair(&end, &start))
	assert.True(t, lzerrors.IsValidationFailed(err))
}
