package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "5.000.000 ₫", FormatCurrency(5000000))
	assert.Equal(t, "0 ₫", FormatCurrency(0))
	assert.Equal(t, "999 ₫", FormatCurrency(999))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "10.000", FormatNumber(10000))
	assert.Equal(t, "1.234.567", FormatNumber(1234567))
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)

	assert.Equal(t, "05/03/2024", FormatDate(d))
	assert.Equal(t, "14:30 05/03/2024", FormatDateTime(d))
	assert.Equal(t, "", FormatDate(time.Time{}))
}

func TestRemainingIsNotClamped(t *testing.T) {
	assert.Equal(t, int64(2000000), Remaining(5000000, 3000000))
	assert.Equal(t, int64(-500), Remaining(1000, 1500))
}
