package loader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fximport.magictradebot.com/models"
)

func fields(line string) []string {
	return strings.Split(line, ",")
}

func TestParseLine_ValidRecord(t *testing.T) {
	result := ParseLine(fields("2023.05.01,13:45,1.1,1.2,1.05,1.15,1000"))

	require.Equal(t, StatusOK, result.Status)
	assert.Equal(t, models.PriceRecord{
		Date:   "20230501",
		Time:   "134500",
		Open:   1.1,
		High:   1.2,
		Low:    1.05,
		Close:  1.15,
		Volume: 1000,
	}, result.Record)
}

func TestParseLine_Idempotent(t *testing.T) {
	line := fields("2023.05.01,13:45,1.1,1.2,1.05,1.15,1000")
	first := ParseLine(line)
	second := ParseLine(line)
	assert.Equal(t, first, second)
}

func TestParseLine_DateNormalization(t *testing.T) {
	result := ParseLine(fields("2023.05.01,134500,1,1,1,1,1"))
	require.Equal(t, StatusOK, result.Status)
	assert.Equal(t, "20230501", result.Record.Date)

	// Already-compact dates pass through.
	result = ParseLine(fields("20230501,134500,1,1,1,1,1"))
	require.Equal(t, StatusOK, result.Status)
	assert.Equal(t, "20230501", result.Record.Date)

	// Not reducible to exactly 8 characters.
	result = ParseLine(fields("2023.5.1,134500,1,1,1,1,1"))
	assert.Equal(t, StatusBad, result.Status)
	assert.Contains(t, result.Reason, "invalid date format")
}

func TestParseLine_TimeNormalization(t *testing.T) {
	result := ParseLine(fields("20230501,13:45,1,1,1,1,1"))
	require.Equal(t, StatusOK, result.Status)
	assert.Equal(t, "134500", result.Record.Time)

	// Six digits without a colon pass unchanged.
	result = ParseLine(fields("20230501,134500,1,1,1,1,1"))
	require.Equal(t, StatusOK, result.Status)
	assert.Equal(t, "134500", result.Record.Time)

	result = ParseLine(fields("20230501,1345,1,1,1,1,1"))
	assert.Equal(t, StatusBad, result.Status)
	assert.Contains(t, result.Reason, "invalid time format")
}

func TestParseLine_SkipsBlankAndHeaders(t *testing.T) {
	assert.Equal(t, StatusSkip, ParseLine(nil).Status)
	assert.Equal(t, StatusSkip, ParseLine(fields("")).Status)
	assert.Equal(t, StatusSkip, ParseLine(fields(" , , ")).Status)
	assert.Equal(t, StatusSkip, ParseLine(fields("# generated export")).Status)
	assert.Equal(t, StatusSkip, ParseLine(fields("Date,Time,Open,High,Low,Close,Volume")).Status)
}

func TestParseLine_ShortRow(t *testing.T) {
	result := ParseLine(fields("2023.05.01,13:45,1.1,1.2,1.05,1.15"))
	assert.Equal(t, StatusShortRow, result.Status)
	assert.Equal(t, 6, result.Columns)
}

func TestParseLine_NonNumericFields(t *testing.T) {
	result := ParseLine(fields("2023.05.01,13:45,abc,1.2,1.05,1.15,1000"))
	assert.Equal(t, StatusBad, result.Status)
	assert.Contains(t, result.Reason, "invalid open")

	result = ParseLine(fields("2023.05.01,13:45,1.1,1.2,1.05,1.15,n/a"))
	assert.Equal(t, StatusBad, result.Status)
	assert.Contains(t, result.Reason, "invalid volume")
}

func TestParseLine_NonFiniteFields(t *testing.T) {
	result := ParseLine(fields("2023.05.01,13:45,1.1,1.2,1.05,1.15,nan"))
	assert.Equal(t, StatusBad, result.Status)
	assert.Contains(t, result.Reason, "invalid volume")

	result = ParseLine(fields("2023.05.01,13:45,+Inf,1.2,1.05,1.15,1000"))
	assert.Equal(t, StatusBad, result.Status)
	assert.Contains(t, result.Reason, "invalid open")

	result = ParseLine(fields("2023.05.01,13:45,1.1,1.2,1.05,-inf,1000"))
	assert.Equal(t, StatusBad, result.Status)
	assert.Contains(t, result.Reason, "invalid close")
}

func TestParseLine_FloatVolumeTruncates(t *testing.T) {
	result := ParseLine(fields("2023.05.01,13:45,1.1,1.2,1.05,1.15,1000.7"))
	require.Equal(t, StatusOK, result.Status)
	assert.Equal(t, int64(1000), result.Record.Volume)
}

func TestParseLine_TrimsFieldWhitespace(t *testing.T) {
	result := ParseLine(fields(" 2023.05.01 , 13:45 , 1.1 , 1.2 , 1.05 , 1.15 , 1000 "))
	require.Equal(t, StatusOK, result.Status)
	assert.Equal(t, "20230501", result.Record.Date)
	assert.Equal(t, 1.1, result.Record.Open)
}
