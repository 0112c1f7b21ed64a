package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"workhours/internal/domain/clocktime"
	"workhours/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logOn(day, start, end, notes string) *entity.WorkLog {
	date, err := clocktime.ParseDate(day)
	if err != nil {
		panic(err)
	}

	return &entity.WorkLog{
		Date:            date,
		StartTime:       clocktime.MustParse(start),
		EndTime:         clocktime.MustParse(end),
		UsesDefaultRate: true,
		Notes:           notes,
	}
}

func exportRows(t *testing.T, logs []*entity.WorkLog, profile *entity.WageProfile) [][]string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, NewCSVExporter().Export(&buf, logs, profile))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	return rows
}

func TestCSVExporter_Export(t *testing.T) {
	profile := &entity.WageProfile{
		Currency:          entity.CurrencyEUR,
		DefaultHourlyWage: decimal.NewNullDecimal(decimal.RequireFromString("20")),
	}
	custom := logOn("2025-03-04", "09:30:00", "17:15:00", "")
	custom.UsesDefaultRate = false
	custom.CustomRate = decimal.NewNullDecimal(decimal.RequireFromString("35.5"))

	rows := exportRows(t, []*entity.WorkLog{logOn("2025-03-03", "09:00", "17:00", "Client A"), custom}, profile)

	require.Len(t, rows, 3)
	assert.Equal(t, Header, rows[0])
	assert.Equal(t, []string{"2025-03-03", "09:00:00", "17:00:00", "8.00", "€20.00", "€160.00", "Client A"}, rows[1])
	assert.Equal(t, []string{"2025-03-04", "09:30:00", "17:15:00", "7.75", "€35.50", "€275.13", ""}, rows[2])
}

func TestCSVExporter_MissingRateAndProfile(t *testing.T) {
	rows := exportRows(t, []*entity.WorkLog{logOn("2025-03-03", "09:00", "10:00", "")}, nil)

	require.Len(t, rows, 2)
	assert.Equal(t, "$0.00", rows[1][4])
	assert.Equal(t, "$0.00", rows[1][5])
}

func TestCSVExporter_EmptyWritesHeaderOnly(t *testing.T) {
	rows := exportRows(t, nil, &entity.WageProfile{Currency: entity.CurrencyGBP})

	require.Len(t, rows, 1)
	assert.Equal(t, Header, rows[0])
}

func TestCSVExporter_RoundTrip(t *testing.T) {
	logs := []*entity.WorkLog{
		logOn("2025-03-03", "09:00:15", "17:00:45", `Quotes "and", commas`),
		logOn("2025-03-04", "22:00", "23:59:59", "line one\nline two"),
		logOn("2025-03-05", "08:00", "12:00", ""),
	}

	rows := exportRows(t, logs, &entity.WageProfile{Currency: entity.CurrencyUSD})
	require.Len(t, rows, len(logs)+1)

	for i, row := range rows[1:] {
		date, err := clocktime.ParseDate(row[0])
		require.NoError(t, err)
		start, err := clocktime.Parse(row[1])
		require.NoError(t, err)
		end, err := clocktime.Parse(row[2])
		require.NoError(t, err)

		assert.True(t, logs[i].Date.Equal(date))
		assert.Equal(t, logs[i].StartTime, start)
		assert.Equal(t, logs[i].EndTime, end)
		assert.Equal(t, logs[i].Notes, row[6])
	}
}

func TestCSVExporter_ContentType(t *testing.T) {
	assert.Equal(t, "text/csv; charset=utf-8", NewCSVExporter().ContentType())
}
