package earnings

import (
	"testing"
	"time"

	"workhours/internal/domain/clocktime"
	"workhours/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func wage(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(dec(s))
}

func logOn(day, start, end string) *entity.WorkLog {
	date, err := clocktime.ParseDate(day)
	if err != nil {
		panic(err)
	}

	return &entity.WorkLog{
		Date:            date,
		StartTime:       clocktime.MustParse(start),
		EndTime:         clocktime.MustParse(end),
		UsesDefaultRate: true,
	}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "want %s, got %s", want, got)
}

func TestEffectiveRate(t *testing.T) {
	tests := []struct {
		name       string
		useDefault bool
		custom     decimal.NullDecimal
		profile    *entity.WageProfile
		want       string
	}{
		{"default with wage", true, decimal.NullDecimal{}, &entity.WageProfile{DefaultHourlyWage: wage("20")}, "20"},
		{"default without wage", true, decimal.NullDecimal{}, &entity.WageProfile{}, "0"},
		{"default without profile", true, decimal.NullDecimal{}, nil, "0"},
		{"default ignores custom", true, wage("99"), &entity.WageProfile{DefaultHourlyWage: wage("20")}, "20"},
		{"custom with rate", false, wage("35.5"), &entity.WageProfile{DefaultHourlyWage: wage("20")}, "35.5"},
		{"custom without rate", false, decimal.NullDecimal{}, &entity.WageProfile{DefaultHourlyWage: wage("20")}, "0"},
		{"both absent", false, decimal.NullDecimal{}, nil, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := &entity.WorkLog{UsesDefaultRate: tt.useDefault, CustomRate: tt.custom}
			assertDecimal(t, tt.want, EffectiveRate(log, tt.profile))
		})
	}
}

func TestEmptyInputs(t *testing.T) {
	assertDecimal(t, "0", TotalHours(nil))
	assertDecimal(t, "0", TotalEarnings([]*entity.WorkLog{}, nil))

	avg := AverageDaily(nil, nil)
	assertDecimal(t, "0", avg.Hours)
	assertDecimal(t, "0", avg.Earnings)
	assert.Empty(t, GroupByDay(nil, nil))
}

func TestGroupByDayAndAverageDaily(t *testing.T) {
	profile := &entity.WageProfile{DefaultHourlyWage: wage("10")}
	logs := []*entity.WorkLog{
		logOn("2025-03-04", "08:00", "12:00"),
		logOn("2025-03-03", "09:00", "11:00"),
		logOn("2025-03-03", "12:00", "15:00"),
		logOn("2025-03-03", "16:00", "21:00"),
	}

	days := GroupByDay(logs, profile)
	require.Len(t, days, 2)
	assert.Equal(t, "2025-03-03", clocktime.FormatDate(days[0].Date))
	assertDecimal(t, "10", days[0].Hours)
	assertDecimal(t, "100", days[0].Earnings)
	assert.Equal(t, "2025-03-04", clocktime.FormatDate(days[1].Date))
	assertDecimal(t, "4", days[1].Hours)

	assert.Equal(t, 2, DistinctDays(logs))
	avg := AverageDaily(logs, profile)
	assertDecimal(t, "7", avg.Hours)
	assertDecimal(t, "70", avg.Earnings)
}

func TestTotalEarningsMixesRates(t *testing.T) {
	profile := &entity.WageProfile{DefaultHourlyWage: wage("20")}
	custom := logOn("2025-01-02", "09:30", "17:15")
	custom.UsesDefaultRate = false
	custom.CustomRate = wage("40")

	logs := []*entity.WorkLog{logOn("2025-01-01", "09:00", "17:00"), custom}

	assertDecimal(t, "15.75", TotalHours(logs))
	assertDecimal(t, "470", TotalEarnings(logs, profile))
}

func TestPeriodComparison(t *testing.T) {
	profile := &entity.WageProfile{DefaultHourlyWage: wage("15")}
	current := []*entity.WorkLog{logOn("2025-02-10", "09:00", "17:00")}
	previous := []*entity.WorkLog{logOn("2025-02-03", "09:00", "19:00")}

	cmp := PeriodComparison(current, previous, profile)
	assertDecimal(t, "-2", cmp.HoursDelta)
	assertDecimal(t, "-30", cmp.EarningsDelta)
}

func TestPaidVsUnpaidSplit(t *testing.T) {
	profile := &entity.WageProfile{DefaultHourlyWage: wage("10")}

	paid := logOn("2025-02-10", "09:00", "17:00")
	paid.Paid = true
	unpaid := logOn("2025-02-11", "09:00", "11:00")

	split := PaidVsUnpaidSplit([]*entity.WorkLog{paid, unpaid}, profile)
	assertDecimal(t, "80", split.PaidEarnings)
	assertDecimal(t, "20", split.UnpaidEarnings)
	assertDecimal(t, "80", split.PercentagePaid)

	none := PaidVsUnpaidSplit([]*entity.WorkLog{paid}, &entity.WageProfile{})
	assertDecimal(t, "0", none.PercentagePaid)
}

func TestProject(t *testing.T) {
	p := Project(dec("100"), DefaultWorkingDaysPerMonth, DefaultMonthsPerYear)
	assertDecimal(t, "2100", p.Monthly)
	assertDecimal(t, "25200", p.Yearly)

	fallback := Project(dec("10"), 0, -1)
	assertDecimal(t, "210", fallback.Monthly)
	assertDecimal(t, "2520", fallback.Yearly)
}

func TestWeekdayBreakdown(t *testing.T) {
	// 2025-03-03 is a Monday, 2025-03-09 a Sunday.
	logs := []*entity.WorkLog{
		logOn("2025-03-03", "09:00", "12:00"),
		logOn("2025-03-09", "10:00", "11:30"),
		{UsesDefaultRate: true},
	}

	breakdown := WeekdayBreakdown(logs)
	require.Len(t, breakdown, 7)
	assert.Equal(t, time.Monday, breakdown[0].Weekday)
	assert.Equal(t, "Mon", breakdown[0].Label)
	assertDecimal(t, "3", breakdown[0].Hours)
	assert.Equal(t, time.Sunday, breakdown[6].Weekday)
	assertDecimal(t, "1.5", breakdown[6].Hours)
	assertDecimal(t, "0", breakdown[3].Hours)
}
