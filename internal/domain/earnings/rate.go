// Package earnings turns work logs into hours and money figures.
package earnings

import (
	"workhours/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// EffectiveRate is the hourly rate that applies to log: the profile's default wage when the
// log uses the default rate, its custom rate otherwise. Missing values count as zero.
func EffectiveRate(log *entity.WorkLog, profile *entity.WageProfile) decimal.Decimal {
	if log == nil {
		return decimal.Zero
	}

	if log.UsesDefaultRate {
		if profile == nil || !profile.DefaultHourlyWage.Valid {
			return decimal.Zero
		}

		return profile.DefaultHourlyWage.Decimal
	}

	if !log.CustomRate.Valid {
		return decimal.Zero
	}

	return log.CustomRate.Decimal
}

// Earnings returns hours × effective rate for one log.
func Earnings(log *entity.WorkLog, profile *entity.WageProfile) decimal.Decimal {
	if log == nil {
		return decimal.Zero
	}

	return log.Hours().Mul(EffectiveRate(log, profile))
}
