package handler

import (
	"strconv"
	"time"

	"workhours/internal/domain/clocktime"
	domainerrors "workhours/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const maxListLimit = 500

// pathUUID parses the named path parameter.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.NewValidationError(name + ": expected a UUID")
	}

	return id, nil
}

// queryDate parses an optional YYYY-MM-DD query parameter.
func queryDate(c echo.Context, name string) (*time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	date, err := clocktime.ParseDate(raw)
	if err != nil {
		return nil, domainerrors.NewValidationError(name + ": expected YYYY-MM-DD")
	}

	return &date, nil
}

// queryDateRange parses the required from and to parameters.
func queryDateRange(c echo.Context) (time.Time, time.Time, error) {
	from, err := queryDate(c, "from")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := queryDate(c, "to")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if from == nil || to == nil {
		return time.Time{}, time.Time{}, domainerrors.NewValidationError("from and to are required")
	}

	return *from, *to, nil
}

// queryBool parses an optional boolean query parameter.
func queryBool(c echo.Context, name string) (*bool, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, domainerrors.NewValidationError(name + ": expected true or false")
	}

	return &value, nil
}

// queryLimit parses an optional positive limit, capped at maxListLimit.
func queryLimit(c echo.Context) (int, error) {
	raw := c.QueryParam("limit")
	if raw == "" {
		return 0, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, domainerrors.NewValidationError("limit: expected a non-negative integer")
	}

	return min(limit, maxListLimit), nil
}

// queryMonth parses an optional YYYY-MM parameter into the first day of that month.
func queryMonth(c echo.Context, name string) (time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return time.Time{}, nil
	}

	month, err := time.Parse("2006-01", raw)
	if err != nil {
		return time.Time{}, domainerrors.NewValidationError(name + ": expected YYYY-MM")
	}

	return month, nil
}
