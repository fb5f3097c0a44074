package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/phrazzld/numera/internal/domain"
	"github.com/phrazzld/numera/internal/domain/numerology"
	"github.com/phrazzld/numera/internal/platform/logger"
	"github.com/phrazzld/numera/internal/platform/metrics"
	"github.com/phrazzld/numera/internal/redact"
)

// Operation names used in logs, metrics and service errors.
const (
	OpProfile         = "profile"
	OpCompatibility   = "compatibility"
	OpDailyForecast   = "forecast_daily"
	OpMonthlyForecast = "forecast_monthly"
	OpYearlyForecast  = "forecast_yearly"
	OpLuckyDates      = "lucky_dates"
)

// Clock returns the current time. Only the service layer reads it; the engine
// always receives the reference date explicitly.
type Clock func() time.Time

// ProfileRequest carries the raw inputs of a profile calculation.
type ProfileRequest struct {
	Name      string
	BirthDate string
	// AsOf is optional; the current UTC date is used when empty
	AsOf string
}

// NumerologyService turns raw request values into engine calls. It parses
// and validates dates against the clock, resolves missing reference dates,
// and records logs and metrics for every calculation.
type NumerologyService interface {
	// Profile computes the full profile of one person
	Profile(ctx context.Context, req ProfileRequest) (*numerology.Profile, error)

	// Compatibility scores two birth dates against each other
	Compatibility(ctx context.Context, birthA, birthB string) (numerology.CompatibilityResult, error)

	// DailyForecast returns the forecast for asOf, or for today when asOf is empty
	DailyForecast(ctx context.Context, birth, asOf string) (numerology.DailyForecast, error)

	// MonthlyForecast returns the forecast of a month; zero year or month means the current one
	MonthlyForecast(ctx context.Context, birth string, year, month int) (numerology.MonthlyForecast, error)

	// YearlyForecast returns the forecast of a year; zero means the current year
	YearlyForecast(ctx context.Context, birth string, year int) (numerology.YearlyForecast, error)

	// LuckyDates ranks the days of a month; zero year or month means the current one
	LuckyDates(ctx context.Context, birth string, year, month int) ([]numerology.LuckyDate, error)
}

// numerologyServiceImpl implements the NumerologyService interface
type numerologyServiceImpl struct {
	engine  numerology.Engine
	metrics *metrics.Metrics
	clock   Clock
	logger  *slog.Logger
}

// NewNumerologyService creates a new NumerologyService.
// It returns an error if the engine is nil. A nil metrics records nothing,
// a nil clock uses time.Now and a nil logger uses slog.Default().
func NewNumerologyService(
	engine numerology.Engine,
	m *metrics.Metrics,
	clock Clock,
	log *slog.Logger,
) (NumerologyService, error) {
	if engine == nil {
		return nil, &NumerologyServiceError{
			Operation: "create_service",
			Message:   "engine cannot be nil",
			Err:       ErrMissingDependency,
		}
	}
	if clock == nil {
		clock = time.Now
	}
	if log == nil {
		log = slog.Default()
	}

	return &numerologyServiceImpl{
		engine:  engine,
		metrics: m,
		clock:   clock,
		logger:  log.With("component", "numerology_service"),
	}, nil
}

// today is the current calendar date in UTC.
func (s *numerologyServiceImpl) today() domain.Date {
	return domain.DateOf(s.clock().UTC())
}

// Profile implements NumerologyService
func (s *numerologyServiceImpl) Profile(ctx context.Context, req ProfileRequest) (*numerology.Profile, error) {
	start := time.Now()
	today := s.today()

	profile, err := func() (*numerology.Profile, error) {
		birth, err := domain.ParseFlexibleBirthDate(req.BirthDate, today)
		if err != nil {
			return nil, err
		}
		asOf := today
		if req.AsOf != "" {
			if asOf, err = domain.ParseAsOfDate(req.AsOf, birth); err != nil {
				return nil, err
			}
		}
		return s.engine.Profile(numerology.ProfileInput{Name: req.Name, BirthDate: birth}, asOf)
	}()

	err = s.finish(ctx, OpProfile, start, err,
		"name", redact.Name(req.Name),
		"birth_date", redact.BirthDate(req.BirthDate))
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// Compatibility implements NumerologyService
func (s *numerologyServiceImpl) Compatibility(
	ctx context.Context,
	birthA, birthB string,
) (numerology.CompatibilityResult, error) {
	start := time.Now()
	today := s.today()

	result, err := func() (numerology.CompatibilityResult, error) {
		a, err := domain.ParseFlexibleBirthDate(birthA, today)
		if err != nil {
			return numerology.CompatibilityResult{}, renameField(err, "birth_date_a")
		}
		b, err := domain.ParseFlexibleBirthDate(birthB, today)
		if err != nil {
			return numerology.CompatibilityResult{}, renameField(err, "birth_date_b")
		}
		return s.engine.Compatibility(a, b)
	}()

	err = s.finish(ctx, OpCompatibility, start, err,
		"birth_date_a", redact.BirthDate(birthA),
		"birth_date_b", redact.BirthDate(birthB))
	if err != nil {
		return numerology.CompatibilityResult{}, err
	}
	return result, nil
}

// DailyForecast implements NumerologyService
func (s *numerologyServiceImpl) DailyForecast(
	ctx context.Context,
	birthDate, asOfDate string,
) (numerology.DailyForecast, error) {
	start := time.Now()
	today := s.today()

	forecast, err := func() (numerology.DailyForecast, error) {
		birth, err := domain.ParseFlexibleBirthDate(birthDate, today)
		if err != nil {
			return numerology.DailyForecast{}, err
		}
		asOf := today
		if asOfDate != "" {
			if asOf, err = domain.ParseAsOfDate(asOfDate, birth); err != nil {
				return numerology.DailyForecast{}, err
			}
		}
		return s.engine.Daily(birth, asOf)
	}()

	err = s.finish(ctx, OpDailyForecast, start, err, "birth_date", redact.BirthDate(birthDate))
	if err != nil {
		return numerology.DailyForecast{}, err
	}
	return forecast, nil
}

// MonthlyForecast implements NumerologyService
func (s *numerologyServiceImpl) MonthlyForecast(
	ctx context.Context,
	birthDate string,
	year, month int,
) (numerology.MonthlyForecast, error) {
	start := time.Now()
	today := s.today()
	year, month = defaultMonth(today, year, month)

	forecast, err := func() (numerology.MonthlyForecast, error) {
		birth, err := domain.ParseFlexibleBirthDate(birthDate, today)
		if err != nil {
			return numerology.MonthlyForecast{}, err
		}
		return s.engine.Monthly(birth, year, month)
	}()

	err = s.finish(ctx, OpMonthlyForecast, start, err,
		"birth_date", redact.BirthDate(birthDate),
		"year", year,
		"month", month)
	if err != nil {
		return numerology.MonthlyForecast{}, err
	}
	return forecast, nil
}

// YearlyForecast implements NumerologyService
func (s *numerologyServiceImpl) YearlyForecast(
	ctx context.Context,
	birthDate string,
	year int,
) (numerology.YearlyForecast, error) {
	start := time.Now()
	today := s.today()
	if year == 0 {
		year = today.Year
	}

	forecast, err := func() (numerology.YearlyForecast, error) {
		birth, err := domain.ParseFlexibleBirthDate(birthDate, today)
		if err != nil {
			return numerology.YearlyForecast{}, err
		}
		return s.engine.Yearly(birth, year)
	}()

	err = s.finish(ctx, OpYearlyForecast, start, err,
		"birth_date", redact.BirthDate(birthDate),
		"year", year)
	if err != nil {
		return numerology.YearlyForecast{}, err
	}
	return forecast, nil
}

// LuckyDates implements NumerologyService
func (s *numerologyServiceImpl) LuckyDates(
	ctx context.Context,
	birthDate string,
	year, month int,
) ([]numerology.LuckyDate, error) {
	start := time.Now()
	today := s.today()
	year, month = defaultMonth(today, year, month)

	dates, err := func() ([]numerology.LuckyDate, error) {
		birth, err := domain.ParseFlexibleBirthDate(birthDate, today)
		if err != nil {
			return nil, err
		}
		return s.engine.LuckyDates(birth, year, month)
	}()

	err = s.finish(ctx, OpLuckyDates, start, err,
		"birth_date", redact.BirthDate(birthDate),
		"year", year,
		"month", month)
	if err != nil {
		return nil, err
	}
	return dates, nil
}

// finish logs and measures a completed operation and returns err in its
// service form. Validation failures are expected traffic and log at debug.
func (s *numerologyServiceImpl) finish(
	ctx context.Context,
	operation string,
	start time.Time,
	err error,
	attrs ...any,
) error {
	elapsed := time.Since(start)
	log := logger.FromContextOrDefault(ctx, s.logger)
	attrs = append(attrs, "operation", operation, "duration_ms", elapsed.Milliseconds())

	switch {
	case err == nil:
		s.metrics.ObserveCalculation(operation, metrics.OutcomeSuccess, elapsed)
		log.DebugContext(ctx, "calculation completed", attrs...)
		return nil
	case errors.Is(err, domain.ErrValidation):
		s.metrics.ObserveCalculation(operation, metrics.OutcomeInvalidInput, elapsed)
		log.DebugContext(ctx, "calculation rejected invalid input",
			append(attrs, "error", redact.Error(err))...)
		return err
	default:
		s.metrics.ObserveCalculation(operation, metrics.OutcomeError, elapsed)
		log.ErrorContext(ctx, "calculation failed",
			append(attrs, "error", redact.Error(err))...)
		return NewNumerologyServiceError(operation, "calculation failed", err)
	}
}

// defaultMonth fills a zero year or month from today.
func defaultMonth(today domain.Date, year, month int) (int, int) {
	if year == 0 {
		year = today.Year
	}
	if month == 0 {
		month = today.Month
	}
	return year, month
}

// renameField re-targets a birth date validation error at a specific request field.
func renameField(err error, field string) error {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return domain.NewValidationError(field, ve.Message, ve.Err)
	}
	return err
}
