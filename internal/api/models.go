package api

// Request payloads. Birth dates accept YYYY-MM-DD and the DD.MM.YYYY family;
// as_of accepts YYYY-MM-DD only. Omitted as_of, year and month default to
// the current UTC date.

// ProfileRequest defines the payload for the profile endpoint.
type ProfileRequest struct {
	Name      string `json:"name"       validate:"required,max=200"`
	BirthDate string `json:"birth_date" validate:"required,max=32"`
	AsOf      string `json:"as_of"      validate:"omitempty,max=32"`
}

// CompatibilityRequest defines the payload for the compatibility endpoint.
type CompatibilityRequest struct {
	BirthDateA string `json:"birth_date_a" validate:"required,max=32"`
	BirthDateB string `json:"birth_date_b" validate:"required,max=32"`
}

// DailyForecastRequest defines the payload for the daily forecast endpoint.
type DailyForecastRequest struct {
	BirthDate string `json:"birth_date" validate:"required,max=32"`
	AsOf      string `json:"as_of"      validate:"omitempty,max=32"`
}

// PeriodRequest defines the payload of the monthly forecast and lucky dates endpoints.
type PeriodRequest struct {
	BirthDate string `json:"birth_date" validate:"required,max=32"`
	Year      int    `json:"year"       validate:"omitempty,min=1,max=9999"`
	Month     int    `json:"month"      validate:"omitempty,min=1,max=12"`
}

// YearlyForecastRequest defines the payload for the yearly forecast endpoint.
type YearlyForecastRequest struct {
	BirthDate string `json:"birth_date" validate:"required,max=32"`
	Year      int    `json:"year"       validate:"omitempty,min=1,max=9999"`
}
