// Package numerology implements the numerology engine: digit reduction, name
// mapping, the life path, the Pythagorean psychomatrix, personal cycles,
// pinnacles and challenges, karmic indicators, compatibility scoring and
// forecasts.
//
// Every function is pure. Nothing reads the wall clock; the reference date is
// always an argument. Inputs arrive as domain.BirthDate values, which are
// range-checked when they are constructed.
package numerology
