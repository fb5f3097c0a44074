// Package service contains the application use cases that sit between the
// HTTP API and the numerology engine.
//
// The engine in internal/domain/numerology is pure: it never reads a clock
// and receives every reference date explicitly. The service layer owns
// everything around it:
//
//   - Parsing the birth date spellings people type, and checking them against today
//   - Resolving a missing as-of date, year or month from the injected clock
//   - Logging each calculation with personal data redacted
//   - Recording calculation counts and latency
//
// Services receive their dependencies through constructor injection. Invalid
// input surfaces as a domain validation error; anything else is wrapped in
// NumerologyServiceError so the API layer can tell the two apart.
package service
