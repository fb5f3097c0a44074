// Package domain contains the value types shared by every layer of the
// application: civil dates, validated birth dates, and the typed input errors.
// It is independent of any transport, storage, or clock; callers always pass
// the reference date explicitly.
package domain
