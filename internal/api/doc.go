// Package api handles incoming HTTP requests, request validation and
// response formatting for the numerology endpoints. It acts as an adapter
// between JSON clients and the numerology service, translating validation
// failures to 400 responses and everything else to sanitized 500s.
package api
