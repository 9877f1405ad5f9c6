// Package api handles incoming HTTP requests, request validation, and
// response formatting for the /api/v1 surface. It acts as an adapter between
// clients and the store, billing, auth and content synthesis components.
// Every successful payload is wrapped in a shared.Envelope; validation
// failures are reported as 400 with a shared.ErrorResponse body.
package api
