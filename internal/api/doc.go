// Package api provides HTTP handlers for the API. Handlers map requests
// onto TaskService operations and translate service errors into sanitized
// JSON responses; they carry no business logic of their own.
package api
