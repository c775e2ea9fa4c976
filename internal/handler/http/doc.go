// Package http implements the REST API of the logbook server.
//
// It wires chi routes to the service layer. Tracing, access logging,
// metrics, compression and authentication are handled by middleware before
// a request reaches a handler.
package http
