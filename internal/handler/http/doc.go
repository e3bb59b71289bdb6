// Package http implements the HTTP transport layer of the car-keeper API.
//
// It exposes route wiring, request handlers, and middleware. Request
// tracing, access logging, metrics, CORS, response compression, per-request
// database connections and token authentication are handled here before
// requests are delegated to the service layer.
package http
