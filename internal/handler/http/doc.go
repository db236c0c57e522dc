// Package http implements the HTTP transport layer of the gateway.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Payload validation runs as route middleware: a request body is checked
// against the operation's profile, and only a normalized payload reaches the
// handlers, which relay it to the account service. Cross-cutting concerns such
// as request tracing, access logging, and response compression are handled in
// this package as well.
package http
