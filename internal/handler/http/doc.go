// Package http implements the REST transport of zephyr-centrum.
//
// Every request passes the same chain: panic recovery, trace ID, access log,
// admission gate, session extraction. Endpoints then apply a coarse policy
// (public, authenticated or ADMIN) before the handler delegates to the
// service layer. Service errors are translated into statuses in one place,
// see errors_mapper.go.
package http
