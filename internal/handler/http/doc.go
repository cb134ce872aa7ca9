// Package http implements the REST API of the provenance keeper.
//
// Manufacturers register products, consumers verify them and admins manage
// principals and review catalog inconsistencies. Cross-cutting concerns such
// as authentication, request tracing, access logging, response compression
// and the HashSHA256 integrity header are handled by middleware before a
// request reaches the service layer. Service errors are turned into status
// codes by a single table in errors_mapper.go.
package http
