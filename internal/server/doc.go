// Package server runs the HTTP and gRPC transports of the provenance keeper
// until the process is asked to stop, then shuts both down gracefully.
package server
