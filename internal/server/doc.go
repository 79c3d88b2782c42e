// Package server runs the zephyr-centrum listeners.
//
// The REST API listens on SERVER_ADDRESS and the gRPC health service on
// SERVER_GRPC_ADDRESS; either may be left empty. Both are started together,
// stopped together on SIGINT or SIGTERM and drained within
// SERVER_SHUTDOWN_TIMEOUT.
package server
