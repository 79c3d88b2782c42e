package server

// Server is the lifecycle contract shared by the HTTP listener, the gRPC
// listener and the composite that drives both.
type Server interface {
	// RunServer serves until the listener fails or Shutdown is called.
	// The composite additionally stops on SIGINT or SIGTERM.
	RunServer()

	// Shutdown stops accepting calls and drains the in-flight ones within
	// the configured shutdown timeout.
	Shutdown()
}
