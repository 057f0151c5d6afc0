package server

// Server is the lifecycle contract of the transport layer as seen from main:
// [Server.RunServer] blocks until a stop signal arrives, [Server.Shutdown]
// drains in-flight requests and releases resources.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server.
	Shutdown()
}
