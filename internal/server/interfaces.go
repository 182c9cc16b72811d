package server

// Server is the lifecycle contract of an inbound transport.
//
// RunServer blocks until the process is told to stop. Shutdown drains
// in-flight requests and releases the listener; it is safe to call once
// RunServer has returned.
type Server interface {
	RunServer()
	Shutdown()
}
