package server

// Server runs the car-keeper listeners until the process is asked to stop.
type Server interface {
	// RunServer blocks until SIGINT, SIGTERM or SIGQUIT arrives or the
	// listener fails, then drains in-flight requests.
	RunServer()

	// Shutdown stops accepting connections and waits for active requests,
	// bounded by the configured shutdown timeout.
	Shutdown()
}
