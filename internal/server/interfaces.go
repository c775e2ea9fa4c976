package server

// Server is the lifecycle of the logbook API process.
type Server interface {
	// RunServer serves until SIGINT or SIGTERM and then shuts down.
	RunServer()
	Shutdown()
}
