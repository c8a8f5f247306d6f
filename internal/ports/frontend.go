package ports

// Frontend is an entry point that feeds messages into the monitor service
type Frontend interface {
	// Start starts the front end; servers return once they are listening
	Start() error

	// Stop stops the front end and releases its resources
	Stop() error
}
