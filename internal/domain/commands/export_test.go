package commands

// WriteDestination exports writeDestination for testing.
var WriteDestination = writeDestination //nolint:gochecknoglobals // test export
