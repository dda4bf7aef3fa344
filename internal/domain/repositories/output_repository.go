package repositories

// OutputRepository publishes step outputs to the CI output channel.
type OutputRepository interface {
	Set(key, value string) error
}
