package dockercli

// Client is a narrow interface over the Docker CLI used by our app.
// Keep it small and focused on what we actually need so it stays mockable.
type Client interface {
	// ListVolumes returns the names of all Docker volumes known to the
	// local daemon, in the order the CLI reports them.
	ListVolumes() ([]string, error)
}
