package dockercli

// Fake is an in-memory Client for tests.
type Fake struct {
	Volumes []string
	Err     error
}

var _ Client = (*Fake)(nil)

func (f *Fake) ListVolumes() ([]string, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	out := make([]string, len(f.Volumes))
	copy(out, f.Volumes)
	return out, nil
}
