package focus

// Gate reports whether resource calls may be issued.
// *bridge.Bridge implements it.
type Gate interface {
	Ready() error
}

type openGate struct{}

func (openGate) Ready() error { return nil }

func gateOrOpen(g Gate) Gate {
	if g == nil {
		return openGate{}
	}
	return g
}
