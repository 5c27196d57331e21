package config

// SpiritState identifies which behavior a spirit is running.
type SpiritState int

const (
	StatePatrol SpiritState = iota
	StateChopTree
	StateLightFire
)

func (s SpiritState) String() string {
	switch s {
	case StatePatrol:
		return "patrol"
	case StateChopTree:
		return "chop_tree"
	case StateLightFire:
		return "light_fire"
	}
	return "unknown"
}

// ParseSpiritState is the inverse of SpiritState.String.
func ParseSpiritState(s string) (SpiritState, bool) {
	for _, st := range []SpiritState{StatePatrol, StateChopTree, StateLightFire} {
		if st.String() == s {
			return st, true
		}
	}
	return StatePatrol, false
}
