package box

// Capability says whether a gesture kind may start on a box.
type Capability uint8

const (
	// Enabled allows the gesture. It is the zero value, so unset flags allow.
	Enabled Capability = iota
	// Disabled ignores the gesture's pointer-down entirely.
	Disabled
)

// String returns a readable capability name.
func (c Capability) String() string {
	if c == Disabled {
		return "disabled"
	}
	return "enabled"
}

// ResolveCapability maps an optional flag to a capability: nil and true
// enable, false disables.
func ResolveCapability(flag *bool) Capability {
	if flag != nil && !*flag {
		return Disabled
	}
	return Enabled
}

// Capabilities holds the per-box gesture switches.
type Capabilities struct {
	Drag   Capability
	Resize Capability
	Rotate Capability
}
