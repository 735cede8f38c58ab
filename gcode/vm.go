package gcode

// State is the stream state that affects which mix is active.
type State struct {
	Tool     int
	Z        float64
	Relative bool
}

// VM will track tool, Z position and coordinate mode across lines.
//
// The zero value is not ready for use; call NewVM.
type VM struct {
	st State
}

// NewVM constructs a new VM with the power-on state: tool 0, Z 0, absolute.
func NewVM() *VM {
	return &VM{}
}

func (vm VM) State() State         { return vm.st }
func (vm VM) Tool() int            { return vm.st.Tool }
func (vm VM) Z() float64           { return vm.st.Z }
func (vm VM) RelativeMotion() bool { return vm.st.Relative }

// Run classifies line and applies it to the VM state. The classification
// is returned so callers don't need to match the line twice.
func (vm *VM) Run(line string) Line {
	l := Classify(line)
	vm.Apply(l)
	return l
}

// Apply updates the state from an already classified line.
func (vm *VM) Apply(l Line) {
	if l.HasTool {
		vm.st.Tool = l.Tool
	}
	switch l.Mode {
	case ModeAbsolute:
		vm.st.Relative = false
	case ModeRelative:
		vm.st.Relative = true
	}
	if !l.HasZ {
		return
	}
	if vm.st.Relative {
		vm.st.Z += l.Z
	} else {
		vm.st.Z = l.Z
	}
}
