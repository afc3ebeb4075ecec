package machinedef

import (
	"fmt"

	"github.com/comalice/interconnect"
)

// State and Input are the ordinal types of definition-built machines. A
// value is the position of the corresponding name in the definition's list.
type State int
type Input int

// Machine is a StateMachine built from a Definition, together with the name
// tables needed to talk about its states and inputs symbolically. The
// embedded StateMachine is fully usable as such; Machine only adds the
// name-based conveniences.
type Machine struct {
	*interconnect.StateMachine[State, Input]
	def      *Definition
	stateIDs map[string]State
	inputIDs map[string]Input
}

// Build validates the definition and constructs the machine. The initial
// state is the first listed state.
func (d *Definition) Build() (*Machine, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("invalid definition: %w", err)
	}

	m := &Machine{
		StateMachine: interconnect.NewStateMachine[State, Input](len(d.States), len(d.Inputs)),
		def:          d,
		stateIDs:     make(map[string]State, len(d.States)),
		inputIDs:     make(map[string]Input, len(d.Inputs)),
	}
	for i, s := range d.States {
		m.stateIDs[s] = State(i)
	}
	for i, in := range d.Inputs {
		m.inputIDs[in] = Input(i)
	}

	transitions := make([]interconnect.Transition[State, Input], 0, len(d.Transitions))
	for _, t := range d.Transitions {
		transitions = append(transitions, interconnect.Transition[State, Input]{
			From:  m.stateIDs[t.From],
			Input: m.inputIDs[t.On],
			To:    m.stateIDs[t.To],
		})
	}
	m.AddTransitions(transitions...)

	return m, nil
}

// Definition returns the definition this machine was built from.
func (m *Machine) Definition() *Definition { return m.def }

// StateName returns the name of a state, or "" if out of range.
func (m *Machine) StateName(s State) string {
	if int(s) < 0 || int(s) >= len(m.def.States) {
		return ""
	}
	return m.def.States[s]
}

// InputName returns the name of an input, or "" if out of range.
func (m *Machine) InputName(i Input) string {
	if int(i) < 0 || int(i) >= len(m.def.Inputs) {
		return ""
	}
	return m.def.Inputs[i]
}

// StateNamed resolves a state name to its ordinal.
func (m *Machine) StateNamed(name string) (State, bool) {
	s, ok := m.stateIDs[name]
	return s, ok
}

// InputNamed resolves an input name to its ordinal.
func (m *Machine) InputNamed(name string) (Input, bool) {
	i, ok := m.inputIDs[name]
	return i, ok
}

// CurrentName returns the name of the current state.
func (m *Machine) CurrentName() string {
	return m.def.States[m.Current()]
}

// StepNamed feeds one input to the machine by name. Unknown names are an
// error, not a contract violation, because they typically come straight from
// external input.
func (m *Machine) StepNamed(input string) error {
	i, ok := m.inputIDs[input]
	if !ok {
		return fmt.Errorf("machine %q has no input %q", m.def.Name, input)
	}
	m.Step(i)
	return nil
}

// DOT renders the running machine as Graphviz DOT with the current state
// highlighted.
func (m *Machine) DOT() string {
	return m.def.DOT(m.CurrentName())
}
