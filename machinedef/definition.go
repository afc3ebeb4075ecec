// Package machinedef loads declarative state machine definitions and turns
// them into interconnect.StateMachine instances.
//
// A definition names its states and inputs; ordinals are list positions, and
// the first listed state is the initial one. Definitions are plain data with
// YAML/JSON tags, so they can live in config files next to the application:
//
//	name: printer
//	states: [ready, printing, finished]
//	inputs: [operate, take-document]
//	transitions:
//	  - {from: ready, on: operate, to: printing}
//	  - {from: printing, on: operate, to: finished}
//	  - {from: finished, on: take-document, to: ready}
package machinedef

import (
	"errors"
	"fmt"
)

// TransitionDef is one transition triple, by name.
type TransitionDef struct {
	From string `json:"from" yaml:"from"`
	On   string `json:"on" yaml:"on"`
	To   string `json:"to" yaml:"to"`
}

// Definition is a complete declarative machine description.
type Definition struct {
	Name        string          `json:"name" yaml:"name"`
	States      []string        `json:"states" yaml:"states"`
	Inputs      []string        `json:"inputs" yaml:"inputs"`
	Transitions []TransitionDef `json:"transitions" yaml:"transitions"`
}

// Validate checks the definition:
// - non-empty name, states and inputs
// - no duplicate state or input names
// - every transition endpoint and input exists
// - no orphaned states (every non-initial state is reachable from the
//   initial state via transitions)
func (d *Definition) Validate() error {
	if d.Name == "" {
		return errors.New("machine name is required")
	}
	if len(d.States) == 0 {
		return errors.New("at least one state is required")
	}
	if len(d.Inputs) == 0 {
		return errors.New("at least one input is required")
	}

	states := make(map[string]int, len(d.States))
	for i, s := range d.States {
		if s == "" {
			return fmt.Errorf("state %d has an empty name", i)
		}
		if _, exists := states[s]; exists {
			return fmt.Errorf("duplicate state %q", s)
		}
		states[s] = i
	}
	inputs := make(map[string]int, len(d.Inputs))
	for i, in := range d.Inputs {
		if in == "" {
			return fmt.Errorf("input %d has an empty name", i)
		}
		if _, exists := inputs[in]; exists {
			return fmt.Errorf("duplicate input %q", in)
		}
		inputs[in] = i
	}

	for i, t := range d.Transitions {
		if _, ok := states[t.From]; !ok {
			return fmt.Errorf("transition %d: unknown source state %q", i, t.From)
		}
		if _, ok := inputs[t.On]; !ok {
			return fmt.Errorf("transition %d: unknown input %q", i, t.On)
		}
		if _, ok := states[t.To]; !ok {
			return fmt.Errorf("transition %d: unknown target state %q", i, t.To)
		}
	}

	// Reachability from the initial state via transitions.
	reachable := map[string]bool{d.States[0]: true}
	for changed := true; changed; {
		changed = false
		for _, t := range d.Transitions {
			if reachable[t.From] && !reachable[t.To] {
				reachable[t.To] = true
				changed = true
			}
		}
	}
	for _, s := range d.States {
		if !reachable[s] {
			return fmt.Errorf("orphaned state %q (not reachable from initial %q)", s, d.States[0])
		}
	}

	return nil
}
