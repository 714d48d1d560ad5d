// Package driver provides a callback-oriented wrapper around vm.Machine for
// embedders that would rather register an output/input-required handler than
// poll SupplyInput/DrainOutput themselves. It is additive sugar over the
// core polling facade (vm.Machine.SupplyInput/DrainOutput) required by the
// architecture, not a replacement for it: an embedder can always fall back
// to driving the Machine directly.
package driver

import "synacorvm/vm"

// Driver runs a Machine to completion, delivering output and input requests
// through callbacks instead of requiring the caller to poll. This mirrors
// the on_output/on_input_required callback shape the reference program wires
// its game-facing driver through, translated into idiomatic Go.
type Driver struct {
	// Machine is the engine instance being driven.
	Machine *vm.Machine

	// OnOutput, when set, is invoked with each batch of output bytes
	// produced between yields. If nil, output is silently discarded.
	OnOutput func([]byte)

	// OnInputRequired is invoked whenever the Machine reports
	// vm.InputRequired. It returns the characters to supply and whether to
	// continue running; returning ok=false stops the drive loop without
	// supplying anything (used by embedders that want to abandon the run on
	// EOF or user interrupt).
	OnInputRequired func() (input []byte, ok bool)
}

// New constructs a Driver around an already-built Machine.
func New(m *vm.Machine) *Driver {
	return &Driver{Machine: m}
}

// Run drives the Machine until it halts, faults, or needs input that
// OnInputRequired declines to supply (or that no OnInputRequired hook is set
// to supply). It returns the terminal yield reason and, on a
// fault, the fault error.
func (d *Driver) Run() (vm.Yield, error) {
	for {
		yield, err := d.Machine.Run()

		if d.OnOutput != nil {
			if out := d.Machine.DrainOutput(); len(out) > 0 {
				d.OnOutput(out)
			}
		} else {
			d.Machine.DrainOutput()
		}

		switch yield {
		case vm.Halted, vm.Faulted:
			return yield, err

		case vm.InputRequired:
			if d.OnInputRequired == nil {
				return yield, err
			}
			input, ok := d.OnInputRequired()
			if !ok {
				return yield, err
			}
			d.Machine.SupplyInput(input)
		}
	}
}
