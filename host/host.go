// Package host defines the narrow surface GFA256 consumes from, and
// provides to, its host virtual machine (spec.md §6). The host VM's own
// core instructions, library linking, site/address model, and bytecode
// reader/writer primitives are out of scope (spec.md §1) — this package
// supplies only the interfaces GFA256 needs to be exercised without one,
// plus an in-memory reference implementation for tests and tooling.
package host

// ISATag is the extension identifier string GFA256 publishes to the host
// loader (spec.md §6).
const ISATag = "GFA256"

// ControlRegisters is the narrow interface GFA256 consumes from the host's
// control-register state (spec.md §6): a persistent failure flag CK and a
// last-operation boolean outcome CO.
type ControlRegisters interface {
	// SetCO overwrites the last-operation outcome.
	SetCO(ok bool)

	// CO returns the last-operation outcome.
	CO() bool

	// FailCK sets CK to Fail. CK is monotone: once Fail, it never returns
	// to Ok within a program (spec.md §7, §8 property 7).
	FailCK()

	// CK reports whether the sticky failure flag has been set.
	CK() bool
}

// Registers is the in-memory reference implementation of ControlRegisters
// used by tests and by the debugger/gui tools in lieu of a real host VM.
type Registers struct {
	co bool
	ck bool
}

// NewRegisters returns a fresh control-register pair with CO=false, CK=Ok.
func NewRegisters() *Registers {
	return &Registers{}
}

func (r *Registers) SetCO(ok bool) { r.co = ok }
func (r *Registers) CO() bool      { return r.co }
func (r *Registers) FailCK()       { r.ck = true }
func (r *Registers) CK() bool      { return r.ck }

// Reset clears both registers back to their initial state. Unlike CK during
// a running program, this is a test/tooling convenience, not something the
// field ISA itself ever invokes.
func (r *Registers) Reset() {
	r.co = false
	r.ck = false
}
