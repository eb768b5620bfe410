// Package back renders compiled instructions into the two output forms:
// C source calling the ql_bridge runtime, and transport records for
// out-of-process dispatch to the Q-CORE controller. Both renderers are
// pure, the instruction list is the single source of truth.
package back

import (
	"github.com/nikandfor/hacked/hfmt"

	"github.com/smokappstore/smopsysql/compiler/ir"
)

// Record is the transport-ready form of one instruction. LaserParams and
// QuantumState stay null for the kinds that do not carry them.
type Record struct {
	Type         string          `json:"type"`
	Operands     map[string]any  `json:"operands"`
	Opcode       int             `json:"opcode"` // reserved for a binary encoding
	LaserParams  *ir.LaserParams `json:"laser_params"`
	QuantumState map[string]any  `json:"quantum_state"`
}

// GenerateC renders the whole translation unit: header comment, bridge
// include, the quantum_program wrapper, one call per instruction.
func GenerateC(prog []ir.Instr) []byte {
	b := []byte(`/* AUTO-GENERATED SMOPSYSQL CODE */
#include "ql_bridge.h"

void quantum_program(void) {
`)

	for _, x := range prog {
		b = append(b, "    "...)
		b = AppendC(b, x)
		b = append(b, '\n')
	}

	return append(b, "}\n"...)
}

// AppendC renders one instruction as a call into the ql_bridge runtime.
// Reserved and unknown kinds render as a comment placeholder.
func AppendC(b []byte, x ir.Instr) []byte {
	switch x := x.(type) {
	case ir.PulseEmit:
		return hfmt.Appendf(b, `laser_pulse_emit("%s", "%s", '%s');`, x.Wavelength, x.Duration, x.Polarization)
	case ir.Wait:
		return hfmt.Appendf(b, "busy_wait_ns(%d);", int(x.TimeNS))
	case ir.Measure:
		return hfmt.Appendf(b, `measure_qubit("%s");`, x.Qubit)
	case ir.Broadcast:
		return hfmt.Appendf(b, `serial_putstr("%s\n");`, x.Message)
	case ir.ThermalPageCheck:
		return hfmt.Appendf(b, "check_thermal_page(0x%x, %v);", x.Address, x.Threshold)
	case ir.PhaseSync:
		return hfmt.Appendf(b, "sync_metriplectc_phase(%v);", x.Phase)
	default:
		return append(b, "// Unknown instruction"...)
	}
}

// Records renders the structured form of the whole program in source order.
func Records(prog []ir.Instr) []Record {
	out := make([]Record, len(prog))

	for i, x := range prog {
		out[i] = NewRecord(x)
	}

	return out
}

// NewRecord renders one instruction. The operand keys are fixed per kind.
func NewRecord(x ir.Instr) Record {
	r := Record{
		Type:     x.Kind().String(),
		Operands: map[string]any{},
	}

	switch x := x.(type) {
	case ir.PulseEmit:
		r.Operands["wavelength"] = x.Wavelength
		r.Operands["duration"] = x.Duration
		r.Operands["polarization"] = x.Polarization

		lp := x.Laser
		r.LaserParams = &lp
	case ir.Wait:
		r.Operands["time"] = x.TimeNS
	case ir.Measure:
		r.Operands["qubit"] = x.Qubit
	case ir.Broadcast:
		r.Operands["message"] = x.Message
	case ir.ThermalPageCheck:
		r.Operands["address"] = x.Address
		r.Operands["threshold"] = x.Threshold
	case ir.PhaseSync:
		r.Operands["phase"] = x.Phase
	}

	return r
}
