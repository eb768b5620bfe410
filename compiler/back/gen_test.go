package back

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smokappstore/smopsysql/compiler/ir"
)

var pulse = ir.PulseEmit{
	Wavelength:   "1550nm",
	Duration:     "100ns",
	Polarization: "H",
	Laser: ir.LaserParams{
		FrequencyNM:  1550,
		DurationNS:   100,
		Polarization: "H",
	},
}

func TestAppendC(t *testing.T) {
	for _, tc := range []struct {
		x    ir.Instr
		want string
	}{
		{pulse, `laser_pulse_emit("1550nm", "100ns", 'H');`},
		{ir.Wait{TimeNS: 50}, "busy_wait_ns(50);"},
		{ir.Wait{TimeNS: 2000.7}, "busy_wait_ns(2000);"},
		{ir.Measure{Qubit: "q0"}, `measure_qubit("q0");`},
		{ir.Broadcast{Message: "QUANTUM_HELLO"}, `serial_putstr("QUANTUM_HELLO\n");`},
		{ir.ThermalPageCheck{Address: 65536, Threshold: 0.7}, "check_thermal_page(0x10000, 0.7);"},
		{ir.PhaseSync{Phase: 3.14159}, "sync_metriplectc_phase(3.14159);"},
		{ir.Entangle{}, "// Unknown instruction"},
		{ir.Jump{}, "// Unknown instruction"},
		{ir.Conditional{}, "// Unknown instruction"},
		{ir.Call{}, "// Unknown instruction"},
	} {
		assert.Equal(t, tc.want, string(AppendC(nil, tc.x)), "%v", tc.x.Kind())
	}
}

func TestGenerateC(t *testing.T) {
	code := GenerateC([]ir.Instr{
		pulse,
		ir.Wait{TimeNS: 50},
	})

	want := `/* AUTO-GENERATED SMOPSYSQL CODE */
#include "ql_bridge.h"

void quantum_program(void) {
    laser_pulse_emit("1550nm", "100ns", 'H');
    busy_wait_ns(50);
}
`

	assert.Equal(t, want, string(code))
}

func TestGenerateCEmptyProgram(t *testing.T) {
	code := GenerateC(nil)

	want := `/* AUTO-GENERATED SMOPSYSQL CODE */
#include "ql_bridge.h"

void quantum_program(void) {
}
`

	assert.Equal(t, want, string(code))
}

func TestNewRecordPulse(t *testing.T) {
	r := NewRecord(pulse)

	assert.Equal(t, "PULSE_LASER", r.Type)
	assert.Equal(t, map[string]any{
		"wavelength":   "1550nm",
		"duration":     "100ns",
		"polarization": "H",
	}, r.Operands)
	assert.Equal(t, 0, r.Opcode)
	require.NotNil(t, r.LaserParams)
	assert.Equal(t, pulse.Laser, *r.LaserParams)
	assert.Nil(t, r.QuantumState)
}

func TestNewRecordOperandKeys(t *testing.T) {
	for _, tc := range []struct {
		x        ir.Instr
		typ      string
		operands map[string]any
	}{
		{ir.Wait{TimeNS: 2000}, "WAIT", map[string]any{"time": 2000.0}},
		{ir.Measure{Qubit: "q1"}, "MEASURE", map[string]any{"qubit": "q1"}},
		{ir.Broadcast{Message: "hi"}, "BROADCAST", map[string]any{"message": "hi"}},
		{ir.ThermalPageCheck{Address: 255, Threshold: 0.8}, "THERMAL_PAGE", map[string]any{"address": 255, "threshold": 0.8}},
		{ir.PhaseSync{Phase: 1.5}, "SYNC_PHASE", map[string]any{"phase": 1.5}},
	} {
		r := NewRecord(tc.x)

		assert.Equal(t, tc.typ, r.Type)
		assert.Equal(t, tc.operands, r.Operands)
		assert.Nil(t, r.LaserParams, tc.typ)
		assert.Nil(t, r.QuantumState, tc.typ)
	}
}

func TestRecordJSON(t *testing.T) {
	data, err := json.Marshal(NewRecord(ir.Wait{TimeNS: 500}))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"type": "WAIT",
		"operands": {"time": 500},
		"opcode": 0,
		"laser_params": null,
		"quantum_state": null
	}`, string(data))

	data, err = json.Marshal(NewRecord(pulse))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"type": "PULSE_LASER",
		"operands": {"wavelength": "1550nm", "duration": "100ns", "polarization": "H"},
		"opcode": 0,
		"laser_params": {"frequency_nm": 1550, "duration_ns": 100, "polarization": "H"},
		"quantum_state": null
	}`, string(data))
}

func TestRenderersArePure(t *testing.T) {
	prog := []ir.Instr{pulse, ir.Wait{TimeNS: 50}, ir.PhaseSync{Phase: 1.5}}

	assert.Equal(t, GenerateC(prog), GenerateC(prog))
	assert.Equal(t, Records(prog), Records(prog))
}
