package ir

import "fmt"

type (
	// Kind tags a compiled instruction category. The symbolic names are
	// the ones the Q-CORE controller expects on the wire.
	Kind int

	// Instr is one compiled instruction. Values are created by the parser,
	// never mutated after that, and read by both code generators.
	Instr interface {
		Kind() Kind
	}

	// LaserParams is the derived physical configuration of a pulse.
	LaserParams struct {
		FrequencyNM  float64 `json:"frequency_nm"`
		DurationNS   float64 `json:"duration_ns"`
		Polarization string  `json:"polarization"`
	}

	PulseEmit struct {
		Wavelength   string // raw literal, "1550nm"
		Duration     string // raw literal, "100ns"
		Polarization string // one of H V D L R

		Laser LaserParams
	}

	Wait struct {
		TimeNS float64
	}

	Measure struct {
		Qubit string
	}

	Broadcast struct {
		Message string
	}

	ThermalPageCheck struct {
		Address   int
		Threshold float64
	}

	PhaseSync struct {
		Phase float64
	}

	// Reserved instruction categories. The parser never produces them,
	// both generators treat them as placeholders.

	Entangle struct{}

	Jump struct{}

	Conditional struct{}

	Call struct{}
)

const (
	KindPulseLaser Kind = iota
	KindWait
	KindMeasure
	KindEntangle
	KindBroadcast
	KindThermalPage
	KindSyncPhase
	KindJump
	KindConditional
	KindCall
)

var kindNames = [...]string{
	KindPulseLaser:  "PULSE_LASER",
	KindWait:        "WAIT",
	KindMeasure:     "MEASURE",
	KindEntangle:    "ENTANGLE",
	KindBroadcast:   "BROADCAST",
	KindThermalPage: "THERMAL_PAGE",
	KindSyncPhase:   "SYNC_PHASE",
	KindJump:        "JUMP",
	KindConditional: "CONDITIONAL",
	KindCall:        "CALL",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

func (PulseEmit) Kind() Kind        { return KindPulseLaser }
func (Wait) Kind() Kind             { return KindWait }
func (Measure) Kind() Kind          { return KindMeasure }
func (Entangle) Kind() Kind         { return KindEntangle }
func (Broadcast) Kind() Kind        { return KindBroadcast }
func (ThermalPageCheck) Kind() Kind { return KindThermalPage }
func (PhaseSync) Kind() Kind        { return KindSyncPhase }
func (Jump) Kind() Kind             { return KindJump }
func (Conditional) Kind() Kind      { return KindConditional }
func (Call) Kind() Kind             { return KindCall }
