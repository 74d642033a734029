package service

// Phase is the lifecycle state of a Plan. Phases advance strictly in order.
type Phase int

// Phase values.
const (
	PhaseIdle Phase = iota
	PhaseSetsExpanded
	PhaseStructureBuilt
	PhaseStreaming
	PhaseDone
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSetsExpanded:
		return "sets_expanded"
	case PhaseStructureBuilt:
		return "structure_built"
	case PhaseStreaming:
		return "streaming"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}
