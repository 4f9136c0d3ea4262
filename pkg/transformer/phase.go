// Package transformer implements the multi-pass line/block rewriter: inline
// (~ish, ~welp) passes, then the block/loop construct pass, tracking used
// helpers and emitting an import header — spec §4.4.
package transformer

// Phase names one stage of a single-file transform, the same state-enum
// idiom the teacher's orchestrator.TestState uses to report where a run
// currently is.
type Phase int

const (
	PhaseRead Phase = iota
	PhaseInlineIsh
	PhaseInlineWelp
	PhaseInlineDrift
	PhaseBlock
	PhaseImportHeader
	PhaseDone
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseRead:
		return "read"
	case PhaseInlineIsh:
		return "inline_ish"
	case PhaseInlineWelp:
		return "inline_welp"
	case PhaseInlineDrift:
		return "inline_drift"
	case PhaseBlock:
		return "block"
	case PhaseImportHeader:
		return "import_header"
	case PhaseDone:
		return "done"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}
