package board

// DragPhase enumerates the states of a drag interaction.
type DragPhase int

const (
	// DragIdle means no drag is in progress.
	DragIdle DragPhase = iota

	// DragActive means a source placement has been picked up.
	DragActive

	// DragHover means the drag is over a valid target placement.
	DragHover
)

// DragState is the drag-and-drop interaction state machine:
//
//	Idle -> Active(source) -> (Hover(target) | Active) -> Idle
//
// The machine only tracks interaction state. It never mutates the
// ledger itself; Drop hands the pair back to the caller, which commits
// the swap. Cancelling at any point restores Idle with no observable
// side effects, so an aborted drag leaves every entity untouched.
type DragState struct {
	phase  DragPhase
	source string
	target string
}

// Phase returns the current phase.
func (d *DragState) Phase() DragPhase {
	return d.phase
}

// Source returns the source placement id, valid outside DragIdle.
func (d *DragState) Source() (string, bool) {
	return d.source, d.phase != DragIdle
}

// Target returns the hover target id, valid only in DragHover.
func (d *DragState) Target() (string, bool) {
	return d.target, d.phase == DragHover
}

// Start begins a drag from sourceID. Starting while a drag is already
// in progress restarts from the new source.
func (d *DragState) Start(sourceID string) {
	d.phase = DragActive
	d.source = sourceID
	d.target = ""
}

// HoverEnter records targetID as the current drop target. Hovering the
// source placement itself is ignored, not treated as a target, and
// hovering while idle does nothing.
func (d *DragState) HoverEnter(targetID string) {
	if d.phase == DragIdle || targetID == d.source {
		return
	}
	d.phase = DragHover
	d.target = targetID
}

// HoverLeave drops back to plain dragging when the pointer leaves the
// current target.
func (d *DragState) HoverLeave() {
	if d.phase == DragHover {
		d.phase = DragActive
		d.target = ""
	}
}

// Drop completes the interaction. It returns the (source, target) pair
// and true when the drag was over a valid target; otherwise ok is false
// and nothing should be committed. The machine always returns to Idle.
func (d *DragState) Drop() (source, target string, ok bool) {
	source, target = d.source, d.target
	ok = d.phase == DragHover
	d.reset()
	return source, target, ok
}

// Cancel aborts the interaction unconditionally (escape, drop outside
// any placement) and returns to Idle.
func (d *DragState) Cancel() {
	d.reset()
}

func (d *DragState) reset() {
	d.phase = DragIdle
	d.source = ""
	d.target = ""
}
