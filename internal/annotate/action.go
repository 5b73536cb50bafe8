package annotate

// Action is one drawable annotation produced by a completed user gesture.
// Geometry is mutable only through Translate; everything else is fixed at
// construction. Implementations never fail: degenerate geometry draws
// nothing and Bounds always returns a well-formed box.
//
// An Action is not safe for concurrent use; the host must serialize Draw and
// Translate per instance.
type Action interface {
	// ID returns a stable identifier the host can key the action by.
	ID() string
	// Mode reports which tool produced the action.
	Mode() Mode
	// Draw paints the action in view coordinates. All stored points pass
	// through toView; length quantities are multiplied by scale.
	Draw(s Surface, toView Transform, scale float64)
	// Bounds returns the padded bounding box in normalized space.
	Bounds() Box
	// ContainsPoint reports whether the normalized point hits the action.
	ContainsPoint(x, y float64) bool
	// Translate rigidly shifts the geometry by normalized deltas.
	Translate(dx, dy float64)
}

// Stack holds an ordered list of actions and applies the painter's
// algorithm: later actions draw over earlier ones, and hit testing walks the
// list in reverse so the topmost action wins.
type Stack struct {
	actions []Action
}

// NewStack returns an empty action stack.
func NewStack() *Stack {
	return &Stack{}
}

// Push appends an action to the top of the stack.
func (st *Stack) Push(a Action) {
	if a == nil {
		return
	}
	st.actions = append(st.actions, a)
}

// Remove deletes the action with the given id, preserving order. It reports
// whether an action was removed.
func (st *Stack) Remove(id string) bool {
	for i, a := range st.actions {
		if a.ID() == id {
			st.actions = append(st.actions[:i], st.actions[i+1:]...)
			return true
		}
	}
	return false
}

// Find returns the action with the given id, or nil.
func (st *Stack) Find(id string) Action {
	for _, a := range st.actions {
		if a.ID() == id {
			return a
		}
	}
	return nil
}

// Len reports the number of actions held.
func (st *Stack) Len() int { return len(st.actions) }

// Actions returns the actions bottom to top.
func (st *Stack) Actions() []Action {
	out := make([]Action, len(st.actions))
	copy(out, st.actions)
	return out
}

// Draw paints every action bottom to top.
func (st *Stack) Draw(s Surface, toView Transform, scale float64) {
	for _, a := range st.actions {
		a.Draw(s, toView, scale)
	}
}

// TopmostAt returns the topmost action containing the normalized point, or
// nil when nothing is hit.
func (st *Stack) TopmostAt(x, y float64) Action {
	for i := len(st.actions) - 1; i >= 0; i-- {
		if st.actions[i].ContainsPoint(x, y) {
			return st.actions[i]
		}
	}
	return nil
}

// Translate shifts the action with the given id and reports whether it was
// found.
func (st *Stack) Translate(id string, dx, dy float64) bool {
	a := st.Find(id)
	if a == nil {
		return false
	}
	a.Translate(dx, dy)
	return true
}
