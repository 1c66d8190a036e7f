package svgstyle

// Stack is the cascade of style sets of the elements being visited.
// A Stack belongs to a single parse; it is not safe for concurrent use.
type Stack struct {
	frames []frame
}

type frame struct {
	own    Set // as pushed
	merged Set // own on top of every enclosing frame
}

// Push enters a new element.
func (s *Stack) Push(style Set) {
	var merged Set
	if n := len(s.frames); n > 0 {
		merged = s.frames[n-1].merged
	}
	s.frames = append(s.frames, frame{own: style, merged: merged.overlay(&style)})
}

// Pop leaves the innermost element, restoring the previous cascade.
func (s *Stack) Pop() {
	if len(s.frames) == 0 {
		panic("svgstyle: Pop on an empty stack")
	}
	s.frames = s.frames[:len(s.frames)-1]
}

// Depth returns the number of pushed sets.
func (s *Stack) Depth() int { return len(s.frames) }

// Current returns the merged view: for each property, the value of the
// innermost set defining it. It is empty for an empty stack.
func (s *Stack) Current() Set {
	if len(s.frames) == 0 {
		return Set{}
	}
	return s.frames[len(s.frames)-1].merged
}

// Top returns the set pushed last, without inherited values.
func (s *Stack) Top() Set {
	if len(s.frames) == 0 {
		return Set{}
	}
	return s.frames[len(s.frames)-1].own
}

// Lookup resolves a single property in the merged view.
func (s *Stack) Lookup(p Property) (string, bool) {
	if len(s.frames) == 0 {
		return "", false
	}
	return s.frames[len(s.frames)-1].merged.Get(p)
}
