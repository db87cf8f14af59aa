package rpn

// scopes is the evaluation stack. Every open parenthesis starts a new scope
// holding the values pushed since; the outermost scope is never removed.
type scopes struct {
	frames [][]Number
}

func newScopes() *scopes {
	return &scopes{frames: [][]Number{make([]Number, 0)}}
}

// depth is 1 + the number of parentheses still open.
func (s *scopes) depth() int {
	return len(s.frames)
}

func (s *scopes) top() []Number {
	return s.frames[len(s.frames)-1]
}

func (s *scopes) push(value Number) {
	last := len(s.frames) - 1
	s.frames[last] = append(s.frames[last], value)
}

// pop removes the last value of the innermost scope. Callers check the
// scope size first.
func (s *scopes) pop() Number {
	last := len(s.frames) - 1
	frame := s.frames[last]
	value := frame[len(frame)-1]
	s.frames[last] = frame[:len(frame)-1]
	return value
}

func (s *scopes) open() {
	s.frames = append(s.frames, make([]Number, 0))
}

// close collapses the innermost scope into its single value and pushes that
// value to the enclosing scope.
func (s *scopes) close() error {
	if len(s.frames) == 1 {
		return newSyntaxError(closeParen, "closed parenthesis without open")
	}
	inner := s.top()
	s.frames = s.frames[:len(s.frames)-1]
	if len(inner) != 1 {
		return newSyntaxError(closeParen, "parenthesis content must reduce to single value")
	}
	s.push(inner[0])
	return nil
}

// result returns the value of a fully evaluated line.
func (s *scopes) result() (Number, error) {
	if len(s.frames) != 1 {
		return Number{}, newSyntaxError("", "unbalanced parentheses")
	}
	if len(s.frames[0]) != 1 {
		return Number{}, newSyntaxError("", "invalid expression")
	}
	return s.frames[0][0], nil
}
