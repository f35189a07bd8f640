package tui

// State tracks collected values and the last validation message per field
// key for one preview session.
type State struct {
	values map[string]any
	errors map[string]string
	order  []string
}

// NewState seeds the state with prefilled values.
func NewState(prefill map[string]any) *State {
	values := make(map[string]any, len(prefill))
	for key, value := range prefill {
		values[key] = cloneValue(value)
	}
	return &State{values: values, errors: make(map[string]string)}
}

// Values returns the current value map (mutable).
func (s *State) Values() map[string]any {
	if s == nil {
		return nil
	}
	return s.values
}

// Order lists the keys answered during the session, first answer first.
func (s *State) Order() []string {
	if s == nil {
		return nil
	}
	return s.order
}

// Value returns the collected or prefilled value for key.
func (s *State) Value(key string) (any, bool) {
	if s == nil {
		return nil, false
	}
	value, ok := s.values[key]
	return value, ok
}

// Set records an accepted answer and clears the key's error.
func (s *State) Set(key string, value any) {
	if s == nil {
		return
	}
	if !s.answered(key) {
		s.order = append(s.order, key)
	}
	s.values[key] = value
	delete(s.errors, key)
}

// Reject records the validation message of a refused answer.
func (s *State) Reject(key, message string) {
	if s == nil {
		return
	}
	s.errors[key] = message
}

// ErrorFor returns the last rejection message for key.
func (s *State) ErrorFor(key string) string {
	if s == nil {
		return ""
	}
	return s.errors[key]
}

func (s *State) answered(key string) bool {
	for _, existing := range s.order {
		if existing == key {
			return true
		}
	}
	return false
}

func cloneValue(value any) any {
	switch typed := value.(type) {
	case []any:
		return append([]any(nil), typed...)
	case []string:
		return append([]string(nil), typed...)
	default:
		return typed
	}
}
