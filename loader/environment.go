package loader

// Environment is an insertion-ordered set of unique variables.
type Environment struct {
	names  []string
	values map[string]string
}

// NewEnvironment creates an empty environment.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]string)}
}

// Set stores value under name and reports whether an earlier value was
// replaced. A replaced name keeps its original position.
func (e *Environment) Set(name, value string) (replaced bool) {
	if _, ok := e.values[name]; ok {
		e.values[name] = value
		return true
	}
	e.names = append(e.names, name)
	e.values[name] = value
	return false
}

// Get returns the value stored under name.
func (e *Environment) Get(name string) (string, bool) {
	v, ok := e.values[name]
	return v, ok
}

// Len returns the number of variables.
func (e *Environment) Len() int {
	return len(e.names)
}

// Names returns the variable names in insertion order.
func (e *Environment) Names() []string {
	out := make([]string, len(e.names))
	copy(out, e.names)
	return out
}

// Pairs returns KEY=VALUE entries in insertion order, as exec expects.
func (e *Environment) Pairs() []string {
	out := make([]string, 0, len(e.names))
	for _, name := range e.names {
		out = append(out, name+"="+e.values[name])
	}
	return out
}

// Map returns a copy of the variables as a map.
func (e *Environment) Map() map[string]string {
	out := make(map[string]string, len(e.values))
	for k, v := range e.values {
		out[k] = v
	}
	return out
}
