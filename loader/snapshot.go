package loader

import (
	"sort"
	"strings"
)

// Variable is one inherited environment entry.
type Variable struct {
	Name  string
	Value string
}

// Snapshot is an immutable, name-sorted view of an environment.
type Snapshot struct {
	vars []Variable
}

// NewSnapshot parses KEY=VALUE entries such as os.Environ() returns.
// Entries without "=" or with an empty name are skipped; for duplicate names
// the last entry wins. A leading "=" belongs to the name, as in the
// per-drive entries of Windows environments.
func NewSnapshot(environ []string) Snapshot {
	m := make(map[string]string, len(environ))
	for _, kv := range environ {
		if kv == "" {
			continue
		}
		i := strings.IndexByte(kv[1:], '=')
		if i < 0 {
			continue
		}
		m[kv[:i+1]] = kv[i+2:]
	}
	return SnapshotFromMap(m)
}

// SnapshotFromMap builds a snapshot from a name to value map.
func SnapshotFromMap(m map[string]string) Snapshot {
	vars := make([]Variable, 0, len(m))
	for name, value := range m {
		if name == "" {
			continue
		}
		vars = append(vars, Variable{Name: name, Value: value})
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i].Name < vars[j].Name })
	return Snapshot{vars: vars}
}

// Variables returns a copy of the variables in name order.
func (s Snapshot) Variables() []Variable {
	out := make([]Variable, len(s.vars))
	copy(out, s.vars)
	return out
}

// Lookup returns the value of name.
func (s Snapshot) Lookup(name string) (string, bool) {
	i := sort.Search(len(s.vars), func(i int) bool { return s.vars[i].Name >= name })
	if i < len(s.vars) && s.vars[i].Name == name {
		return s.vars[i].Value, true
	}
	return "", false
}

// Len returns the number of variables.
func (s Snapshot) Len() int {
	return len(s.vars)
}
