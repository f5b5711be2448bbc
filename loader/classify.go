package loader

import "strings"

// DecisionKind says what happens to a variable.
type DecisionKind int

const (
	// PassThrough copies a pass-listed variable unchanged.
	PassThrough DecisionKind = iota
	// OutOfScope copies a variable that lacks the configured prefix unchanged.
	OutOfScope
	// NeedsResolution resolves the value and exports it under OutputName.
	NeedsResolution
)

// String returns the string representation of the kind.
func (k DecisionKind) String() string {
	switch k {
	case PassThrough:
		return "pass_through"
	case OutOfScope:
		return "out_of_scope"
	case NeedsResolution:
		return "needs_resolution"
	default:
		return "unknown"
	}
}

// Decision is the classification of one variable. OutputName equals the
// variable name except for NeedsResolution with a prefix configured.
type Decision struct {
	Kind       DecisionKind
	OutputName string
	Variable   Variable
}

// Classifier classifies variables against a fixed Config.
type Classifier struct {
	pass      map[string]struct{}
	prefix    string
	hasPrefix bool
}

// NewClassifier creates a classifier for cfg.
func NewClassifier(cfg Config) *Classifier {
	pass := make(map[string]struct{}, len(cfg.Pass))
	for _, name := range cfg.Pass {
		pass[name] = struct{}{}
	}
	return &Classifier{pass: pass, prefix: cfg.Prefix, hasPrefix: cfg.HasPrefix}
}

// Classify decides how v is handled. Prefix matching is a case-sensitive
// byte prefix test and strips exactly len(prefix) bytes.
func (c *Classifier) Classify(v Variable) Decision {
	if _, ok := c.pass[v.Name]; ok {
		return Decision{Kind: PassThrough, OutputName: v.Name, Variable: v}
	}
	if !c.hasPrefix {
		return Decision{Kind: NeedsResolution, OutputName: v.Name, Variable: v}
	}
	if !strings.HasPrefix(v.Name, c.prefix) {
		return Decision{Kind: OutOfScope, OutputName: v.Name, Variable: v}
	}
	return Decision{Kind: NeedsResolution, OutputName: v.Name[len(c.prefix):], Variable: v}
}

// Classify classifies v against cfg.
func Classify(v Variable, cfg Config) Decision {
	return NewClassifier(cfg).Classify(v)
}
