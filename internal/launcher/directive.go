package launcher

import (
	"fmt"
	"slices"
	"strings"
)

// Directive is an optional interpreter flag baked into the launcher.
type Directive int

const (
	// DirectiveNoVerify disables bytecode verification.
	DirectiveNoVerify Directive = iota + 1
	// DirectiveTieredStopAtLevelOne limits JIT tiering to C1.
	DirectiveTieredStopAtLevelOne
)

var directiveFlags = map[Directive]string{
	DirectiveNoVerify:             "-noverify",
	DirectiveTieredStopAtLevelOne: "-XX:TieredStopAtLevel=1",
}

var directiveNames = map[Directive]string{
	DirectiveNoVerify:             "noverify",
	DirectiveTieredStopAtLevelOne: "tiered-stop-at-level-one",
}

// Flag returns the interpreter flag the directive appends at run time.
func (d Directive) Flag() string {
	return directiveFlags[d]
}

func (d Directive) String() string {
	if name, ok := directiveNames[d]; ok {
		return name
	}
	return fmt.Sprintf("directive(%d)", int(d))
}

// ParseDirective maps an option name such as "noverify" to its directive.
func ParseDirective(name string) (Directive, error) {
	normalized := strings.TrimLeft(strings.TrimSpace(strings.ToLower(name)), "-")
	for directive, candidate := range directiveNames {
		if candidate == normalized {
			return directive, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown directive %q", ErrInvalidRequest, name)
}

// orderedDirectives drops duplicates and sorts by declaration order so the
// rendered output does not depend on how the caller listed them.
func orderedDirectives(directives []Directive) []Directive {
	result := make([]Directive, 0, len(directives))
	for _, directive := range directives {
		if !slices.Contains(result, directive) {
			result = append(result, directive)
		}
	}
	slices.Sort(result)
	return result
}
