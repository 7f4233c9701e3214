// Package gnlist parses list-valued build options.
//
// A value is either a GN list literal such as ["a.jar", "b.jar"] or a plain
// colon-separated list. GN literals are a subset of YAML flow sequences.
package gnlist

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse splits one option value into its items. Empty items are dropped;
// order and duplicates are preserved.
func Parse(value string) ([]string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}
	if strings.HasPrefix(trimmed, "[") {
		var items []string
		if err := yaml.Unmarshal([]byte(trimmed), &items); err != nil {
			return nil, fmt.Errorf("parse gn list %q: %w", value, err)
		}
		return compact(items), nil
	}
	return compact(strings.Split(trimmed, ":")), nil
}

// Flatten parses every value and concatenates the results in order.
func Flatten(values []string) ([]string, error) {
	var result []string
	for _, value := range values {
		items, err := Parse(value)
		if err != nil {
			return nil, err
		}
		result = append(result, items...)
	}
	return result, nil
}

// Format renders items as a GN list literal that Parse accepts.
func Format(items []string) string {
	quoted := make([]string, 0, len(items))
	for _, item := range items {
		quoted = append(quoted, quote(item))
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

func quote(item string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\t", `\t`)
	return `"` + replacer.Replace(item) + `"`
}

func compact(items []string) []string {
	result := make([]string, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			continue
		}
		result = append(result, item)
	}
	return result
}
