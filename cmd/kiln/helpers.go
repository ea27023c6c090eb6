// Shared helpers for the kiln CLI commands.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mesh-materials/kiln/internal/settings"
)

// stdinPrompter returns a Prompter that prints the prompt to stdout and
// reads one line from stdin.
func stdinPrompter() settings.Prompter {
	reader := bufio.NewReader(os.Stdin)
	return settings.PromptFunc(func(prompt string) (string, error) {
		fmt.Print(prompt + " ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(line), nil
	})
}

// parseFilters converts repeated key=value flags into the query filter
// mapping. Repeating a key widens its accepted-value set. Values that
// parse as booleans or numbers are matched as such in addition to their
// literal string form, since record projections carry typed values.
func parseFilters(kvs []string) (map[string][]any, error) {
	if len(kvs) == 0 {
		return nil, nil
	}
	filters := make(map[string][]any)
	for _, kv := range kvs {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid filter %q: expected key=value", kv)
		}
		filters[key] = append(filters[key], filterValues(value)...)
	}
	return filters, nil
}

func filterValues(value string) []any {
	vals := []any{value}
	if b, err := strconv.ParseBool(value); err == nil {
		vals = append(vals, b)
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		vals = append(vals, f)
	}
	return vals
}

// parseParams converts repeated key=value flags into a parameter map.
func parseParams(kvs []string) (map[string]string, error) {
	if len(kvs) == 0 {
		return nil, nil
	}
	params := make(map[string]string)
	for _, kv := range kvs {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid parameter %q: expected key=value", kv)
		}
		params[key] = value
	}
	return params, nil
}
