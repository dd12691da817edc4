// Package validator checks machine definitions beyond what compilation
// enforces: it crawls the transition graph and reports states that can
// never be reached from the start state.
package validator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/automatalab/automata/pkg/domain"
	"github.com/automatalab/automata/pkg/ports"
)

// Unreachable returns the declared states that no input string can
// reach, sorted. Unreachable states are diagnostics, not errors: the
// hand-authored tables declare trap labels that one table may never
// route to.
func Unreachable(def *domain.Definition) []string {
	visited := map[string]bool{def.Start: true}
	queue := []string{def.Start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, sym := range def.Alphabet {
			r := []rune(sym)[0]
			next, ok := def.Next(current, r)
			if !ok || visited[next] {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}

	var unreachable []string
	for _, s := range def.States {
		if !visited[s] {
			unreachable = append(unreachable, s)
		}
	}
	sort.Strings(unreachable)
	return unreachable
}

// Report summarizes one definition's findings for display.
type Report struct {
	Name        string
	Warnings    []domain.Warning
	Unreachable []string
	Err         error
}

// OK reports whether the definition compiled cleanly.
func (r Report) OK() bool {
	return r.Err == nil
}

// ValidateAll loads every definition the loader knows and collects a
// report per machine. The returned error aggregates the machines that
// failed to load or compile; warnings alone never fail validation.
func ValidateAll(loader ports.DefinitionLoader) ([]Report, error) {
	names, err := loader.List()
	if err != nil {
		return nil, fmt.Errorf("list definitions: %w", err)
	}

	var reports []Report
	var failures []string
	for _, name := range names {
		report := Report{Name: name}
		def, err := loader.Get(name)
		if err != nil {
			report.Err = err
			failures = append(failures, fmt.Sprintf("%s: %v", name, err))
			reports = append(reports, report)
			continue
		}
		report.Warnings = def.Warnings()
		report.Unreachable = Unreachable(def)
		reports = append(reports, report)
	}

	if len(failures) > 0 {
		return reports, fmt.Errorf("found %d invalid definitions:\n- %s", len(failures), strings.Join(failures, "\n- "))
	}
	return reports, nil
}
