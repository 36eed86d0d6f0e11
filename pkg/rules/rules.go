// Package rules parses implication rule sets.
//
// A rule set is a plain-text file with one rule per line. Each rule states
// that a conjunction of antecedent terms implies a single consequent term:
//
//	A & B -> C
//	A -> D
//
// Blank lines are ignored, as are comment lines whose first non-whitespace
// character is '#'. Terms are opaque, case-sensitive strings; no quoting or
// escaping is supported, so '->' and '&' cannot appear inside a term name.
package rules

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/entail/pkg/errors"
)

// Marker tokens of the rule grammar.
const (
	impliesMarker     = "->"
	conjunctionMarker = "&"
	commentMarker     = "#"
)

// Implication is a single parsed rule: all antecedent terms jointly imply
// the consequent term. Antecedents preserve their order of appearance and
// are not deduplicated.
type Implication struct {
	Antecedents []string
	Consequent  string
}

// String formats the implication back in rule syntax, e.g. "A & B -> C".
func (imp Implication) String() string {
	return fmt.Sprintf("%s %s %s", strings.Join(imp.Antecedents, " "+conjunctionMarker+" "), impliesMarker, imp.Consequent)
}

// ParseLine parses a single rule line into an Implication.
//
// The line is split on the first occurrence of "->": everything before is
// the antecedent clause, everything after is the consequent term. The
// antecedent clause is split on "&"; fragments are trimmed and empty
// fragments (e.g. from a trailing "&") are dropped. The consequent is
// trimmed and must name exactly one term.
//
// Returns an error with code [errors.ErrCodeInvalidRule] when the "->"
// marker is absent, or when the antecedent or consequent clause is empty
// after trimming. ParseLine is a pure function.
func ParseLine(line string) (Implication, error) {
	line = strings.TrimSpace(line)

	left, right, found := strings.Cut(line, impliesMarker)
	if !found {
		return Implication{}, errors.New(errors.ErrCodeInvalidRule, "could not parse rule line %q: missing %q", line, impliesMarker)
	}

	left = strings.TrimSpace(left)
	right = strings.TrimSpace(right)
	if left == "" || right == "" {
		return Implication{}, errors.New(errors.ErrCodeInvalidRule, "missing terms on rule line %q", line)
	}

	var antecedents []string
	for _, frag := range strings.Split(left, conjunctionMarker) {
		if term := strings.TrimSpace(frag); term != "" {
			antecedents = append(antecedents, term)
		}
	}
	if len(antecedents) == 0 {
		return Implication{}, errors.New(errors.ErrCodeInvalidRule, "missing terms on rule line %q", line)
	}

	return Implication{Antecedents: antecedents, Consequent: right}, nil
}

// Parse reads a rule set from r and returns the implications in file order.
//
// Blank lines and comment lines are skipped. The first malformed rule line
// aborts the whole load: the returned error wraps the parse failure with
// its 1-based line number. A rule file is loaded completely or not at all.
func Parse(r io.Reader) ([]Implication, error) {
	var implications []Implication

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, commentMarker) {
			continue
		}
		imp, err := ParseLine(line)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidRule, err, "line %d", lineNo)
		}
		implications = append(implications, imp)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read rules")
	}

	return implications, nil
}

// LoadFile reads the rule file at path and returns its implications.
// Returns an error with code [errors.ErrCodeFileNotFound] if the file
// cannot be opened, or the same errors as [Parse] for malformed content.
func LoadFile(path string) ([]Implication, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open rules file %s", path)
	}
	defer f.Close()

	imps, err := Parse(f)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "parse %s", path)
	}
	return imps, nil
}
