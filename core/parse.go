package core

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// ParseEdges builds a Graph from newline-separated "source,target,weight"
// lines. Blank lines are ignored; labels are taken verbatim after trimming.
// Any malformed line fails the whole parse with its 1-based line number.
// Input without a single edge yields ErrEmptyGraph.
func ParseEdges(text string, opts ...GraphOption) (*Graph, error) {
	g := NewGraph(opts...)
	for n, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		from, to, w, err := parseEdgeLine(line)
		if err != nil {
			return nil, errors.WithHint(
				errors.Wrapf(err, "line %d: %q", n+1, line),
				"each line must look like: source,target,weight (e.g. 0,1,4)")
		}
		if _, err := g.AddEdge(from, to, w); err != nil {
			return nil, errors.Wrapf(err, "line %d", n+1)
		}
	}
	if g.EdgeCount() == 0 {
		return nil, errors.WithHint(ErrEmptyGraph, "provide at least one source,target,weight line")
	}

	return g, nil
}

func parseEdgeLine(line string) (from, to string, w int64, err error) {
	parts := strings.Split(line, ",")
	if len(parts) != 3 {
		return "", "", 0, errors.Wrapf(ErrMalformedEdge, "want 3 fields, got %d", len(parts))
	}
	from, to = strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if from == "" || to == "" {
		return "", "", 0, errors.Wrap(ErrMalformedEdge, "empty endpoint")
	}
	w, perr := strconv.ParseInt(strings.TrimSpace(parts[2]), 10, 64)
	if perr != nil {
		return "", "", 0, errors.Wrapf(ErrMalformedEdge, "weight %q is not an integer", strings.TrimSpace(parts[2]))
	}

	return from, to, w, nil
}

// FormatEdges renders g back into the ParseEdges text format.
func FormatEdges(g *Graph) string {
	var b strings.Builder
	for _, e := range g.Edges() {
		b.WriteString(e.From)
		b.WriteByte(',')
		b.WriteString(e.To)
		b.WriteByte(',')
		b.WriteString(strconv.FormatInt(e.Weight, 10))
		b.WriteByte('\n')
	}

	return b.String()
}

// ParseValues parses a comma-separated integer list such as "5, 3, 8, 1".
// Empty tokens are skipped, so "" yields an empty slice.
func ParseValues(text string) ([]int, error) {
	var out []int
	for _, tok := range strings.Split(text, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, errors.WithHint(
				errors.Wrapf(ErrMalformedValue, "%q", tok),
				"values are comma-separated integers, e.g. 5,3,8,1")
		}
		out = append(out, v)
	}

	return out, nil
}

// FormatValues is the inverse of ParseValues.
func FormatValues(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ",")
}
