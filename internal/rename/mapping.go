package rename

import "github.com/jchantrell/camel2snake/internal/casing"

// Rename is a single identifier substitution
type Rename struct {
	From string
	To   string
}

// Mapping holds the renames for one run, ordered by From.
type Mapping []Rename

// BuildMapping converts each candidate and keeps only those whose snake_case
// form differs from the original. Candidate order is preserved.
func BuildMapping(candidates []string) Mapping {
	m := make(Mapping, 0, len(candidates))
	for _, c := range candidates {
		snake := casing.ToSnakeCase(c)
		if snake != c {
			m = append(m, Rename{From: c, To: snake})
		}
	}
	return m
}

// Lookup returns the mapping keyed by original identifier
func (m Mapping) Lookup() map[string]string {
	lookup := make(map[string]string, len(m))
	for _, r := range m {
		lookup[r.From] = r.To
	}
	return lookup
}
