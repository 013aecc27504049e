// Package sequence decodes the per-attempt scoring fields found in scouting
// exports. Two encodings exist in the wild: the legacy form, a single
// aggregate count ("5"), and the modern form, a comma-delimited list of
// per-attempt point values ("3,0,3"). Parse resolves both into one canonical
// ordered sequence so nothing downstream has to sniff formats.
package sequence

import (
	"strconv"
	"strings"
)

// Attempts is an ordered list of per-attempt point values for one zone.
type Attempts []int

// Parse turns a raw field value into an attempt sequence.
//
// An absent or unparseable field yields an empty sequence. A comma-delimited
// field is split on commas, keeping non-negative integer tokens in input
// order and dropping everything else. A comma-free field is the legacy
// aggregate count: positive values become a single attempt of that total,
// zero and negative values yield an empty sequence.
func Parse(field string) Attempts {
	s := strings.TrimSpace(field)
	if s == "" {
		return nil
	}

	if strings.Contains(s, ",") {
		var out Attempts
		for _, tok := range strings.Split(s, ",") {
			v, err := strconv.Atoi(strings.TrimSpace(tok))
			if err != nil || v < 0 {
				continue
			}
			out = append(out, v)
		}
		return out
	}

	// Legacy scalar. Scouting apps have exported these as floats ("5.0").
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return nil
	}
	return Attempts{int(v)}
}

// Sum returns the total points scored across all attempts.
func (a Attempts) Sum() int {
	total := 0
	for _, v := range a {
		total += v
	}
	return total
}

// String renders the sequence in the modern comma-delimited encoding.
func (a Attempts) String() string {
	if len(a) == 0 {
		return ""
	}
	parts := make([]string, len(a))
	for i, v := range a {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
