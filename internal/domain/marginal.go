package domain

import (
	"fmt"
	"strings"
)

// MarginalKinds selects which kinds of marginal positions the position
// constructor admits. The zero value admits none.
type MarginalKinds uint8

const (
	// MarginalRegular admits positions attested only in regular marginal
	// readings (正則).
	MarginalRegular MarginalKinds = 1 << iota
	// MarginalOriginal admits positions kept as written in the source
	// fanqie (原貌).
	MarginalOriginal
	// MarginalFramework admits positions that exist only in the framework
	// of the rime tables (框架).
	MarginalFramework

	AllMarginalKinds = MarginalRegular | MarginalOriginal | MarginalFramework
)

var marginalNames = []struct {
	kind    MarginalKinds
	glyphs  string
	english string
}{
	{MarginalRegular, "正則", "regular"},
	{MarginalOriginal, "原貌", "original"},
	{MarginalFramework, "框架", "framework"},
}

// Has reports whether every kind in k is selected.
func (m MarginalKinds) Has(k MarginalKinds) bool { return m&k == k }

func (m MarginalKinds) String() string {
	parts := make([]string, 0, len(marginalNames))
	for _, n := range marginalNames {
		if m.Has(n.kind) {
			parts = append(parts, n.glyphs)
		}
	}
	return strings.Join(parts, ",")
}

// ParseMarginalKinds parses a comma separated list such as "正則,原貌" or
// "regular,framework". Empty input yields no kinds.
func ParseMarginalKinds(s string) (MarginalKinds, error) {
	var out MarginalKinds
	for _, raw := range strings.Split(s, ",") {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" {
			continue
		}
		found := false
		for _, n := range marginalNames {
			if name == n.glyphs || name == n.english {
				out |= n.kind
				found = true
				break
			}
		}
		if !found {
			return 0, NewValidationError("marginal", fmt.Sprintf("unknown marginal kind %q", raw))
		}
	}
	return out, nil
}
