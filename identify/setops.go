// File: setops.go
// Role: small set-algebra helpers over sorted []string node-ID slices and
// the []symbols.Variable conversions ID/IDC need throughout.
package identify

import (
	"sort"

	"github.com/leoware/pqp-go/symbols"
)

func toSet(ss []string) map[string]struct{} {
	out := make(map[string]struct{}, len(ss))
	for _, s := range ss {
		out[s] = struct{}{}
	}
	return out
}

func setDiff(a, b []string) []string {
	bs := toSet(b)
	out := make([]string, 0, len(a))
	for _, s := range a {
		if _, ok := bs[s]; !ok {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

func setUnion(a, b []string) []string {
	seen := toSet(a)
	out := append([]string(nil), a...)
	for _, s := range b {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

func setIntersect(a, b []string) []string {
	bs := toSet(b)
	out := make([]string, 0, len(a))
	for _, s := range a {
		if _, ok := bs[s]; ok {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

func setEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as, bs := append([]string(nil), a...), append([]string(nil), b...)
	sort.Strings(as)
	sort.Strings(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

func namesOf(vars []symbols.Variable) []string {
	out := make([]string, len(vars))
	for i, v := range vars {
		out[i] = v.Name
	}
	sort.Strings(out)
	return out
}

func varsOf(names []string) []symbols.Variable {
	out := make([]symbols.Variable, len(names))
	for i, n := range names {
		out[i] = symbols.MustVariable(n)
	}
	return out
}

// cComponentContaining returns the member of comps that contains node, or
// nil if node appears in none of them.
func cComponentContaining(comps [][]string, node string) []string {
	for _, c := range comps {
		for _, n := range c {
			if n == node {
				return c
			}
		}
	}
	return nil
}
