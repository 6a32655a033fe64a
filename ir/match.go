package ir

// matchEntries flattens a path for wildcard comparison: each loose
// binding contributes a "*" entry before its component's name.
func matchEntries(p *Path) []string {
	entries := make([]string, 0, len(p.Components)*2)
	for _, c := range p.Components {
		if c.Binding == LooseBinding {
			entries = append(entries, "*")
		}
		entries = append(entries, c.Name)
	}
	return entries
}

// padEntries replaces the first "*" entry with enough "?" entries to
// reach length n.
func padEntries(entries []string, n int) []string {
	star := -1
	for i, e := range entries {
		if e == "*" {
			star = i
			break
		}
	}
	if star == -1 {
		return entries
	}
	padded := make([]string, 0, n)
	padded = append(padded, entries[:star]...)
	for i := len(entries) - 1; i < n; i++ {
		padded = append(padded, "?")
	}
	return append(padded, entries[star+1:]...)
}

func matchEntry(a, b string) bool {
	if a == "?" || b == "?" {
		return true
	}
	return a == b
}

// Matches compares two paths under wildcard semantics: the first "*"
// on either side expands to as many single-level wildcards as needed
// to equalize lengths, and "?" matches any single component. Both
// paths may contain wildcards.
func (p *Path) Matches(q *Path) bool {
	pe := matchEntries(p)
	qe := matchEntries(q)
	n := len(pe)
	if len(qe) > n {
		n = len(qe)
	}
	pe = padEntries(pe, n)
	qe = padEntries(qe, n)
	if len(pe) != len(qe) {
		return false
	}
	for i := range pe {
		if !matchEntry(pe[i], qe[i]) {
			return false
		}
	}
	return true
}
