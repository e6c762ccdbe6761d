package pool

// Pool is the ordered oligo collection of one batch, in emission order.
// Stages never reorder it; index i always names the same record.
type Pool []Oligo

// Clone returns a shallow copy that can be updated without touching p.
func (p Pool) Clone() Pool {
	return append(Pool(nil), p...)
}

// Others returns the sequences of every record except i and, when
// skipPartners is set, except i's intended partners.
func (p Pool) Others(i int, skipPartners bool) []string {
	out := make([]string, 0, len(p))
	for j := range p {
		if j == i {
			continue
		}
		if skipPartners && IsIntendedPartner(p[i], p[j]) {
			continue
		}
		out = append(out, p[j].Sequence)
	}
	return out
}

// InvalidCount returns how many records are flagged invalid.
func (p Pool) InvalidCount() int {
	n := 0
	for _, o := range p {
		if o.Invalid {
			n++
		}
	}
	return n
}

// ByFragment groups records by fragment name, keeping pool order inside
// each group and first-seen order across groups.
func (p Pool) ByFragment() (names []string, groups map[string]Pool) {
	groups = make(map[string]Pool)
	for _, o := range p {
		if _, ok := groups[o.Fragment]; !ok {
			names = append(names, o.Fragment)
		}
		groups[o.Fragment] = append(groups[o.Fragment], o)
	}
	return names, groups
}
