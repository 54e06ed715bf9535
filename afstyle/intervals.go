package afstyle

import (
	"sort"

	"github.com/npillmayer/autofit/afscript"
)

// ivset is a sorted list of disjoint, non-adjacent intervals.
type ivset []afscript.Interval

// normalize sorts intervals and merges overlapping or adjacent ones.
func normalize(ivs []afscript.Interval) ivset {
	if len(ivs) == 0 {
		return nil
	}
	sorted := append([]afscript.Interval(nil), ivs...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].First < sorted[j].First
	})
	set := ivset{sorted[0]}
	for _, iv := range sorted[1:] {
		last := &set[len(set)-1]
		if iv.First <= last.Last+1 {
			if iv.Last > last.Last {
				last.Last = iv.Last
			}
			continue
		}
		set = append(set, iv)
	}
	return set
}

// size returns the number of code points in s.
func (s ivset) size() int {
	n := 0
	for _, iv := range s {
		n += iv.Len()
	}
	return n
}

// minus returns the code points of s which are not in t.
func (s ivset) minus(t ivset) ivset {
	var out ivset
	j := 0
	for _, iv := range s {
		lo := iv.First
		for j < len(t) && t[j].Last < lo {
			j++
		}
		k := j
		for k < len(t) && t[k].First <= iv.Last {
			if t[k].First > lo {
				out = append(out, afscript.Interval{First: lo, Last: t[k].First - 1})
			}
			if t[k].Last+1 > lo {
				lo = t[k].Last + 1
			}
			k++
		}
		if lo <= iv.Last {
			out = append(out, afscript.Interval{First: lo, Last: iv.Last})
		}
	}
	return out
}

// intersect returns the code points contained in both s and t.
func (s ivset) intersect(t ivset) ivset {
	var out ivset
	i, j := 0, 0
	for i < len(s) && j < len(t) {
		lo, hi := max(s[i].First, t[j].First), min(s[i].Last, t[j].Last)
		if lo <= hi {
			out = append(out, afscript.Interval{First: lo, Last: hi})
		}
		if s[i].Last < t[j].Last {
			i++
		} else {
			j++
		}
	}
	return out
}
