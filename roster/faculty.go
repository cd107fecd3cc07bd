// faculty.go
package roster

import "sort"

// FilterFaculty narrows the roster to one faculty. An unknown faculty is
// not an error: the subset is simply empty.
func FilterFaculty(r Roster, faculty string) FacultySubset {
	sub := r.Filter(func(s Student) bool { return s.Faculty == faculty })
	groups := make(map[string]struct{})
	for _, s := range sub {
		groups[s.Group] = struct{}{}
	}
	return FacultySubset{
		Faculty:  faculty,
		Students: len(sub),
		Groups:   len(groups),
		Roster:   sub,
	}
}

// FacultyCensus counts students per faculty and picks the largest and
// smallest. Ties go to the faculty name that sorts first.
func FacultyCensus(r Roster) (Census, error) {
	if len(r) == 0 {
		return Census{}, noResult("faculty census", "empty roster")
	}
	counts := make(map[string]int)
	for _, s := range r {
		counts[s.Faculty]++
	}
	names := make([]string, 0, len(counts))
	for f := range counts {
		names = append(names, f)
	}
	sort.Strings(names)

	c := Census{Counts: counts}
	for i, f := range names {
		n := counts[f]
		if i == 0 || n > c.Max.Count {
			c.Max = FacultyCount{Faculty: f, Count: n}
		}
		if i == 0 || n < c.Min.Count {
			c.Min = FacultyCount{Faculty: f, Count: n}
		}
	}
	return c, nil
}

// Sorted returns the census as (faculty, count) pairs, largest first.
func (c Census) Sorted() []FacultyCount {
	out := make([]FacultyCount, 0, len(c.Counts))
	for f, n := range c.Counts {
		out = append(out, FacultyCount{Faculty: f, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Faculty < out[j].Faculty
	})
	return out
}
