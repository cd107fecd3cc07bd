// namesakes.go
package roster

import "sort"

// namesakes returns the students whose surname occurs more than once in r.
func namesakes(r Roster) Roster {
	surnames := make([]string, len(r))
	counts := make(map[string]int)
	for i, s := range r {
		surnames[i] = ParseName(s.FullName).Surname
		counts[surnames[i]]++
	}
	out := make(Roster, 0)
	for i, s := range r {
		if counts[surnames[i]] > 1 {
			out = append(out, s)
		}
	}
	return out
}

// FindNamesakes looks for students sharing a surname.
//
// Total counts namesakes across the whole roster. PerCourse counts them
// within each course separately, so two students with the same surname on
// different courses add to Total but not to either course. Every course in
// r is listed, in year order. TopGroup is the group holding the most
// namesakes (by the roster-wide definition); ties go to the group name that
// sorts first.
func FindNamesakes(r Roster) (NamesakeReport, error) {
	all := namesakes(r)
	if len(all) == 0 {
		return NamesakeReport{}, noResult("namesakes", "no shared surnames among %d students", len(r))
	}

	rep := NamesakeReport{Found: true, Total: len(all)}
	for _, c := range distinctCourses(r) {
		course := r.Filter(func(s Student) bool { return s.Course == c })
		rep.PerCourse = append(rep.PerCourse, CourseCount{Course: c, Count: len(namesakes(course))})
	}

	byGroup := make(map[string]int)
	for _, s := range all {
		byGroup[s.Group]++
	}
	groups := make([]string, 0, len(byGroup))
	for g := range byGroup {
		groups = append(groups, g)
	}
	sort.Strings(groups)
	for _, g := range groups {
		if byGroup[g] > rep.TopCount {
			rep.TopGroup, rep.TopCount = g, byGroup[g]
		}
	}
	return rep, nil
}

// CourseCount returns the namesake count for course, or zero.
func (r NamesakeReport) CourseCount(course string) int {
	for _, c := range r.PerCourse {
		if c.Course == course {
			return c.Count
		}
	}
	return 0
}
