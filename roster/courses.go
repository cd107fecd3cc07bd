// courses.go
package roster

import (
	"sort"
	"strconv"
)

// CourseYear extracts the year from a course label such as "3-й".
func CourseYear(course string) (int, bool) {
	m := coursePattern.FindStringSubmatch(course)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// sortCourses orders course labels by year. Labels that do not parse go
// last, in lexical order.
func sortCourses(courses []string) {
	sort.SliceStable(courses, func(i, j int) bool {
		yi, oki := CourseYear(courses[i])
		yj, okj := CourseYear(courses[j])
		switch {
		case oki && okj:
			if yi != yj {
				return yi < yj
			}
			return courses[i] < courses[j]
		case oki != okj:
			return oki
		default:
			return courses[i] < courses[j]
		}
	})
}

// distinctCourses returns the courses present in r in year order.
func distinctCourses(r Roster) []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range r {
		if !seen[s.Course] {
			seen[s.Course] = true
			out = append(out, s.Course)
		}
	}
	sortCourses(out)
	return out
}

// CourseCensus counts students per faculty within each course and reports
// the mean and median of those counts. Only faculties that actually have
// students in a course take part in its statistics.
func CourseCensus(r Roster) []CourseStat {
	perCourse := make(map[string]map[string]int)
	for _, s := range r {
		byFaculty, ok := perCourse[s.Course]
		if !ok {
			byFaculty = make(map[string]int)
			perCourse[s.Course] = byFaculty
		}
		byFaculty[s.Faculty]++
	}

	courses := distinctCourses(r)
	out := make([]CourseStat, 0, len(courses))
	for _, c := range courses {
		counts := make([]int, 0, len(perCourse[c]))
		for _, n := range perCourse[c] {
			counts = append(counts, n)
		}
		vals := toFloats(counts)
		out = append(out, CourseStat{
			Course:    c,
			Faculties: len(counts),
			Mean:      roundTo(mean(vals), 1),
			// counts are integers, so the median is exact at one decimal
			Median: roundTo(median(vals), 1),
		})
	}
	return out
}
