// popular.go
package roster

import "strings"

// counter tallies keys and remembers the order they were first seen in.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// top returns the most frequent key; ties go to the key seen first.
func (c *counter) top() (string, int) {
	var best string
	var n int
	for _, k := range c.order {
		if c.counts[k] > n {
			best, n = k, c.counts[k]
		}
	}
	return best, n
}

// MostPopularName finds the most common given name, the group where it is
// most common, that group's faculty and course, and the share of the
// roster carrying the name rounded to two decimals. Ties at either step go
// to whichever candidate appears first in the roster.
func MostPopularName(r Roster) (PopularName, error) {
	if len(r) == 0 {
		return PopularName{}, noResult("popular name", "empty roster")
	}
	given := make([]string, len(r))
	names := newCounter()
	for i, s := range r {
		given[i] = ParseName(s.FullName).Given
		names.add(given[i])
	}
	name, n := names.top()

	groups := newCounter()
	for i, s := range r {
		if given[i] == name {
			groups.add(s.Group)
		}
	}
	group, _ := groups.top()

	p := PopularName{
		Name:  name,
		Group: group,
		Count: n,
		Ratio: roundTo(float64(n)/float64(len(r)), 2),
	}
	for _, s := range r {
		if s.Group == group {
			p.Faculty, p.Course = s.Faculty, s.Course
			break
		}
	}
	return p, nil
}

// UniqueNamesWithPrefix lists students whose given name starts with prefix
// and is carried by no other prefixed student. Roster order is kept.
func UniqueNamesWithPrefix(r Roster, prefix string) []StudentSummary {
	type row struct {
		s     Student
		given string
	}
	var matched []row
	names := newCounter()
	for _, s := range r {
		g := ParseName(s.FullName).Given
		if strings.HasPrefix(g, prefix) {
			matched = append(matched, row{s, g})
			names.add(g)
		}
	}
	out := make([]StudentSummary, 0)
	for _, m := range matched {
		if names.counts[m.given] == 1 {
			out = append(out, StudentSummary{
				FullName: m.s.FullName,
				Faculty:  m.s.Faculty,
				Course:   m.s.Course,
			})
		}
	}
	return out
}
