// sequence.go
package roster

import "sort"

// ConsecutiveRun finds the first run of length consecutive id numbers
// (lowest starting id wins) and returns one student per id, in id order.
// When an id is shared by several rows the first row is used.
func ConsecutiveRun(r Roster, length int) (RunResult, error) {
	if length < 1 {
		return RunResult{}, fmtInvalid("run length %d", length)
	}
	first := make(map[int]Student, len(r))
	for _, s := range r {
		if _, ok := first[s.ID]; !ok {
			first[s.ID] = s
		}
	}
	ids := make([]int, 0, len(first))
	for id := range first {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	start, run := 0, 0
	for i, id := range ids {
		if i > 0 && id == ids[i-1]+1 {
			run++
		} else {
			start, run = i, 1
		}
		if run == length {
			out := RunResult{Students: make([]Student, 0, length)}
			for _, id := range ids[start : i+1] {
				out.Students = append(out.Students, first[id])
			}
			return out, nil
		}
	}
	return RunResult{}, noResult("consecutive run", "no %d consecutive ids among %d", length, len(ids))
}
