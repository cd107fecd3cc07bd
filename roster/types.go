// types.go
package roster

// Column headers of the ISU roster export.
const (
	ColFullName = "фио"
	ColFaculty  = "факультет"
	ColCourse   = "курс"
	ColGroup    = "группа"
	ColID       = "ису"
	ColGPA      = "средний_балл"
)

// Student is one row of the roster.
type Student struct {
	FullName string  `json:"full_name"`
	Faculty  string  `json:"faculty"`
	Course   string  `json:"course"`
	Group    string  `json:"group"`
	ID       int     `json:"id"`
	GPA      float64 `json:"gpa"`
	HasGPA   bool    `json:"has_gpa"`
}

// Roster is a read-only table of students. Queries never modify it;
// anything derived is returned as a new slice.
type Roster []Student

// Filter returns a new roster holding the students for which keep is true.
func (r Roster) Filter(keep func(Student) bool) Roster {
	out := make(Roster, 0, len(r))
	for _, s := range r {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}

// FacultySubset is the result of narrowing a roster to a single faculty.
type FacultySubset struct {
	Faculty  string `json:"faculty"`
	Students int    `json:"students"`
	Groups   int    `json:"groups"`
	Roster   Roster `json:"-"`
}

// Empty reports whether no student matched the faculty.
func (s FacultySubset) Empty() bool { return s.Students == 0 }

type CourseCount struct {
	Course string `json:"course"`
	Count  int    `json:"count"`
}

// NamesakeReport summarises students sharing a surname.
type NamesakeReport struct {
	Found     bool          `json:"found"`
	Total     int           `json:"total"`
	PerCourse []CourseCount `json:"per_course"`
	TopGroup  string        `json:"top_group"`
	TopCount  int           `json:"top_count"`
}

// PatronymicReport is the patronymic / gender tally of a roster.
type PatronymicReport struct {
	WithoutPatronymic int `json:"without_patronymic"`
	Male              int `json:"male"`
	Female            int `json:"female"`
	Unclassified      int `json:"unclassified"`
}

// Counts returns the gender tally keyed by gender label. Unclassified
// rows are not part of it.
func (p PatronymicReport) Counts() map[string]int {
	return map[string]int{
		Male.String():   p.Male,
		Female.String(): p.Female,
	}
}

type FacultyCount struct {
	Faculty string `json:"faculty"`
	Count   int    `json:"count"`
}

// Census holds per-faculty head counts.
type Census struct {
	Counts map[string]int `json:"counts"`
	Max    FacultyCount   `json:"max"`
	Min    FacultyCount   `json:"min"`
}

// CourseStat is the mean and median number of students per faculty
// within one course.
type CourseStat struct {
	Course    string  `json:"course"`
	Faculties int     `json:"faculties"`
	Mean      float64 `json:"mean"`
	Median    float64 `json:"median"`
}

type PopularName struct {
	Name    string  `json:"name"`
	Group   string  `json:"group"`
	Faculty string  `json:"faculty"`
	Course  string  `json:"course"`
	Count   int     `json:"count"`
	Ratio   float64 `json:"ratio"`
}

type StudentSummary struct {
	FullName string `json:"full_name"`
	Faculty  string `json:"faculty"`
	Course   string `json:"course"`
}

// GradeLeader is the faculty with the best mean GPA in a course and the
// gender that scores higher inside it.
type GradeLeader struct {
	Faculty     string  `json:"faculty"`
	FacultyMean float64 `json:"faculty_mean"`
	Gender      Gender  `json:"gender"`
	GenderMean  float64 `json:"gender_mean"`
	Grade       int     `json:"grade"`
}

// RunResult holds students whose id numbers were issued consecutively.
type RunResult struct {
	Students []Student `json:"students"`
}

// IDs returns the id numbers of the run in ascending order.
func (r RunResult) IDs() []int {
	ids := make([]int, len(r.Students))
	for i, s := range r.Students {
		ids[i] = s.ID
	}
	return ids
}
