// analyze.go
package roster

import (
	"errors"
	"fmt"
)

// Defaults for the fixed ISU dataset.
const (
	DefaultFaculty     = "факультет систем управления и робототехники"
	DefaultGradeCourse = "3-й"
	DefaultNamePrefix  = "П"
	DefaultRunLength   = 5
)

// Options selects the literals the queries filter on.
type Options struct {
	Faculty     string
	GradeCourse string
	NamePrefix  string
	RunLength   int
}

func DefaultOptions() Options {
	return Options{
		Faculty:     DefaultFaculty,
		GradeCourse: DefaultGradeCourse,
		NamePrefix:  DefaultNamePrefix,
		RunLength:   DefaultRunLength,
	}
}

// Report collects the answers of all queries over one roster. Sections
// whose precondition was not met are nil and explained in NoResult.
type Report struct {
	Total       int               `json:"total"`
	Subset      FacultySubset     `json:"faculty_subset"`
	Namesakes   *NamesakeReport   `json:"namesakes,omitempty"`
	Patronymics PatronymicReport  `json:"patronymics"`
	Census      *Census           `json:"census,omitempty"`
	Courses     []CourseStat      `json:"courses"`
	Popular     *PopularName      `json:"popular_name,omitempty"`
	UniqueNames []StudentSummary  `json:"unique_names"`
	Grades      *GradeLeader      `json:"grades,omitempty"`
	Run         *RunResult        `json:"consecutive_run,omitempty"`
	NoResult    map[string]string `json:"no_result,omitempty"`
}

// Analyze runs every query in order. The faculty subset feeds the namesake
// and patronymic sections; the rest run on the full roster. Only errors
// other than ErrNoResult are returned.
func Analyze(r Roster, opts Options) (Report, error) {
	rep := Report{Total: len(r), NoResult: make(map[string]string)}

	skip := func(section string, err error) error {
		if errors.Is(err, ErrNoResult) {
			rep.NoResult[section] = err.Error()
			return nil
		}
		return fmt.Errorf("%s: %w", section, err)
	}

	rep.Subset = FilterFaculty(r, opts.Faculty)
	if rep.Subset.Empty() {
		rep.NoResult["faculty_subset"] = fmt.Sprintf("no students in %q", opts.Faculty)
	}

	if ns, err := FindNamesakes(rep.Subset.Roster); err == nil {
		rep.Namesakes = &ns
	} else if err := skip("namesakes", err); err != nil {
		return rep, err
	}

	rep.Patronymics = AnalyzePatronymics(rep.Subset.Roster)

	if c, err := FacultyCensus(r); err == nil {
		rep.Census = &c
	} else if err := skip("census", err); err != nil {
		return rep, err
	}

	rep.Courses = CourseCensus(r)

	if p, err := MostPopularName(r); err == nil {
		rep.Popular = &p
	} else if err := skip("popular_name", err); err != nil {
		return rep, err
	}

	rep.UniqueNames = UniqueNamesWithPrefix(r, opts.NamePrefix)

	if g, err := TopFacultyByGrade(r, opts.GradeCourse); err == nil {
		rep.Grades = &g
	} else if err := skip("grades", err); err != nil {
		return rep, err
	}

	if run, err := ConsecutiveRun(r, opts.RunLength); err == nil {
		rep.Run = &run
	} else if err := skip("consecutive_run", err); err != nil {
		return rep, err
	}

	return rep, nil
}
