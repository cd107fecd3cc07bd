// grades.go
package roster

import "sort"

// TopFacultyByGrade finds the faculty whose students on course have the
// highest mean GPA, then compares the mean GPA of male and female students
// there (gender taken from the patronymic). Students without a GPA or with
// an unclassified patronymic are left out of the respective means.
//
// Faculty ties go to the name that sorts first; a gender tie goes to
// female. Grade is the winning mean rounded half to even.
func TopFacultyByGrade(r Roster, course string) (GradeLeader, error) {
	byFaculty := make(map[string][]float64)
	for _, s := range r {
		if s.Course == course && s.HasGPA {
			byFaculty[s.Faculty] = append(byFaculty[s.Faculty], s.GPA)
		}
	}
	if len(byFaculty) == 0 {
		return GradeLeader{}, noResult("top faculty by grade", "no graded students on course %q", course)
	}
	faculties := make([]string, 0, len(byFaculty))
	for f := range byFaculty {
		faculties = append(faculties, f)
	}
	sort.Strings(faculties)

	var lead GradeLeader
	for i, f := range faculties {
		m := mean(byFaculty[f])
		if i == 0 || m > lead.FacultyMean {
			lead.Faculty, lead.FacultyMean = f, m
		}
	}

	byGender := make(map[Gender][]float64)
	for _, d := range Augment(r) {
		if d.Course == course && d.Faculty == lead.Faculty && d.HasGPA && d.Gender != Unknown {
			byGender[d.Gender] = append(byGender[d.Gender], d.GPA)
		}
	}
	if len(byGender) == 0 {
		return lead, noResult("top faculty by grade", "no classified patronymics in %q", lead.Faculty)
	}
	for _, g := range []Gender{Female, Male} {
		vals, ok := byGender[g]
		if !ok {
			continue
		}
		if m := mean(vals); lead.Gender == Unknown || m > lead.GenderMean {
			lead.Gender, lead.GenderMean = g, m
		}
	}
	lead.Grade = int(roundTo(lead.GenderMean, 0))
	return lead, nil
}
