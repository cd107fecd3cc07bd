package roster

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	facultyRobotics = "факультет систем управления и робототехники"
	facultyPhysics  = "физический факультет"
	facultySoftware = "факультет программной инженерии и компьютерной техники"
)

func loadFixture(t *testing.T) Roster {
	t.Helper()
	f, err := os.Open("testdata/roster.csv")
	require.NoError(t, err)
	defer f.Close()

	r, err := ReadCSV(f, UTF8)
	require.NoError(t, err)
	require.Len(t, r, 12)
	return r
}

func student(fullName, faculty, course, group string, id int, gpa float64) Student {
	return Student{
		FullName: fullName,
		Faculty:  faculty,
		Course:   course,
		Group:    group,
		ID:       id,
		GPA:      gpa,
		HasGPA:   true,
	}
}
