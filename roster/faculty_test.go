package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterFaculty(t *testing.T) {
	r := loadFixture(t)

	sub := FilterFaculty(r, facultyRobotics)
	assert.Equal(t, 5, sub.Students)
	assert.Equal(t, 3, sub.Groups)
	assert.Len(t, sub.Roster, 5)
	assert.False(t, sub.Empty())
	for _, s := range sub.Roster {
		assert.Equal(t, facultyRobotics, s.Faculty)
	}
	assert.Len(t, r, 12, "input roster must not change")
}

func TestFilterFacultyUnknown(t *testing.T) {
	sub := FilterFaculty(loadFixture(t), "факультет, которого нет")
	assert.True(t, sub.Empty())
	assert.Zero(t, sub.Groups)
	assert.Empty(t, sub.Roster)
}

func TestFacultyCensus(t *testing.T) {
	r := loadFixture(t)

	c, err := FacultyCensus(r)
	require.NoError(t, err)
	assert.Equal(t, FacultyCount{Faculty: facultyRobotics, Count: 5}, c.Max)
	assert.Equal(t, FacultyCount{Faculty: facultyPhysics, Count: 3}, c.Min)

	total := 0
	for _, n := range c.Counts {
		total += n
	}
	assert.Equal(t, len(r), total)

	sorted := c.Sorted()
	require.Len(t, sorted, 3)
	assert.Equal(t, facultySoftware, sorted[1].Faculty)
}

func TestFacultyCensusTiesGoToFirstName(t *testing.T) {
	r := Roster{
		student("Б Б", "б", "1-й", "G1", 1, 1),
		student("А А", "а", "1-й", "G2", 2, 1),
		student("В В", "в", "1-й", "G3", 3, 1),
	}
	c, err := FacultyCensus(r)
	require.NoError(t, err)
	assert.Equal(t, "а", c.Max.Faculty)
	assert.Equal(t, "а", c.Min.Faculty)
}

func TestFacultyCensusEmpty(t *testing.T) {
	_, err := FacultyCensus(nil)
	assert.ErrorIs(t, err, ErrNoResult)
}

func TestCourseCensus(t *testing.T) {
	stats := CourseCensus(loadFixture(t))
	require.Len(t, stats, 4)

	assert.Equal(t, CourseStat{Course: "1-й", Faculties: 2, Mean: 1.5, Median: 1.5}, stats[0])
	assert.Equal(t, CourseStat{Course: "2-й", Faculties: 2, Mean: 1.5, Median: 1.5}, stats[1])
	assert.Equal(t, CourseStat{Course: "3-й", Faculties: 2, Mean: 2, Median: 2}, stats[2])
	assert.Equal(t, CourseStat{Course: "4-й", Faculties: 1, Mean: 2, Median: 2}, stats[3])
}

func TestCourseCensusRounding(t *testing.T) {
	var r Roster
	add := func(faculty string, n int) {
		for i := 0; i < n; i++ {
			r = append(r, student("Иванов Иван", faculty, "2-й", faculty, len(r), 0))
		}
	}
	add("a", 1)
	add("b", 2)
	add("c", 8)

	stats := CourseCensus(r)
	require.Len(t, stats, 1)
	assert.Equal(t, 3.7, stats[0].Mean)
	assert.Equal(t, 2.0, stats[0].Median)
}
