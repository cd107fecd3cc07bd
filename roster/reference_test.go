package roster

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// referenceDataset is the full ISU export. It is not checked in; drop it
// into testdata to run these checks.
const referenceDataset = "testdata/isu_fake_data.csv"

func loadReference(t *testing.T) Roster {
	t.Helper()
	f, err := os.Open(referenceDataset)
	if os.IsNotExist(err) {
		t.Skipf("%s not present", referenceDataset)
	}
	require.NoError(t, err)
	defer f.Close()

	r, err := ReadCSV(f, UTF8)
	require.NoError(t, err)
	return r
}

func TestReferenceRobotics(t *testing.T) {
	r := loadReference(t)

	sub := FilterFaculty(r, DefaultFaculty)
	assert.Equal(t, 993, sub.Students)
	assert.Equal(t, 56, sub.Groups)

	ns, err := FindNamesakes(sub.Roster)
	require.NoError(t, err)
	assert.True(t, ns.Found)
	assert.Equal(t, 451, ns.Total)
	assert.Equal(t, 111, ns.CourseCount("1-й"))
	assert.Equal(t, 111, ns.CourseCount("2-й"))
	assert.Equal(t, 134, ns.CourseCount("3-й"))
	assert.Equal(t, 94, ns.CourseCount("4-й"))
	assert.Equal(t, "R33441c", ns.TopGroup)

	p := AnalyzePatronymics(sub.Roster)
	assert.Equal(t, 409, p.WithoutPatronymic)
	assert.Equal(t, 384, p.Male)
	assert.Equal(t, 155, p.Female)
}

func TestReferenceCensus(t *testing.T) {
	r := loadReference(t)

	c, err := FacultyCensus(r)
	require.NoError(t, err)
	assert.Equal(t, FacultyCount{Faculty: "факультет программной инженерии и компьютерной техники", Count: 2154}, c.Max)
	assert.Equal(t, FacultyCount{Faculty: "институт международного развития и партнерства", Count: 26}, c.Min)

	want := []struct {
		course       string
		mean, median float64
	}{
		{"1-й", 215.0, 79.0},
		{"2-й", 205.1, 118.0},
		{"3-й", 166.0, 98.0},
		{"4-й", 139.3, 95.5},
	}
	stats := CourseCensus(r)
	require.Len(t, stats, len(want))
	for i, w := range want {
		assert.Equal(t, w.course, stats[i].Course)
		assert.Equal(t, w.mean, stats[i].Mean, w.course)
		assert.Equal(t, w.median, stats[i].Median, w.course)
	}
}

func TestReferenceNames(t *testing.T) {
	r := loadReference(t)

	p, err := MostPopularName(r)
	require.NoError(t, err)
	assert.Equal(t, "Александр", p.Name)
	assert.Equal(t, "K3241", p.Group)
	assert.Equal(t, "факультет инфокоммуникационных технологий", p.Faculty)
	assert.Equal(t, "2-й", p.Course)
	assert.Equal(t, 0.04, p.Ratio)

	unique := UniqueNamesWithPrefix(r, "П")
	assert.Len(t, unique, 16)
	assert.Contains(t, unique, StudentSummary{
		FullName: "Арсланова Патина Гасановна",
		Faculty:  "факультет инфокоммуникационных технологий",
		Course:   "2-й",
	})
	assert.Contains(t, unique, StudentSummary{
		FullName: "Круглов Принц Эммануэль",
		Faculty:  "факультет программной инженерии и компьютерной техники",
		Course:   "1-й",
	})
}

func TestReferenceGradesAndRun(t *testing.T) {
	r := loadReference(t)

	g, err := TopFacultyByGrade(r, DefaultGradeCourse)
	require.NoError(t, err)
	assert.Equal(t, "физический факультет", g.Faculty)
	assert.Equal(t, Female, g.Gender)
	assert.Equal(t, 86, g.Grade)

	run, err := ConsecutiveRun(r, DefaultRunLength)
	require.NoError(t, err)
	assert.Equal(t, []int{311121, 311122, 311123, 311124, 311125}, run.IDs())
	groups := []string{"R34351", "Z34431", "M34011", "M34041", "N34461"}
	for i, s := range run.Students {
		assert.Equal(t, groups[i], s.Group)
		assert.Equal(t, "4-й", s.Course)
	}
}
