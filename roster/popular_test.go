package roster

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMostPopularName(t *testing.T) {
	r := loadFixture(t)

	p, err := MostPopularName(r)
	require.NoError(t, err)
	assert.Equal(t, "Александр", p.Name)
	// three groups have one Александр each; the first one in the roster wins
	assert.Equal(t, "R3141", p.Group)
	assert.Equal(t, facultyRobotics, p.Faculty)
	assert.Equal(t, "1-й", p.Course)
	assert.Equal(t, 3, p.Count)
	assert.Equal(t, 0.25, p.Ratio)
	assert.True(t, p.Ratio > 0 && p.Ratio <= 1)
}

func TestMostPopularNameTieKeepsInputOrder(t *testing.T) {
	r := Roster{
		student("Б Борис", "f1", "2-й", "G2", 1, 0),
		student("А Антон", "f2", "1-й", "G1", 2, 0),
		student("В Антон", "f2", "1-й", "G1", 3, 0),
		student("Г Борис", "f1", "2-й", "G2", 4, 0),
	}
	p, err := MostPopularName(r)
	require.NoError(t, err)
	assert.Equal(t, "Борис", p.Name)
	assert.Equal(t, "G2", p.Group)
	assert.Equal(t, "f1", p.Faculty)
	assert.Equal(t, 0.5, p.Ratio)
}

func TestMostPopularNameRatioRounding(t *testing.T) {
	r := Roster{
		student("А Ян", "f", "1-й", "G", 1, 0),
		student("Б Ян", "f", "1-й", "G", 2, 0),
		student("В Ия", "f", "1-й", "G", 3, 0),
	}
	p, err := MostPopularName(r)
	require.NoError(t, err)
	assert.Equal(t, 0.67, p.Ratio)
}

func TestMostPopularNameEmpty(t *testing.T) {
	_, err := MostPopularName(Roster{})
	assert.ErrorIs(t, err, ErrNoResult)
}

func TestUniqueNamesWithPrefix(t *testing.T) {
	got := UniqueNamesWithPrefix(loadFixture(t), "П")
	assert.Equal(t, []StudentSummary{
		{FullName: "Кузнецова Полина Андреевна", Faculty: facultyPhysics, Course: "3-й"},
		{FullName: "Орлов Пётр Никитич", Faculty: facultyPhysics, Course: "3-й"},
		{FullName: "Волков Платон Эммануэль", Faculty: facultySoftware, Course: "2-й"},
	}, got)

	seen := make(map[string]int)
	for _, s := range got {
		g := ParseName(s.FullName).Given
		assert.True(t, strings.HasPrefix(g, "П"))
		seen[g]++
	}
	for g, n := range seen {
		assert.Equal(t, 1, n, g)
	}
}

func TestUniqueNamesWithPrefixNone(t *testing.T) {
	got := UniqueNamesWithPrefix(loadFixture(t), "Щ")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
