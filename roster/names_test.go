package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseName(t *testing.T) {
	n := ParseName("Иванов  Александр Петрович")
	assert.Equal(t, "Иванов", n.Surname)
	assert.Equal(t, "Александр", n.Given)
	assert.Equal(t, "Петрович", n.Patronymic)
	assert.True(t, n.HasPatronymic)

	n = ParseName("Петрова Мария")
	assert.Equal(t, "Мария", n.Given)
	assert.False(t, n.HasPatronymic)
	assert.Empty(t, n.Patronymic)
}

func TestClassifyGender(t *testing.T) {
	cases := map[string]Gender{
		"Петрович":    Male,
		"Сергеевич":   Male,
		"Ильич":       Male,
		"Никитич":     Male,
		"Ивановна":    Female,
		"Андреевна":   Female,
		"Ильинична":   Female,
		"Кузьминична": Female,
		"Эммануэль":   Unknown,
		"":            Unknown,
		"ПЕТРОВИЧ":    Unknown,
		"Оглы":        Unknown,
	}
	for patronymic, want := range cases {
		assert.Equal(t, want, ClassifyGender(patronymic), patronymic)
	}
}

func TestGenderString(t *testing.T) {
	assert.Equal(t, "male", Male.String())
	assert.Equal(t, "female", Female.String())
	assert.Equal(t, "unknown", Unknown.String())

	b, err := Female.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "female", string(b))
}

func TestAugmentLeavesInputUntouched(t *testing.T) {
	r := Roster{student("Смирнов Александр Ильич", facultyRobotics, "3-й", "R3341", 104, 70)}
	before := append(Roster(nil), r...)

	d := Augment(r)
	assert.Len(t, d, 1)
	assert.Equal(t, "Смирнов", d[0].Surname)
	assert.Equal(t, Male, d[0].Gender)

	d[0].FullName = "changed"
	assert.Equal(t, before, r)
}
