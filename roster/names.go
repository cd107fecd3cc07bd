// names.go
package roster

import "strings"

// Name is a full name split into its positional parts.
type Name struct {
	Surname       string
	Given         string
	Patronymic    string
	HasPatronymic bool
}

// ParseName splits "Surname Given [Patronymic]" on whitespace. Tokens past
// the third are ignored.
func ParseName(fullName string) Name {
	tokens := strings.Fields(fullName)
	var n Name
	if len(tokens) > 0 {
		n.Surname = tokens[0]
	}
	if len(tokens) > 1 {
		n.Given = tokens[1]
	}
	if len(tokens) > 2 {
		n.Patronymic = tokens[2]
		n.HasPatronymic = true
	}
	return n
}

// Gender as inferred from a patronymic.
type Gender int

const (
	Unknown Gender = iota
	Male
	Female
)

func (g Gender) String() string {
	switch g {
	case Male:
		return "male"
	case Female:
		return "female"
	default:
		return "unknown"
	}
}

// MarshalText encodes the gender as its label.
func (g Gender) MarshalText() ([]byte, error) { return []byte(g.String()), nil }

func (g *Gender) UnmarshalText(b []byte) error {
	switch string(b) {
	case "male":
		*g = Male
	case "female":
		*g = Female
	default:
		*g = Unknown
	}
	return nil
}

// SuffixRule maps patronymic endings to a gender.
type SuffixRule struct {
	Gender   Gender
	Suffixes []string
}

// GenderRulesVersion identifies the current contents of GenderRules.
const GenderRulesVersion = 1

// GenderRules are checked in order and a later match overrides an earlier
// one. Matching is case-sensitive against the end of the patronymic.
var GenderRules = []SuffixRule{
	{Gender: Male, Suffixes: []string{"ович", "евич", "ич"}},
	{Gender: Female, Suffixes: []string{"овна", "евна", "ична", "инична"}},
}

// ClassifyGender infers gender from a patronymic. Empty input and
// patronymics matching no rule are Unknown.
func ClassifyGender(patronymic string) Gender {
	g := Unknown
	if patronymic == "" {
		return g
	}
	for _, rule := range GenderRules {
		for _, suffix := range rule.Suffixes {
			if strings.HasSuffix(patronymic, suffix) {
				g = rule.Gender
				break
			}
		}
	}
	return g
}

// Derived is a student together with the fields computed from its name.
type Derived struct {
	Student
	Name
	Gender Gender
}

// Augment returns a copy of the roster with name parts and gender filled
// in. The input roster is left as is.
func Augment(r Roster) []Derived {
	out := make([]Derived, len(r))
	for i, s := range r {
		n := ParseName(s.FullName)
		out[i] = Derived{Student: s, Name: n, Gender: ClassifyGender(n.Patronymic)}
	}
	return out
}
