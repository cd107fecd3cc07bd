package roster

// AnalyzePatronymics counts students without a patronymic and splits the
// rest by the gender their patronymic suggests.
func AnalyzePatronymics(r Roster) PatronymicReport {
	var rep PatronymicReport
	for _, d := range Augment(r) {
		if !d.HasPatronymic {
			rep.WithoutPatronymic++
		}
		switch d.Gender {
		case Male:
			rep.Male++
		case Female:
			rep.Female++
		default:
			rep.Unclassified++
		}
	}
	return rep
}
