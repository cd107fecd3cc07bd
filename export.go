// export.go
package main

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"rosterstats/roster"
)

// buildWorkbook lays the report out over several sheets, one table each.
func buildWorkbook(rep roster.Report) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), "Summary"); err != nil {
		f.Close()
		return nil, err
	}

	summary := [][]any{
		{"Section", "Value"},
		{"Students", rep.Total},
		{"Faculty", rep.Subset.Faculty},
		{"Faculty students", rep.Subset.Students},
		{"Faculty groups", rep.Subset.Groups},
		{"Without patronymic", rep.Patronymics.WithoutPatronymic},
		{"Male", rep.Patronymics.Male},
		{"Female", rep.Patronymics.Female},
		{"Unclassified", rep.Patronymics.Unclassified},
	}
	if ns := rep.Namesakes; ns != nil {
		summary = append(summary,
			[]any{"Namesakes", ns.Total},
			[]any{"Namesake top group", ns.TopGroup})
	}
	if c := rep.Census; c != nil {
		summary = append(summary,
			[]any{"Largest faculty", fmt.Sprintf("%s (%d)", c.Max.Faculty, c.Max.Count)},
			[]any{"Smallest faculty", fmt.Sprintf("%s (%d)", c.Min.Faculty, c.Min.Count)})
	}
	if p := rep.Popular; p != nil {
		summary = append(summary,
			[]any{"Popular name", p.Name},
			[]any{"Popular name group", p.Group},
			[]any{"Popular name share", p.Ratio})
	}
	if g := rep.Grades; g != nil {
		summary = append(summary,
			[]any{"Best GPA faculty", g.Faculty},
			[]any{"Best GPA gender", g.Gender.String()},
			[]any{"Best GPA grade", g.Grade})
	}
	missing := make([]string, 0, len(rep.NoResult))
	for section := range rep.NoResult {
		missing = append(missing, section)
	}
	sort.Strings(missing)
	for _, section := range missing {
		summary = append(summary, []any{"No result: " + section, rep.NoResult[section]})
	}

	sheets := map[string][][]any{"Summary": summary}
	order := []string{"Summary"}
	add := func(name string, rows [][]any) {
		sheets[name] = rows
		order = append(order, name)
	}

	courses := [][]any{{"Course", "Faculties", "Mean", "Median"}}
	for _, c := range rep.Courses {
		courses = append(courses, []any{c.Course, c.Faculties, c.Mean, c.Median})
	}
	add("Courses", courses)

	if ns := rep.Namesakes; ns != nil {
		rows := [][]any{{"Course", "Namesakes"}}
		for _, c := range ns.PerCourse {
			rows = append(rows, []any{c.Course, c.Count})
		}
		add("Namesakes", rows)
	}
	if c := rep.Census; c != nil {
		rows := [][]any{{"Faculty", "Students"}}
		for _, fc := range c.Sorted() {
			rows = append(rows, []any{fc.Faculty, fc.Count})
		}
		add("Faculties", rows)
	}

	unique := [][]any{{"Full name", "Faculty", "Course"}}
	for _, s := range rep.UniqueNames {
		unique = append(unique, []any{s.FullName, s.Faculty, s.Course})
	}
	add("Unique names", unique)

	if run := rep.Run; run != nil {
		rows := [][]any{{"Full name", "ISU", "Faculty", "Course", "Group"}}
		for _, s := range run.Students {
			rows = append(rows, []any{s.FullName, s.ID, s.Faculty, s.Course, s.Group})
		}
		add("Consecutive ids", rows)
	}

	for _, name := range order {
		if name != "Summary" {
			if _, err := f.NewSheet(name); err != nil {
				f.Close()
				return nil, fmt.Errorf("sheet %q: %w", name, err)
			}
		}
		for i, row := range sheets[name] {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			if err != nil {
				f.Close()
				return nil, err
			}
			if err := f.SetSheetRow(name, cell, &row); err != nil {
				f.Close()
				return nil, fmt.Errorf("sheet %q row %d: %w", name, i+1, err)
			}
		}
	}
	return f, nil
}

func exportXLSX(path string, rep roster.Report) error {
	f, err := buildWorkbook(rep)
	if err != nil {
		return fmt.Errorf("build workbook: %w", err)
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
