// report.go
package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"rosterstats/roster"
)

var heading = color.New(color.FgYellow, color.Bold)

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	return table
}

func section(w io.Writer, title string) {
	heading.Fprintln(w)
	heading.Fprintln(w, title)
}

func noResult(w io.Writer, rep roster.Report, key string) {
	fmt.Fprintf(w, "no result: %s\n", rep.NoResult[key])
}

// renderReport prints every section of rep as console tables.
func renderReport(w io.Writer, rep roster.Report) {
	section(w, "Faculty subset")
	fmt.Fprintf(w, "%s: %d students in %d groups (of %d)\n",
		rep.Subset.Faculty, rep.Subset.Students, rep.Subset.Groups, rep.Total)

	section(w, "Namesakes")
	if ns := rep.Namesakes; ns != nil {
		fmt.Fprintf(w, "namesakes: %t, total: %d, top group: %s (%d)\n", ns.Found, ns.Total, ns.TopGroup, ns.TopCount)
		table := newTable(w, "Course", "Namesakes")
		for _, c := range ns.PerCourse {
			table.Append([]string{c.Course, strconv.Itoa(c.Count)})
		}
		table.Render()
	} else {
		noResult(w, rep, "namesakes")
	}

	section(w, "Patronymics")
	p := rep.Patronymics
	fmt.Fprintf(w, "without patronymic: %d\n", p.WithoutPatronymic)
	table := newTable(w, "Gender", "Students")
	table.Append([]string{roster.Male.String(), strconv.Itoa(p.Male)})
	table.Append([]string{roster.Female.String(), strconv.Itoa(p.Female)})
	table.Append([]string{roster.Unknown.String(), strconv.Itoa(p.Unclassified)})
	table.Render()

	section(w, "Faculties")
	if c := rep.Census; c != nil {
		table := newTable(w, "Faculty", "Students")
		for _, fc := range c.Sorted() {
			table.Append([]string{fc.Faculty, strconv.Itoa(fc.Count)})
		}
		table.Render()
		fmt.Fprintf(w, "largest: %s (%d)\nsmallest: %s (%d)\n", c.Max.Faculty, c.Max.Count, c.Min.Faculty, c.Min.Count)
	} else {
		noResult(w, rep, "census")
	}

	section(w, "Students per faculty by course")
	table = newTable(w, "Course", "Faculties", "Mean", "Median")
	for _, cs := range rep.Courses {
		table.Append([]string{
			cs.Course,
			strconv.Itoa(cs.Faculties),
			strconv.FormatFloat(cs.Mean, 'f', 1, 64),
			strconv.FormatFloat(cs.Median, 'f', -1, 64),
		})
	}
	table.Render()

	section(w, "Most popular name")
	if pn := rep.Popular; pn != nil {
		fmt.Fprintf(w, "name: %s, group: %s, faculty: %s, course: %s\nshare: %.2f (%d students)\n",
			pn.Name, pn.Group, pn.Faculty, pn.Course, pn.Ratio, pn.Count)
	} else {
		noResult(w, rep, "popular_name")
	}

	section(w, "Unique names")
	table = newTable(w, "Full name", "Faculty", "Course")
	for _, s := range rep.UniqueNames {
		table.Append([]string{s.FullName, s.Faculty, s.Course})
	}
	table.Render()

	section(w, "Best faculty by GPA")
	if g := rep.Grades; g != nil {
		fmt.Fprintf(w, "faculty: %s (%.2f)\ngender: %s, grade: %d\n", g.Faculty, g.FacultyMean, g.Gender, g.Grade)
	} else {
		noResult(w, rep, "grades")
	}

	section(w, "Consecutive id numbers")
	if run := rep.Run; run != nil {
		table := newTable(w, "Full name", "ISU", "Faculty", "Course", "Group")
		for _, s := range run.Students {
			table.Append([]string{s.FullName, strconv.Itoa(s.ID), s.Faculty, s.Course, s.Group})
		}
		table.Render()
	} else {
		noResult(w, rep, "consecutive_run")
	}
}
