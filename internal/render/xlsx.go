package render

import (
	"io"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/strategy-cli/internal/model"
)

// XLSX writes the basic strategy as a workbook: platforms plus one sheet per
// content-calendar week.
func XLSX(w io.Writer, r *model.StrategyResult) error {
	f := xlsx.NewFile()

	platforms := [][]string{{"Platform", "Priority", "Reasoning", "Country Note"}}
	for _, p := range r.Platforms {
		platforms = append(platforms, []string{p.Name, string(p.Priority), p.Reasoning, p.CountrySpecific})
	}
	if err := addSheet(f, "Platforms", platforms); err != nil {
		return err
	}
	if err := addSheet(f, "This Week", calendarRows(r.WeeklyContentIdeas)); err != nil {
		return err
	}
	if err := addSheet(f, "Next Week", calendarRows(r.NextWeekContentIdeas)); err != nil {
		return err
	}

	checklist := [][]string{{"Section", "Item"}}
	for _, t := range r.Tools {
		checklist = append(checklist, []string{"Tool", t})
	}
	for _, s := range r.NextSteps {
		checklist = append(checklist, []string{"Next Step", s})
	}
	if err := addSheet(f, "Checklist", checklist); err != nil {
		return err
	}

	return write(f, w)
}

// AdvancedXLSX writes the advanced plan as a workbook: daily plan, weekly
// summaries and measurement dashboard.
func AdvancedXLSX(w io.Writer, r *model.AdvancedStrategyResult) error {
	f := xlsx.NewFile()

	sheet, err := f.AddSheet("Daily Plan")
	if err != nil {
		return eris.Wrap(err, "render: add sheet Daily Plan")
	}
	addRow(sheet, []string{"Day", "Task", "Time", "Owner", "Priority", "Effort/Impact", "Hook", "Caption", "Hashtags", "CTA", "Metric"})
	for _, a := range r.DailyPlan {
		row := sheet.AddRow()
		row.AddCell().SetInt(a.Day)
		for _, s := range []string{a.TaskTitle, a.EstimatedTime, string(a.AssignedTo), string(a.Priority)} {
			row.AddCell().SetString(s)
		}
		row.AddCell().SetInt(a.EffortImpact)
		for _, s := range []string{
			a.ContentBrief.HookLine, a.ContentBrief.PrimaryCaption,
			strings.Join(a.ContentBrief.Hashtags, " "), a.CTA, a.MeasurementMetric,
		} {
			row.AddCell().SetString(s)
		}
	}

	weekly := [][]string{{"Week", "Priority KPI", "Milestone", "Time", "Ad Spend"}}
	for _, s := range r.WeeklySummaries {
		weekly = append(weekly, []string{s.Goal, s.PriorityKPI, s.ExpectedMilestone, s.EstimatedTime, s.AdSpend})
	}
	if err := addSheet(f, "Weekly", weekly); err != nil {
		return err
	}

	dashboard := [][]string{{"KPI", "Formula", "Corrective Actions"}}
	for _, k := range r.MeasurementDashboard {
		dashboard = append(dashboard, []string{k.KPI, k.Formula, strings.Join(k.CorrectiveActions, "; ")})
	}
	if err := addSheet(f, "Dashboard", dashboard); err != nil {
		return err
	}

	return write(f, w)
}

func calendarRows(ideas []model.ContentIdea) [][]string {
	rows := [][]string{{"Day", "Content Type", "Idea", "Hashtags", "Tip"}}
	for _, c := range ideas {
		rows = append(rows, []string{c.Day, c.ContentType, c.Idea, strings.Join(c.Hashtags, " "), c.Tips})
	}
	return rows
}

func addSheet(f *xlsx.File, name string, rows [][]string) error {
	sheet, err := f.AddSheet(name)
	if err != nil {
		return eris.Wrapf(err, "render: add sheet %s", name)
	}
	for _, r := range rows {
		addRow(sheet, r)
	}
	return nil
}

func addRow(sheet *xlsx.Sheet, cells []string) {
	row := sheet.AddRow()
	for _, c := range cells {
		row.AddCell().SetString(c)
	}
}

func write(f *xlsx.File, w io.Writer) error {
	if err := f.Write(w); err != nil {
		return eris.Wrap(err, "render: write workbook")
	}
	return nil
}
