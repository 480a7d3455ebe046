package dashboard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/amishk599/skillmap/internal/analysis"
	"github.com/amishk599/skillmap/internal/model"
	"github.com/amishk599/skillmap/internal/skill"
)

// Jobs shown in the listing preview.
const previewJobs = 10

// Slice colours for the share chart, cycled when there are more skills.
var sliceColors = []lipgloss.Color{"39", "42", "214", "203", "141", "45", "220", "168", "113", "75"}

var (
	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Bold(true)

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("120")) // light green

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	linkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("75")).
			Underline(true)

	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 1)

	tableCellStyle = lipgloss.NewStyle().
			Padding(0, 1)
)

// RenderResult renders a successful run as plain styled text, width columns wide.
func RenderResult(result *model.AnalysisResult, width int) string {
	if width <= 0 {
		width = 80
	}

	var b strings.Builder
	b.WriteString(successStyle.Render(fmt.Sprintf("✅ Found %d job listings", len(result.Jobs))))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("📈 Top Skills Extracted"))
	b.WriteString("\n")
	b.WriteString(SkillTable(result.Skills))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("💼 Sample Job Listings"))
	b.WriteString("\n")
	b.WriteString(JobTable(result.PreviewJobs(previewJobs)))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("📊 Skill Frequency Bar Chart"))
	b.WriteString("\n")
	b.WriteString(BarChart(result.Skills, width))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("🧁 Skill Share"))
	b.WriteString("\n")
	b.WriteString(ShareChart(result.Skills, width))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("🎓 Recommended Courses"))
	b.WriteString("\n")
	b.WriteString(CourseList(result.Recommendations))

	return b.String()
}

// RenderError renders the message for a failed run. No-jobs is a warning.
func RenderError(err error) string {
	msg := analysis.Message(err)
	if analysis.Classify(err) == analysis.OutcomeNoJobs {
		return warnStyle.Render("⚠ " + msg)
	}
	return errorStyle.Render("✖ " + msg)
}

func newTable() *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		})
}

// SkillTable renders the ranked skills as a two-column table.
func SkillTable(skills []model.SkillFrequency) string {
	t := newTable().Headers("Skill", "Frequency")
	for _, sf := range skills {
		t.Row(sf.Skill, strconv.Itoa(sf.Count))
	}
	return t.String()
}

// JobTable renders title and company for each posting.
func JobTable(jobs []model.JobPosting) string {
	t := newTable().Headers("Title", "Company")
	for _, j := range jobs {
		t.Row(j.Title, j.CompanyName)
	}
	return t.String()
}

// BarChart draws one horizontal bar per skill, scaled to the largest count.
func BarChart(skills []model.SkillFrequency, width int) string {
	if len(skills) == 0 {
		return dimStyle.Render("(no skills matched)")
	}

	labelWidth := 0
	maxCount := 0
	for _, sf := range skills {
		labelWidth = max(labelWidth, lipgloss.Width(sf.Skill))
		maxCount = max(maxCount, sf.Count)
	}
	// label + space + bar + space + count
	barWidth := max(width-labelWidth-2-len(strconv.Itoa(maxCount)), 1)

	var lines []string
	for _, sf := range skills {
		n := max(sf.Count*barWidth/maxCount, 1)
		label := lipgloss.NewStyle().Width(labelWidth).Align(lipgloss.Right).Render(sf.Skill)
		lines = append(lines, fmt.Sprintf("%s %s %d", label, barStyle.Render(strings.Repeat("█", n)), sf.Count))
	}
	return strings.Join(lines, "\n")
}

// Share is one skill's fraction of all counted mentions.
type Share struct {
	Skill   string
	Percent float64
}

// Shares converts counts into percentages of the total. They sum to 100
// (within rounding) whenever skills is non-empty.
func Shares(skills []model.SkillFrequency) []Share {
	total := 0
	for _, sf := range skills {
		total += sf.Count
	}
	if total == 0 {
		return nil
	}
	out := make([]Share, len(skills))
	for i, sf := range skills {
		out[i] = Share{Skill: sf.Skill, Percent: float64(sf.Count) * 100 / float64(total)}
	}
	return out
}

// ShareChart is the terminal stand-in for a pie chart: a single stacked bar
// with one coloured segment per skill, followed by a percentage legend.
func ShareChart(skills []model.SkillFrequency, width int) string {
	shares := Shares(skills)
	if len(shares) == 0 {
		return dimStyle.Render("(no skills matched)")
	}

	var bar strings.Builder
	var legend []string
	used := 0
	for i, s := range shares {
		style := lipgloss.NewStyle().Foreground(sliceColors[i%len(sliceColors)])
		n := int(s.Percent / 100 * float64(width))
		if i == len(shares)-1 {
			n = width - used
		}
		used += n
		bar.WriteString(style.Render(strings.Repeat("█", max(n, 0))))
		legend = append(legend, fmt.Sprintf("%s %s %.1f%%", style.Render("●"), s.Skill, s.Percent))
	}
	return bar.String() + "\n" + strings.Join(legend, "\n")
}

// CourseList renders each recommended skill (capitalized) with its course links.
func CourseList(recs model.Recommendations) string {
	if len(recs) == 0 {
		return dimStyle.Render("(no course recommendations)")
	}
	var b strings.Builder
	for _, rec := range recs {
		b.WriteString(lipgloss.NewStyle().Italic(true).Render(skill.Capitalize(rec.Skill)))
		b.WriteString("\n")
		for _, c := range rec.Courses {
			fmt.Fprintf(&b, "  🔗 %s %s\n", c.Title, linkStyle.Render(c.URL))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
