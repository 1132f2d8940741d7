package formatter

import (
	"fmt"
	"strings"

	"github.com/Sricharanredd/jira-team-1/internal/app"
)

const activityTitleWidth = 48

// FormatActivity renders the feed day by day, newest first, one line per
// event with its time, issue code and title.
func FormatActivity(resp *app.ActivityResponse) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Activity · last %d days", resp.Days)))
	b.WriteString("\n\n")

	if len(resp.Feed) == 0 {
		b.WriteString(Dim(fmt.Sprintf("No issues created since %s.", ShortDate(resp.Since))))
		b.WriteString("\n")
		return b.String()
	}

	total := 0
	for _, day := range resp.Feed {
		b.WriteString(StyleBlue.Render(day.Date.Format("Mon, Jan 02")))
		b.WriteString("\n")
		for _, e := range day.Entries {
			total++
			issue := e.Issue
			code := issue.StoryCode
			if code == "" {
				code = "#" + issue.ID
			}
			fmt.Fprintf(&b, "  %s  %s %s  %s  %s\n",
				Dim(e.At.Format("15:04")),
				TypeIcon(issue.IssueType),
				PadRight(StyleBold.Render(code), 8),
				PadRight(Truncate(issue.Title, activityTitleWidth), activityTitleWidth),
				Dim(string(e.Kind)),
			)
		}
	}
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%d issues created since %s", total, ShortDate(resp.Since))))
	b.WriteString("\n")
	return b.String()
}
