package session

import (
	"fmt"
	"strings"

	"gitlab.com/bhajan-roster.net/internal/domain"
)

const exportDateLayout = "Monday, 02 Jan 2006"

// RenderText formats an ordered session as plain text suitable for pasting
// into a chat message.
func RenderText(date domain.SessionDate, ordered []domain.OrderedSubmission, summary domain.SessionSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Bhajan roster - %s\n", date.Time().Format(exportDateLayout))
	fmt.Fprintf(&b, "Mandatory slots filled: %d/%d, optional: %d/%d\n",
		summary.MandatoryFilled, summary.MandatoryTotal,
		summary.OptionalFilled, summary.OptionalTotal)

	if len(ordered) == 0 {
		b.WriteString("\nNo songs submitted yet.\n")
		return b.String()
	}

	b.WriteString("\n")
	for _, o := range ordered {
		singers := o.SingerName
		if o.PartnerName != nil && *o.PartnerName != "" {
			singers += " & " + *o.PartnerName
		}
		fmt.Fprintf(&b, "%d. %s - %s (%s) - Scale: %s - %s\n",
			o.Position, o.Deity, o.Title, singers, o.Scale, o.Speed)
	}

	var open []string
	for _, slot := range summary.Slots {
		if slot.Mandatory && !slot.Taken {
			open = append(open, slot.Deity)
		}
	}
	if len(open) > 0 {
		fmt.Fprintf(&b, "\nStill open: %s\n", strings.Join(open, ", "))
	}
	return b.String()
}
