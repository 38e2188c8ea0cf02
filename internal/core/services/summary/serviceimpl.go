package summary

import "gitlab.com/bhajan-roster.net/internal/domain"

var _ ISummaryBuilder = (*Builder)(nil)

type Builder struct {
	catalog domain.Catalog
}

func NewBuilder(catalog domain.Catalog) *Builder {
	return &Builder{catalog: catalog}
}

// Summarize lists every catalog deity in rank order, marking the ones a
// submission of date has claimed. Submissions of other dates are ignored.
func (b *Builder) Summarize(date domain.SessionDate, subs []*domain.Submission) domain.SessionSummary {
	claimed := make(map[string]*domain.Submission, len(subs))
	for _, sub := range subs {
		if sub == nil || sub.SessionDate != date {
			continue
		}
		key := domain.DeityKey(sub.Deity)
		if _, seen := claimed[key]; !seen {
			claimed[key] = sub
		}
	}

	deities := b.catalog.Deities()
	summary := domain.SessionSummary{
		SessionDate: date,
		Slots:       make([]domain.DeitySlot, 0, len(deities)),
	}
	for _, d := range deities {
		slot := domain.DeitySlot{Deity: d.Name, Mandatory: d.Mandatory}
		if d.Mandatory {
			summary.MandatoryTotal++
		} else {
			summary.OptionalTotal++
		}
		if sub, ok := claimed[domain.DeityKey(d.Name)]; ok {
			slot.Taken = true
			slot.ClaimedBy = sub.SingerName
			slot.Title = sub.Title
			slot.Scale = sub.Scale
			slot.Speed = sub.Speed
			if d.Mandatory {
				summary.MandatoryFilled++
			} else {
				summary.OptionalFilled++
			}
		}
		summary.Slots = append(summary.Slots, slot)
	}
	return summary
}
