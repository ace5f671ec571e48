package content

import (
	"time"

	"github.com/postdeck/postdeck/pkg/types"
)

// Day is one calendar day with the scheduled posts that fall on it.
type Day struct {
	Date  time.Time    `json:"date"`
	Posts []types.Post `json:"posts,omitempty"`
}

// Calendar returns one Day per day of the given month, in order, bucketing
// the scheduled posts whose target date falls on that day. Days are compared
// in the schedule timestamp's own location. Drafts and published posts never
// appear, and posts scheduled outside the month are ignored.
func (l *Library) Calendar(year int, month time.Month) ([]Day, error) {
	scheduled, err := l.ListPosts(types.PostTypeScheduled)
	if err != nil {
		return nil, err
	}

	// Day 0 of the next month is the last day of this one.
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	days := make([]Day, lastDay)
	for i := range days {
		days[i].Date = time.Date(year, month, i+1, 0, 0, 0, 0, time.UTC)
	}

	for _, p := range scheduled {
		if p.Date == nil {
			continue
		}
		y, m, d := p.Date.Date()
		if y != year || m != month {
			continue
		}
		days[d-1].Posts = append(days[d-1].Posts, p)
	}
	return days, nil
}
