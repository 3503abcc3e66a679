package timeline

import (
	"cmp"
	"strings"
)

// Season describes a three-month window and its social calendar.
type Season struct {
	Name       string
	Months     [3]string
	Activities []string
}

// seasons is the authoritative season-to-month mapping. Synthetic dates
// only ever use months from the story's season.
var seasons = map[string]Season{
	"spring": {
		Name:       "spring",
		Months:     [3]string{"March", "April", "May"},
		Activities: []string{"garden parties", "country walks", "early Season events"},
	},
	"summer": {
		Name:       "summer",
		Months:     [3]string{"June", "July", "August"},
		Activities: []string{"balls", "picnics", "visits to Bath", "seaside excursions"},
	},
	"autumn": {
		Name:       "autumn",
		Months:     [3]string{"September", "October", "November"},
		Activities: []string{"harvest festivals", "hunting parties", "assemblies"},
	},
	"winter": {
		Name:       "winter",
		Months:     [3]string{"December", "January", "February"},
		Activities: []string{"Christmas celebrations", "indoor gatherings", "reading parties"},
	},
}

// SeasonFor returns the season table for the given name
// (case-insensitive). Unrecognized names fall back to the spring window
// rather than failing.
func SeasonFor(name string) Season {
	if s, ok := seasons[strings.ToLower(strings.TrimSpace(name))]; ok {
		return s
	}
	return seasons["spring"]
}

// SeasonNames returns the recognized season names in calendar order.
func SeasonNames() []string {
	return []string{"spring", "summer", "autumn", "winter"}
}

// monthOrder maps month display names to calendar positions, used only
// for chronological comparison of dates.
var monthOrder = map[string]int{
	"January": 1, "February": 2, "March": 3, "April": 4,
	"May": 5, "June": 6, "July": 7, "August": 8,
	"September": 9, "October": 10, "November": 11, "December": 12,
}

// monthIndex returns the month's position within the season window, or
// len(s.Months) for months outside it.
func (s Season) monthIndex(name string) int {
	for i, m := range s.Months {
		if m == name {
			return i
		}
	}
	return len(s.Months)
}

// compareDates orders dates by the season window rather than the bare
// calendar, so the winter window runs December, January, February even
// though December holds the highest calendar position. Months outside
// the window sort after it, in plain chronological order.
func (s Season) compareDates(a, b Date) int {
	ai, bi := s.monthIndex(a.Month), s.monthIndex(b.Month)
	if ai != bi {
		return cmp.Compare(ai, bi)
	}
	if ai == len(s.Months) {
		return a.Compare(b)
	}
	return cmp.Compare(a.Day, b.Day)
}
