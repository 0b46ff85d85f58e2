package model

import (
	"sort"
	"time"
)

// Availability maps a weekday name to the advisor's open time labels for that
// day. Labels are stored sorted and deduplicated; an unset day is simply
// absent from the map.
type Availability map[string][]string

type Advisor struct {
	ID           string       `json:"id"`
	FirstName    string       `json:"first_name"`
	LastName     string       `json:"last_name"`
	Availability Availability `json:"availability"`
	CreatedAt    time.Time    `json:"created_at"`
}

func (a *Advisor) FullName() string {
	return a.FirstName + " " + a.LastName
}

// Normalize returns a copy with sorted, deduplicated time labels and empty
// days dropped.
func (av Availability) Normalize() Availability {
	out := make(Availability, len(av))
	for day, slots := range av {
		if len(slots) == 0 {
			continue
		}
		seen := make(map[string]struct{}, len(slots))
		uniq := make([]string, 0, len(slots))
		for _, s := range slots {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			uniq = append(uniq, s)
		}
		sort.Strings(uniq)
		out[day] = uniq
	}
	return out
}

// HasSlot reports whether the given weekday has the given time label open.
func (av Availability) HasSlot(day, timeLabel string) bool {
	for _, s := range av[day] {
		if s == timeLabel {
			return true
		}
	}
	return false
}
