package clock

import "time"

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock and reports it in a fixed location, which
// defines where calendar days start and end.
type System struct {
	loc *time.Location
}

// NewSystem returns a wall clock bound to loc. A nil loc means UTC.
func NewSystem(loc *time.Location) *System {
	if loc == nil {
		loc = time.UTC
	}
	return &System{loc: loc}
}

// Now returns the current time in the clock's location.
func (c *System) Now() time.Time {
	return time.Now().In(c.loc)
}

// Location returns the location calendar days are computed in.
func (c *System) Location() *time.Location {
	return c.loc
}

// DaysBetween counts calendar date changes from earlier to later, both viewed
// in later's location. Time of day is irrelevant: 23:59 to 00:01 is one day
// while 00:01 to 23:59 of the same date is zero. A later that precedes
// earlier yields zero.
func DaysBetween(earlier, later time.Time) int {
	loc := later.Location()
	from := dateOf(earlier.In(loc))
	to := dateOf(later)
	if !to.After(from) {
		return 0
	}
	return int(to.Sub(from).Hours()/24 + 0.5)
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
