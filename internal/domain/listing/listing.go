// Package listing holds the in-memory filter and aggregation helpers shared
// by the order, bill and photo listings. Records are filtered by assignee
// and by local calendar day; counting buckets by assignee name as a literal
// string key, so two engineers with the same name share a bucket (accepted
// data-quality tradeoff, not deduplicated here).
package listing

import "time"

// AllBucket is the synthetic aggregation key holding the unfiltered total.
const AllBucket = "All Service Engineers"

// Filter is an optional (assignee, calendar day) predicate pair. A zero
// value matches everything.
type Filter struct {
	Assignee string
	Day      time.Time
}

func (f Filter) hasDay() bool {
	return !f.Day.IsZero()
}

// SameLocalDay reports whether a and b fall on the same calendar day in
// local time. Zero times never match.
func SameLocalDay(a, b time.Time) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

// Matches applies the filter to a single record.
func (f Filter) Matches(assignee string, day time.Time) bool {
	if f.Assignee != "" && assignee != f.Assignee {
		return false
	}
	if f.hasDay() && !SameLocalDay(day, f.Day) {
		return false
	}
	return true
}

// Apply returns the subset of items matching the filter. Omitting either
// predicate leaves that dimension unconstrained. The input order is kept.
func Apply[T any](items []T, f Filter, assignee func(T) string, day func(T) time.Time) []T {
	if f.Assignee == "" && !f.hasDay() {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if f.Matches(assignee(it), day(it)) {
			out = append(out, it)
		}
	}
	return out
}

// CountByAssignee counts unfiltered items per assignee name and adds the
// synthetic AllBucket with the grand total. Names given in known are always
// present in the result, at zero if nothing matched them.
func CountByAssignee[T any](items []T, known []string, assignee func(T) string) map[string]int {
	counts := map[string]int{AllBucket: len(items)}
	for _, name := range known {
		counts[name] = 0
	}
	for _, it := range items {
		name := assignee(it)
		if name == "" {
			continue
		}
		counts[name]++
	}
	return counts
}
