// Package pager tracks how much of a match set has been materialized
// into the visible list.
package pager

// Range is a half-open slice interval [Start, End) into the match set.
type Range struct {
	Start int
	End   int
}

// Empty reports whether the range covers nothing.
func (r Range) Empty() bool {
	return r.Start >= r.End
}

// Len returns the number of items in the range.
func (r Range) Len() int {
	if r.Empty() {
		return 0
	}
	return r.End - r.Start
}

// Cursor paginates over a match set of a known length. After Reset the
// cursor is empty: nothing is shown until the first Advance. Shown count
// only ever grows between resets.
type Cursor struct {
	pageSize int
	shown    int
	total    int
}

// New creates a Cursor with the given page size. Non-positive sizes are
// clamped to 1 so Advance always makes progress.
func New(pageSize int) Cursor {
	if pageSize < 1 {
		pageSize = 1
	}
	return Cursor{pageSize: pageSize}
}

// PageSize returns the fixed page size.
func (c Cursor) PageSize() int {
	return c.pageSize
}

// Shown returns how many items have been materialized so far.
func (c Cursor) Shown() int {
	return c.shown
}

// Reset points the cursor at a new match set of length total and clears
// the shown count. Callers wanting page 1 rendered immediately follow
// with one Advance.
func (c *Cursor) Reset(total int) {
	if total < 0 {
		total = 0
	}
	c.total = total
	c.shown = 0
}

// Advance returns the next page as a range into the match set and marks
// it shown. Past the end it returns an empty range: no error, and the
// shown count does not move.
func (c *Cursor) Advance() Range {
	if c.shown >= c.total {
		return Range{Start: c.shown, End: c.shown}
	}
	end := c.shown + c.pageSize
	if end > c.total {
		end = c.total
	}
	r := Range{Start: c.shown, End: end}
	c.shown = end
	return r
}

// Remaining returns how many matched items are not yet shown.
func (c Cursor) Remaining() int {
	if c.shown >= c.total {
		return 0
	}
	return c.total - c.shown
}

// HasMore reports whether another Advance would yield items.
func (c Cursor) HasMore() bool {
	return c.Remaining() > 0
}
