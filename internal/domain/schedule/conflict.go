package schedule

// Conflicts reports whether block overlaps any of the given intervals.
// Overlap is half-open: a block ending exactly when an interval starts (or
// starting exactly when one ends) does not conflict, so back-to-back shifts
// are allowed.
func Conflicts(block TimeBlock, busy []Interval) bool {
	for _, iv := range busy {
		if block.Start < iv.End && block.End > iv.Start {
			return true
		}
	}
	return false
}

// BlocksOverlap reports whether any block in a and any block in b fall on
// the same weekday and overlap. Symmetric in its arguments. Block counts are
// tiny (at most seven per job), so the quadratic scan is fine.
func BlocksOverlap(a, b []TimeBlock) bool {
	for _, ba := range a {
		for _, bb := range b {
			if ba.Day != bb.Day {
				continue
			}
			if ba.Start < bb.End && ba.End > bb.Start {
				return true
			}
		}
	}
	return false
}
