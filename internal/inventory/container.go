package inventory

// SlotClick moves stacks between c and the cursor the way a drag-and-drop
// inventory does: pick up, put down or swap. It returns true if anything
// changed. Clicks outside the grid are ignored.
func (g *Grid) SlotClick(c Cell) bool {
	if !g.Active(c) {
		return false
	}

	inSlot, hasSlot := g.Stack(c)
	cursor, hasCursor := g.Held()

	switch {
	case !hasCursor && !hasSlot:
		return false
	case !hasCursor:
		// Pick up entire stack
		g.SetHeld(inSlot)
		g.ClearStack(c)
	case !hasSlot:
		// Place entire stack into empty slot
		g.SetStack(c, cursor)
		g.ClearHeld()
	default:
		// Swap
		g.SetStack(c, cursor)
		g.SetHeld(inSlot)
	}
	return true
}
