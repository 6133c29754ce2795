// internal/ui/model_types.go
// Type definitions for the UI layer
package ui

// zoneAction is what a click inside a dialog zone does
type zoneAction int

const (
	zoneNone zoneAction = iota
	zoneClose
	zoneClear
	zoneFeedback
)

// zone is a clickable span on one dialog line
type zone struct {
	line   int
	x0, x1 int // [x0, x1) in dialog-content columns
	action zoneAction
}

// dialogLayout is the rendered dialog plus everything mouse handling needs
// to map screen cells back onto it.
type dialogLayout struct {
	box  string
	x, y int // top-left of box on screen
	w, h int

	// content line -> flattened hit index, -1 for non-hit lines
	hitAt []int
	zones []zone
}

// contentOrigin is where content line 0, column 0 sits on screen
func (l dialogLayout) contentOrigin() (int, int) {
	// border + horizontal padding
	return l.x + 2, l.y + 1
}

// contains reports whether the screen cell is inside the box
func (l dialogLayout) contains(x, y int) bool {
	return x >= l.x && x < l.x+l.w && y >= l.y && y < l.y+l.h
}

// hitAtCell returns the flattened hit index under a screen cell, or -1
func (l dialogLayout) hitAtCell(x, y int) int {
	if !l.contains(x, y) {
		return -1
	}
	_, cy := l.contentOrigin()
	line := y - cy
	if line < 0 || line >= len(l.hitAt) {
		return -1
	}
	return l.hitAt[line]
}

// zoneAtCell returns the action of the zone under a screen cell
func (l dialogLayout) zoneAtCell(x, y int) zoneAction {
	cx, cy := l.contentOrigin()
	for _, z := range l.zones {
		if y-cy == z.line && x-cx >= z.x0 && x-cx < z.x1 {
			return z.action
		}
	}
	return zoneNone
}
