package ui

// Popup names
const (
	popupHelp    = "help"
	popupHistory = "history"
)

// PopupCloser hides one popup on the model
type PopupCloser func(*Model)

// PopupStack tracks open popups so escape closes the topmost one first
type PopupStack struct {
	closers []PopupCloser
	names   []string
}

// NewPopupStack creates an empty stack
func NewPopupStack() *PopupStack {
	return &PopupStack{}
}

// Push records an opened popup. Pushing a name already on the stack moves it
// to the top.
func (s *PopupStack) Push(name string, closer PopupCloser) {
	s.remove(name)
	s.closers = append(s.closers, closer)
	s.names = append(s.names, name)
}

// CloseTop closes the topmost popup. It reports false if none was open.
func (s *PopupStack) CloseTop(m *Model) bool {
	n := len(s.closers)
	if n == 0 {
		return false
	}
	closer := s.closers[n-1]
	s.closers = s.closers[:n-1]
	s.names = s.names[:n-1]
	closer(m)
	return true
}

// IsEmpty returns true if no popups are open
func (s *PopupStack) IsEmpty() bool {
	return len(s.closers) == 0
}

// Len returns the number of open popups
func (s *PopupStack) Len() int {
	return len(s.closers)
}

// TopName returns the name of the topmost popup
func (s *PopupStack) TopName() string {
	if len(s.names) == 0 {
		return ""
	}
	return s.names[len(s.names)-1]
}

func (s *PopupStack) remove(name string) {
	for i, n := range s.names {
		if n == name {
			s.closers = append(s.closers[:i], s.closers[i+1:]...)
			s.names = append(s.names[:i], s.names[i+1:]...)
			return
		}
	}
}
