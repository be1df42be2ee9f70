package render

// MenuState is the mobile drawer state owned by the navigation.
type MenuState int

const (
	MenuClosed MenuState = iota
	MenuOpen
)

func (s MenuState) String() string {
	if s == MenuOpen {
		return "open"
	}
	return "closed"
}

// Menu is the two-state drawer machine: closed -toggle-> open
// -toggle|close-> closed. The zero value is closed.
type Menu struct {
	state MenuState
}

func (m *Menu) Toggle() {
	if m.state == MenuOpen {
		m.state = MenuClosed
		return
	}
	m.state = MenuOpen
}

func (m *Menu) Close() {
	m.state = MenuClosed
}

func (m *Menu) State() MenuState {
	return m.state
}

func (m *Menu) Open() bool {
	return m.state == MenuOpen
}
