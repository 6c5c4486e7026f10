package menu

// MainMenuAction represents the action type for main menu items.
type MainMenuAction int

const (
	MainMenuActionStart MainMenuAction = iota
	MainMenuActionQuit
)

// MainMenuItem represents a menu item in the main menu.
type MainMenuItem struct {
	Label  string
	Action MainMenuAction
}

// GetLabel returns the display label for this menu item.
func (m *MainMenuItem) GetLabel() string {
	return m.Label
}

// IsSelectable returns whether this item can be selected.
func (m *MainMenuItem) IsSelectable() bool {
	return true
}

// GetHelpText returns help text for this menu item.
func (m *MainMenuItem) GetHelpText() string {
	switch m.Action {
	case MainMenuActionStart:
		return "MENU_START_HELP"
	case MainMenuActionQuit:
		return "MENU_QUIT_HELP"
	default:
		return ""
	}
}

// NewMainMenu returns the title screen menu.
func NewMainMenu() *Menu {
	return New("TITLE", []MenuItem{
		&MainMenuItem{Label: "MENU_START", Action: MainMenuActionStart},
		&MainMenuItem{Label: "MENU_QUIT", Action: MainMenuActionQuit},
	})
}

// MainAction returns the main menu action of item, if it is a main menu item.
func MainAction(item MenuItem) (MainMenuAction, bool) {
	if mi, ok := item.(*MainMenuItem); ok {
		return mi.Action, true
	}
	return 0, false
}
