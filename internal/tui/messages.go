package tui

// navigateMsg switches the active page of the login flow.
type navigateMsg struct {
	page page
}

type authResultMsg struct {
	email    string
	register bool
	err      error
}

// dataChangedMsg asks for a repaint after the runtime changed some data.
type dataChangedMsg struct{}

type startedMsg struct {
	err error
}

type actionDoneMsg struct {
	status string
	err    error
}

type clearStatusMsg struct {
	seq int
}
