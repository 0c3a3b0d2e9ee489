package tui

// stateChangedMsg is sent when the controller state changed outside of a
// command started by the model, e.g. by the background refresh.
type stateChangedMsg struct{}

type refreshDoneMsg struct {
	err error
}

type submitDoneMsg struct {
	err error
}

type removeDoneMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
