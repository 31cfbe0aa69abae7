package tui

type logMsg struct {
	message string
}

type copyResultMsg struct {
	message string
	err     error
}
