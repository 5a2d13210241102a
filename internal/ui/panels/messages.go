package panels

// StateUpdatedMsg is sent when the query, the items or the load error of
// the search state changes.
type StateUpdatedMsg struct{}

// ItemsLoadedMsg reports the outcome of a load from the item source.
type ItemsLoadedMsg struct {
	Err error
}

// CloseModalMsg signals that the modal should be closed.
type CloseModalMsg struct{}

// ClearFlashMsg signals the status bar flash should be cleared.
type ClearFlashMsg struct{}

// YankMsg asks the app to copy Text to the clipboard.
type YankMsg struct {
	Text string
}
