package ui

import "github.com/justinpbarnett/dogsearch/internal/ui/panels"

// Aliases so the app and the panels share one definition of each message.

// StateUpdatedMsg is sent when the search state changes.
type StateUpdatedMsg = panels.StateUpdatedMsg

// ItemsLoadedMsg reports the outcome of a load.
type ItemsLoadedMsg = panels.ItemsLoadedMsg

// CloseModalMsg signals that the modal should be closed.
type CloseModalMsg = panels.CloseModalMsg

// ClearFlashMsg signals the status bar flash should be cleared.
type ClearFlashMsg = panels.ClearFlashMsg

// YankMsg asks the app to copy text to the clipboard.
type YankMsg = panels.YankMsg
