package views

import "kanbodoro/internal/domain"

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// View switching messages
type (
	SwitchToBoardMsg struct{}
	SwitchToHelpMsg  struct{}
	SwitchToStatsMsg struct{}
	SwitchToAddMsg   struct{ Column domain.Column }
	FocusConsoleMsg  struct{}
)

// StatusMsg sets the status line
type StatusMsg struct {
	Text string
	Err  bool
}

// BoardChangedMsg asks every view to re-read the board
type BoardChangedMsg struct{}

// EditDescriptionMsg asks the app to open the item's description in $EDITOR
type EditDescriptionMsg struct {
	Item domain.Item
}

// ResetAnswerMsg carries the answer to the full reset prompt
type ResetAnswerMsg struct {
	Yes bool
}
