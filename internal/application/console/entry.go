package console

// Level classifies a log entry for display
type Level int

const (
	LevelPlain Level = iota
	LevelInfo
	LevelSuccess
	LevelError
	LevelWarn
)

func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelSuccess:
		return "success"
	case LevelError:
		return "error"
	case LevelWarn:
		return "warn"
	default:
		return "plain"
	}
}

// Entry is one line of console output
type Entry struct {
	Text  string `json:"text"`
	Level Level  `json:"level"`
}

// Welcome is the first line a fresh console shows
const Welcome = "Press / to focus here. Type help to get help."

var helpLines = []string{
	"Available commands:",
	"  a [column] [name] - Add new item",
	"  rm [column] [name] - Remove item",
	"  mv [column] [name] [new_column] - Move item",
	"  rename [column] [name] [new_name] - Rename item",
	"  desc [column] [name] [description] - Update description",
	"  start - Start pomodoro timer",
	"  pause - Pause timer",
	"  skip - Skip current timer session",
	"  reset - Reset timer",
	"  fullreset - Completely reset board to default state",
	"  help - Show this help",
	"",
}
