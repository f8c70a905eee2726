package game

import "fmt"

// Command is one player action. The set is closed; frontends translate key
// presses into Commands and the session dispatches them in one exhaustive
// switch.
type Command int

const (
	CmdMoveLeft Command = iota
	CmdMoveRight
	CmdDrop
	CmdQuit
)

func (c Command) String() string {
	switch c {
	case CmdMoveLeft:
		return "move-left"
	case CmdMoveRight:
		return "move-right"
	case CmdDrop:
		return "drop"
	case CmdQuit:
		return "quit"
	default:
		return fmt.Sprintf("command(%d)", int(c))
	}
}

// Apply dispatches cmd against the session. Drop is applied at the cursor
// column and reports its DropResult; the movement commands return a zero
// result. CmdQuit mutates nothing: ending the process belongs to the
// frontend's loop.
func (s *Session) Apply(cmd Command) (DropResult, error) {
	switch cmd {
	case CmdMoveLeft:
		s.MoveLeft()
		return DropResult{}, nil
	case CmdMoveRight:
		s.MoveRight()
		return DropResult{}, nil
	case CmdDrop:
		return s.Drop(s.cursor)
	case CmdQuit:
		return DropResult{}, nil
	default:
		return DropResult{}, fmt.Errorf("unknown command %v", cmd)
	}
}
