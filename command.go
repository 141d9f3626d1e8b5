package main

type Command int

const (
	CmdNone Command = iota
	CmdJump
	CmdSearch
)

type CommandInput struct {
	cmd Command
	buf string
}

func CommandFromPrefix(r rune) Command {
	switch r {
	case ':':
		return CmdJump
	case '/':
		return CmdSearch
	default:
		return CmdNone
	}
}

func (m *model) commandBadge(cmd Command) string {
	switch cmd {
	case CmdSearch:
		return "[SEARCH]"
	case CmdJump:
		return "[JUMP]"
	default:
		return "[NORMAL]"
	}
}

func (m *model) commandPrompt(cmd Command) string {
	switch cmd {
	case CmdSearch:
		return "label: "
	case CmdJump:
		return "record: "
	default:
		return ""
	}
}

func (m *model) commandHintsLine(cmd Command) string {
	if cmd == CmdNone {
		return m.idleCommandHintsLine()
	}
	return "enter: apply   esc: cancel"
}

func (m *model) idleCommandHintsLine() string {
	return "? help   o open   p pin   / search   : jump   t window"
}

// activeCommandLine returns the command prompt text for the footer status line.
func (m *model) activeCommandLine() string {
	badge := m.commandBadge(m.ui.command.cmd)
	prompt := m.commandPrompt(m.ui.command.cmd)
	return badge + " " + prompt + m.ui.command.buf
}
