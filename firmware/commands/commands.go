package commands

import (
	"github.com/quadsim/quadsim"
)

type Command struct {
	Flag        byte
	Run         func(Controller)
	Description string
}

// Controller is the virtual encoder bench the commands act on
type Controller interface {
	Forward()
	Reverse()
	SetEdgeMode(quadsim.EdgeMode)
	SetPrescale(uint32)
	Faster()
	Slower()
	Debug()

	// I/O
	ReadByte() (byte, error)
}

var (
	ForwardCommand = &Command{
		Flag: 'F',
		Run: func(c Controller) {
			c.Forward()
		},
		Description: "Rotate the virtual encoder forward.",
	}
	ReverseCommand = &Command{
		Flag: 'R',
		Run: func(c Controller) {
			c.Reverse()
		},
		Description: "Rotate the virtual encoder in reverse.",
	}
	EdgeModeBCommand = &Command{
		Flag: '1',
		Run: func(c Controller) {
			c.SetEdgeMode(quadsim.EdgeModeB)
		},
		Description: "Timer counts channel B edges only.",
	}
	EdgeModeACommand = &Command{
		Flag: '2',
		Run: func(c Controller) {
			c.SetEdgeMode(quadsim.EdgeModeA)
		},
		Description: "Timer counts channel A edges only.",
	}
	EdgeModeBothCommand = &Command{
		Flag: '3',
		Run: func(c Controller) {
			c.SetEdgeMode(quadsim.EdgeModeBoth)
		},
		Description: "Timer counts edges on both channels (default).",
	}
	PrescaleOnCommand = &Command{
		Flag: '4',
		Run: func(c Controller) {
			c.SetPrescale(4)
		},
		Description: "Set the timer prescale factor to 4.",
	}
	PrescaleOffCommand = &Command{
		Flag: '0',
		Run: func(c Controller) {
			c.SetPrescale(1)
		},
		Description: "Set the timer prescale factor to 1.",
	}
	SlowerCommand = &Command{
		Flag: '-',
		Run: func(c Controller) {
			c.Slower()
		},
		Description: "Lengthen the pulse period by 50ms (slow down).",
	}
	FasterCommand = &Command{
		Flag: '+',
		Run: func(c Controller) {
			c.Faster()
		},
		Description: "Shorten the pulse period by 50ms, floored at 50ms (speed up).",
	}
	DebugCommand = &Command{
		Flag: 'D',
		Run: func(c Controller) {
			c.Debug()
		},
		Description: "Print the current bench state.",
	}
	HelpCommand = &Command{
		Flag:        'H',
		Description: "Show all available commands and their descriptions.",
		Run: func(c Controller) {
			println("Available Commands:")
			for _, cmd := range commands {
				println(string(cmd.Flag) + ": " + cmd.Description)
			}
		},
	}
)

var commands = []*Command{
	ForwardCommand,
	ReverseCommand,
	EdgeModeBCommand,
	EdgeModeACommand,
	EdgeModeBothCommand,
	PrescaleOnCommand,
	PrescaleOffCommand,
	SlowerCommand,
	FasterCommand,
	DebugCommand,
}

var cmdMap = map[byte]*Command{}

func init() {
	cmdMap[HelpCommand.Flag] = HelpCommand
	for _, cmd := range commands {
		cmdMap[cmd.Flag] = cmd
	}
}

// Poll reads at most one byte from the Controller and dispatches it.
// A read error means no input is pending; unrecognized bytes are dropped.
// Neither is reported, and queued input drains one byte per call.
func Poll(c Controller) {
	b, err := c.ReadByte()
	if err != nil {
		return
	}

	cmd, ok := cmdMap[b]
	if !ok {
		return
	}

	cmd.Run(c)
}
