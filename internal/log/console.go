package log

import (
	"fmt"
	"io"
	"os"
)

const (
	colorRed    = 1
	colorGreen  = 2
	colorYellow = 3
)

// Console prints ANSI colored user-facing messages.
// Errors go to Err, everything else to Out.
type Console struct {
	Out   io.Writer
	Err   io.Writer
	Color bool
}

// NewConsole returns a colored console on stdout/stderr.
func NewConsole() *Console {
	return &Console{Out: os.Stdout, Err: os.Stderr, Color: true}
}

func (c *Console) Error(format string, args ...any) {
	c.write(c.Err, colorRed, "Error", fmt.Sprintf(format, args...))
}

func (c *Console) Warning(format string, args ...any) {
	c.write(c.Out, colorYellow, "Warning", fmt.Sprintf(format, args...))
}

func (c *Console) Debug(format string, args ...any) {
	c.write(c.Out, colorGreen, "Debug", fmt.Sprintf(format, args...))
}

func (c *Console) write(w io.Writer, color int, tag, msg string) {
	if w == nil {
		return
	}
	if !c.Color {
		fmt.Fprintf(w, " [%s] %s\n", tag, msg)
		return
	}
	fmt.Fprintf(w, "\033[%dm [%s] %s\033[m\n", 30+color, tag, msg)
}
