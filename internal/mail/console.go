package mail

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// ConsoleSender prints envelopes instead of transmitting them. It backs
// dry mode.
type ConsoleSender struct {
	Out io.Writer
}

func NewConsoleSender(out io.Writer) *ConsoleSender {
	return &ConsoleSender{Out: out}
}

// Send writes the envelope to Out with each message line prefixed by "| ".
func (s *ConsoleSender) Send(_ context.Context, env Envelope) error {
	fmt.Fprintf(s.Out, "from: %s\n", env.From)
	fmt.Fprintf(s.Out, "recipients: %s\n", strings.Join(env.Recipients, ", "))
	for _, line := range strings.Split(strings.TrimRight(env.Message, "\n"), "\n") {
		fmt.Fprintf(s.Out, "| %s\n", line)
	}
	return nil
}
