// Package mailer asks for a recipient and hands the course archive to an
// external mail client.
package mailer

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// PromptText is printed before reading the recipient.
const PromptText = "Enter the recipient's email address: "

// Prompt writes PromptText to w and reads one line from r. The trailing
// newline is removed; the address is not validated.
func Prompt(r io.Reader, w io.Writer) (string, error) {
	if _, err := io.WriteString(w, PromptText); err != nil {
		return "", err
	}
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read recipient: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Sender delivers attachment to one recipient.
type Sender interface {
	Send(ctx context.Context, to, attachment string) error
}

// CommandSender sends mail through a mutt-compatible client:
//
//	<Command> -s <Subject> -a <attachment> -- <to>
//
// The message body is empty.
type CommandSender struct {
	Command string
	Subject string
}

// Args returns the argv passed to Command.
func (s CommandSender) Args(to, attachment string) []string {
	return []string{"-s", s.Subject, "-a", attachment, "--", to}
}

func (s CommandSender) Send(ctx context.Context, to, attachment string) error {
	if s.Command == "" {
		return errors.New("mailer: no mail command")
	}
	cmd := exec.CommandContext(ctx, s.Command, s.Args(to, attachment)...)
	cmd.Stdin = strings.NewReader("")
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(out.String()); msg != "" {
			return fmt.Errorf("%s: %w: %s", s.Command, err, msg)
		}
		return fmt.Errorf("%s: %w", s.Command, err)
	}
	return nil
}
