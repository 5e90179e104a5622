// SPDX-License-Identifier: MPL-2.0

// Package invoke builds the invocation text for a confirmed script and
// hands it to the injection collaborator that pre-types it at the user's
// next prompt. Injection is a detached one-shot: it is dispatched after a
// short settle delay and never awaited, so its outcome does not affect the
// run's success.
package invoke

import (
	"context"
	"errors"
	"os/exec"
	"time"

	"github.com/charmbracelet/log"

	"scriptpick/pkg/catalog"
)

// DefaultDelay lets the picker's own terminal redraw settle before the
// injector starts typing.
const DefaultDelay = 250 * time.Millisecond

// ErrNoCommand is returned when a CommandInjector is built without a
// command.
var ErrNoCommand = errors.New("injector command is empty")

type (
	// Injector places an invocation, unexecuted, at the user's next
	// command-line prompt. Implementations must not block on the typed
	// text being consumed.
	Injector interface {
		Inject(ctx context.Context, invocation string) error
	}

	// CommandInjector dispatches an external typing tool (by default
	// something like xdotool) with the invocation appended as the final
	// argument. The child is started and immediately released.
	CommandInjector struct {
		command []string
		delay   time.Duration
	}
)

// Build produces the invocation text for a confirmed script: the file
// reference, followed by a single separating space only when the script
// documents at least one real parameter.
func Build(s catalog.Script) string {
	if s.Params.None() {
		return string(s.File)
	}
	return string(s.File) + " "
}

// NewCommandInjector creates a CommandInjector running command with the
// invocation as its last argument. A non-positive delay falls back to
// DefaultDelay.
func NewCommandInjector(command []string, delay time.Duration) (*CommandInjector, error) {
	if len(command) == 0 {
		return nil, ErrNoCommand
	}
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &CommandInjector{command: command, delay: delay}, nil
}

// Inject waits out the settle delay, starts the typing tool detached, and
// returns without waiting for it. Start failures are returned so the
// caller can log them; they are not fatal for the run.
func (c *CommandInjector) Inject(ctx context.Context, invocation string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(c.delay):
	}

	args := make([]string, 0, len(c.command))
	args = append(args, c.command[1:]...)
	args = append(args, invocation)

	cmd := exec.Command(c.command[0], args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	log.Debug("dispatched injector", "command", c.command[0], "invocation", invocation)

	// The process outlives us; release it so exiting does not reap it.
	return cmd.Process.Release()
}
