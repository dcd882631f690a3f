// Package speech speaks prompts aloud through an external text-to-speech
// program.
package speech

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"sync"

	"github.com/abhisek/letterz/internal/logger"
)

// ErrNoProgram is returned when a command line names no program.
var ErrNoProgram = errors.New("speech: no program configured")

// Speaker says text aloud. Say must not block on the utterance.
type Speaker interface {
	Say(text string)
}

// Nop is a Speaker that stays silent.
type Nop struct{}

func (Nop) Say(string) {}

// Command speaks by running a program with the text as its last argument.
// A new utterance cancels the one still playing.
type Command struct {
	name string
	args []string
	log  *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewCommand parses cmdline ("say", "espeak -s 120") into a Command.
func NewCommand(cmdline string, l *logger.Logger) (*Command, error) {
	fields := strings.Fields(cmdline)
	if len(fields) == 0 {
		return nil, ErrNoProgram
	}
	return &Command{
		name: fields[0],
		args: fields[1:],
		log:  logger.OrNop(l).With("component", "speech", "program", fields[0]),
	}, nil
}

// New returns a Command for cmdline, or Nop when cmdline is blank.
func New(cmdline string, l *logger.Logger) Speaker {
	c, err := NewCommand(cmdline, l)
	if err != nil {
		return Nop{}
	}
	return c
}

// Say starts speaking text and returns immediately.
func (c *Command) Say(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	c.cancel = cancel
	c.mu.Unlock()

	args := append(append([]string(nil), c.args...), text)
	cmd := exec.CommandContext(ctx, c.name, args...)

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer cancel()
		if err := cmd.Run(); err != nil && ctx.Err() == nil {
			c.log.Warn("speak failed", "error", err)
		}
	}()
}

// Close stops the current utterance and waits for it to exit.
func (c *Command) Close() {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.mu.Unlock()
	c.wg.Wait()
}
