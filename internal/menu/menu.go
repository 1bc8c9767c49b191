// Package menu runs a numbered console menu.
//
// A Menu prints its welcome banner once, then repeatedly lists its items,
// reads a 1-based choice and runs the bound Action. Bad choices are reported
// and the list is shown again. The loop ends when an Action returns ErrExit
// or the input runs out.
package menu

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/petdb/internal/prompt"
)

// ErrExit is returned by an Action to stop the menu.
var ErrExit = errors.New("exit menu")

// ErrNoItems is returned by New when the menu has nothing to offer.
var ErrNoItems = errors.New("menu has no items")

// Action is the work bound to a menu item.
type Action func() error

// Exit is an Action that stops the menu.
func Exit() error { return ErrExit }

// Item is one numbered entry.
type Item struct {
	Label  string
	Action Action
}

// Formatter renders one item line, including its trailing newline.
type Formatter func(index int, delimiter, label string) string

// DefaultFormat renders "1) View all pets".
func DefaultFormat(index int, delimiter, label string) string {
	return fmt.Sprintf("%d%s %s\n", index, delimiter, label)
}

// DefaultInvalidChoice reports raw as not a valid choice.
func DefaultInvalidChoice(raw string) string {
	return fmt.Sprintf("%q is not a valid choice.", raw)
}

// Config describes a menu. InvalidChoice renders the message for a line that
// is not a valid choice.
type Config struct {
	Welcome       string
	Delimiter     string
	Prompt        string
	InvalidChoice func(raw string) string
	Items         []Item
	Format        Formatter
}

// State is a stage of the menu loop.
type State int

const (
	StateIdle State = iota
	StateAwaitingChoice
	StateDispatching
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingChoice:
		return "awaiting-choice"
	case StateDispatching:
		return "dispatching"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Menu is a configured, runnable menu.
type Menu struct {
	cfg     Config
	console *prompt.Console
	state   State
	logger  *slog.Logger
}

// New validates cfg and returns a Menu reading from console.
func New(cfg Config, console *prompt.Console) (*Menu, error) {
	if len(cfg.Items) == 0 {
		return nil, ErrNoItems
	}
	for i, it := range cfg.Items {
		if it.Action == nil {
			return nil, fmt.Errorf("menu item %d (%q) has no action", i+1, it.Label)
		}
	}
	if cfg.Format == nil {
		cfg.Format = DefaultFormat
	}
	if cfg.InvalidChoice == nil {
		cfg.InvalidChoice = DefaultInvalidChoice
	}
	return &Menu{
		cfg:     cfg,
		console: console,
		state:   StateIdle,
		logger:  slog.Default().With("component", "menu"),
	}, nil
}

// State returns where the loop currently is.
func (m *Menu) State() State { return m.state }

// Run drives the menu until an Action returns ErrExit or input ends. Errors
// from other actions are reported and the menu carries on. Run returns a
// non-nil error only when reading input fails.
func (m *Menu) Run() error {
	if m.state == StateIdle && m.cfg.Welcome != "" {
		m.console.Println(m.cfg.Welcome)
	}
	for {
		m.state = StateAwaitingChoice
		m.render()

		raw, err := m.console.ReadLine(m.cfg.Prompt)
		if err != nil {
			m.state = StateTerminated
			if errors.Is(err, io.EOF) {
				m.logger.Debug("input closed, leaving menu")
				return nil
			}
			return err
		}

		idx, ok := m.choice(raw)
		if !ok {
			m.console.Println(m.cfg.InvalidChoice(raw))
			continue
		}

		item := m.cfg.Items[idx]
		m.state = StateDispatching
		m.logger.Debug("dispatching", "choice", idx+1, "label", item.Label)
		if err := item.Action(); err != nil {
			if errors.Is(err, ErrExit) || errors.Is(err, io.EOF) {
				m.state = StateTerminated
				return nil
			}
			m.logger.Warn("menu action failed", "label", item.Label, "error", err)
			m.console.Println(err.Error())
		}
	}
}

func (m *Menu) render() {
	var b strings.Builder
	for i, it := range m.cfg.Items {
		b.WriteString(m.cfg.Format(i+1, m.cfg.Delimiter, it.Label))
	}
	m.console.Print(b.String())
}

// choice converts a 1-based input into an item index.
func (m *Menu) choice(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 || n > len(m.cfg.Items) {
		return 0, false
	}
	return n - 1, true
}
