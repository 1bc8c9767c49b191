// Package petdb binds the pet menu actions to registry operations.
//
// Every action that needs input goes through the prompt package, so bad
// input is reported and asked for again instead of aborting the action.
// An id is checked with Registry.Has before it reaches Update or RemoveByID.
package petdb

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mesh-intelligence/petdb/internal/menu"
	"github.com/mesh-intelligence/petdb/internal/messages"
	"github.com/mesh-intelligence/petdb/internal/prompt"
	"github.com/mesh-intelligence/petdb/internal/registry"
	"github.com/mesh-intelligence/petdb/internal/table"
	"github.com/mesh-intelligence/petdb/pkg/types"
)

// Options tunes a Handler. Zero values fall back to defaults.
type Options struct {
	Sentinel string
	AgeRange types.AgeRange
	Messages *messages.Catalog
}

// Handler runs the pet database menu against a registry.
type Handler struct {
	reg      *registry.Registry
	console  *prompt.Console
	msg      *messages.Catalog
	limits   types.AgeRange
	sentinel string
	table    *table.Indexed[*types.Pet]
	menu     *menu.Menu
	logger   *slog.Logger
}

// New builds the menu for reg, reading and writing through console.
func New(reg *registry.Registry, console *prompt.Console, opts Options) (*Handler, error) {
	if opts.Messages == nil {
		opts.Messages = messages.Default()
	}
	if opts.Sentinel == "" {
		opts.Sentinel = types.DefaultSentinel
	}
	if opts.AgeRange == (types.AgeRange{}) {
		opts.AgeRange = types.DefaultAgeRange()
	}
	if err := opts.AgeRange.Validate(); err != nil {
		return nil, err
	}

	h := &Handler{
		reg:      reg,
		console:  console,
		msg:      opts.Messages,
		limits:   opts.AgeRange,
		sentinel: opts.Sentinel,
		logger:   slog.Default().With("component", "petdb"),
	}

	h.table = table.NewIndexed(
		func(p *types.Pet) table.Row { return table.Row{p.Name(), fmt.Sprint(p.Age())} },
		table.Column{Header: h.msg.Get("table.id"), MinWidth: 3, Align: table.AlignRight},
		table.Column{Header: h.msg.Get("table.name"), MinWidth: 10, Align: table.AlignLeft},
		table.Column{Header: h.msg.Get("table.age"), MinWidth: 3, Align: table.AlignRight},
	)
	h.table.SetFooter(h.msg.Get("table.footer"))

	m, err := menu.New(menu.Config{
		Welcome:       h.msg.Get("menu.title"),
		Delimiter:     h.msg.Get("menu.delimiter"),
		Prompt:        h.msg.Get("menu.prompt"),
		InvalidChoice: func(raw string) string { return h.msg.Get("menu.invalid_choice", raw) },
		Items: []menu.Item{
			{Label: h.msg.Get("menu.view"), Action: h.ViewPets},
			{Label: h.msg.Get("menu.add"), Action: h.AddPets},
			{Label: h.msg.Get("menu.update"), Action: h.UpdatePet},
			{Label: h.msg.Get("menu.remove"), Action: h.RemovePet},
			{Label: h.msg.Get("menu.search_name"), Action: h.SearchByName},
			{Label: h.msg.Get("menu.search_age"), Action: h.SearchByAge},
			{Label: h.msg.Get("menu.exit"), Action: h.Exit},
		},
	}, console)
	if err != nil {
		return nil, err
	}
	h.menu = m
	return h, nil
}

// Run shows the menu until the user exits or input ends.
func (h *Handler) Run() error {
	return h.menu.Run()
}

// State reports the menu loop state.
func (h *Handler) State() menu.State { return h.menu.State() }

// ViewPets prints every pet.
func (h *Handler) ViewPets() error {
	return h.view(nil)
}

// view prints the pets accepted by keep, labelled with their current ids.
func (h *Handler) view(keep func(*types.Pet) bool) error {
	matches := h.reg.Filter(keep)
	entries := make([]table.Entry[*types.Pet], len(matches))
	for i, m := range matches {
		entries[i] = table.Entry[*types.Pet]{ID: m.ID, Value: m.Pet}
	}
	return h.table.Render(h.console.Out(), entries)
}

// AddPets reads "name age" lines until the sentinel, then adds them in
// order. Adding stops at the first pet that does not fit.
func (h *Handler) AddPets() error {
	if limit, bounded := h.reg.MaxSize(); bounded && h.reg.Len() >= limit {
		h.console.Println(h.msg.Get("add.already_full", limit))
		h.console.Println(h.msg.Get("add.done", 0))
		return nil
	}

	h.console.Println(h.msg.Get("add.intro", h.sentinel))
	pets, readErr := prompt.RequestValidInputs(
		h.console,
		h.msg.Get("add.prompt"),
		func(raw string) {
			h.console.Println(h.msg.Get("add.parse_error", raw, h.limits.Min, h.limits.Max))
		},
		prompt.ParsePet(h.limits),
		h.sentinel,
	)

	added := 0
	for i, p := range pets {
		if _, err := h.reg.Add(p); err != nil {
			if !errors.Is(err, types.ErrCapacity) {
				return err
			}
			limit, _ := h.reg.MaxSize()
			h.console.Println(h.msg.Get("add.full", limit, len(pets)-i))
			break
		}
		added++
	}
	h.logger.Debug("pets added", "added", added, "entered", len(pets))
	h.console.Println(h.msg.Get("add.done", added))
	return readErr
}

// requestID asks for the id of an existing pet.
func (h *Handler) requestID(verb string) (int, error) {
	return prompt.RequestValidInput(
		h.console,
		h.msg.Get("id.prompt", verb),
		func(raw string) { h.console.Println(h.msg.Get("id.parse_error", raw)) },
		prompt.ParseInt,
		prompt.NewRule(h.reg.Has, func(id int) { h.console.Println(h.msg.Get("id.not_found", id)) }),
	)
}

// UpdatePet asks for an id and a replacement "name age".
func (h *Handler) UpdatePet() error {
	if h.reg.Len() == 0 {
		h.console.Println(h.msg.Get("empty"))
		return nil
	}
	if err := h.ViewPets(); err != nil {
		return err
	}
	id, err := h.requestID(h.msg.Get("update.verb"))
	if err != nil {
		return err
	}
	repl, err := prompt.RequestValidInput(
		h.console,
		h.msg.Get("update.prompt"),
		func(raw string) {
			h.console.Println(h.msg.Get("update.parse_error", raw, h.limits.Min, h.limits.Max))
		},
		prompt.ParsePet(h.limits),
	)
	if err != nil {
		return err
	}

	pet, err := h.reg.ByID(id)
	if err != nil {
		return err
	}
	oldName, oldAge := pet.Name(), pet.Age()
	if err := h.reg.Update(id, repl.Name(), repl.Age()); err != nil {
		return err
	}
	h.console.Println(h.msg.Get("update.done", oldName, oldAge, pet.Name(), pet.Age()))
	return nil
}

// RemovePet asks for an id and removes that pet.
func (h *Handler) RemovePet() error {
	if h.reg.Len() == 0 {
		h.console.Println(h.msg.Get("empty"))
		return nil
	}
	if err := h.ViewPets(); err != nil {
		return err
	}
	id, err := h.requestID(h.msg.Get("remove.verb"))
	if err != nil {
		return err
	}
	pet, err := h.reg.RemoveByID(id)
	if err != nil {
		return err
	}
	h.console.Println(h.msg.Get("remove.done", pet.Name(), pet.Age()))
	return nil
}

// SearchByName prints pets whose name matches the input, ignoring case.
func (h *Handler) SearchByName() error {
	raw, err := h.console.ReadLine(h.msg.Get("search.name_prompt"))
	if err != nil {
		return err
	}
	return h.view(registry.NameMatcher(strings.TrimSpace(raw), registry.MatchFold))
}

// SearchByAge prints pets of the requested age.
func (h *Handler) SearchByAge() error {
	age, err := prompt.RequestValidInput(
		h.console,
		h.msg.Get("search.age_prompt"),
		func(raw string) { h.console.Println(h.msg.Get("search.age_parse_error", raw)) },
		prompt.ParseInt,
		prompt.NewRule(
			func(n int) bool { return n >= 0 },
			func(int) { h.console.Println(h.msg.Get("search.age_negative")) },
		),
	)
	if err != nil {
		return err
	}
	return h.view(func(p *types.Pet) bool { return p.Age() == age })
}

// Exit says goodbye and stops the menu.
func (h *Handler) Exit() error {
	h.console.Println(h.msg.Get("goodbye"))
	return menu.ErrExit
}
