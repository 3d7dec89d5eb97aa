package engine

import (
	"bytes"
	_ "embed"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"text/template"

	"github.com/google/uuid"

	"github.com/tatianab/no-escape/internal/models"
	"github.com/tatianab/no-escape/internal/player"
	"github.com/tatianab/no-escape/internal/world"
)

//go:embed templates/state.txt
var stateTemplate string

var stateTmpl = template.Must(template.New("state").
	Funcs(template.FuncMap{"join": strings.Join}).
	Parse(stateTemplate))

const HelpText = "Commands:\n" +
	"  go [direction] (n, s, e, or w)\n" +
	"  get [item]\n" +
	"  use [item] (only for certain items)\n" +
	"  help (displays this list)"

const (
	MsgInvalidInput = "Invalid input"
	MsgNoSuchRoom   = "That room does not exist"
	MsgNotANumber   = "Not a number"
)

// State is what the UI draws after every turn.
type State struct {
	Room      string
	Item      string
	Inventory []string // sorted
}

// Game is one level being played: the level's map and the player walking
// it. It is not safe for concurrent use; the UI resolves one turn at a time.
type Game struct {
	ID     uuid.UUID
	Player *player.Player
	Map    *world.Map

	debug  bool
	logger *slog.Logger
}

type Option func(*Game)

// WithLogger sets the logger turns are recorded to.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// WithDebugCommands enables or disables give, tp and durset.
func WithDebugCommands(enabled bool) Option {
	return func(g *Game) {
		g.debug = enabled
	}
}

func NewGame(p *player.Player, m *world.Map, opts ...Option) *Game {
	g := &Game{
		ID:     uuid.New(),
		Player: p,
		Map:    m,
		debug:  true,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.logger = g.logger.With("game_id", g.ID.String())
	return g
}

// StartLevel builds a game on a fresh copy of level's rooms. The carried
// player is kept when the level inherits the inventory; otherwise the
// player starts empty-handed.
func StartLevel(level *models.Level, carried *player.Player, opts ...Option) (*Game, error) {
	m, err := world.New(level.Rooms(), level.Start)
	if err != nil {
		return nil, fmt.Errorf("start %s: %w", level.File, err)
	}

	p := carried
	if !level.CarryInventory || p == nil {
		p = player.New()
	}

	g := NewGame(p, m, opts...)
	g.logger.Info("level started",
		"level", level.Title,
		"room", level.Start,
		"carried", level.CarryInventory && carried != nil,
	)
	return g, nil
}

// State returns a snapshot of what the player sees.
func (g *Game) State() State {
	return State{
		Room:      g.Map.CurrentName(),
		Item:      g.Map.Current().Item,
		Inventory: g.Player.Sorted(),
	}
}

func (g *Game) String() string {
	var buf bytes.Buffer
	if err := stateTmpl.Execute(&buf, g.State()); err != nil {
		return fmt.Sprintf("You are in the %s\n", g.Map.CurrentName())
	}
	return buf.String()
}

// Reached reports whether the player stands in room.
func (g *Game) Reached(room string) bool {
	return g.Map.CurrentName() == room
}

// Submit parses one line of input and applies it. The returned message may
// be empty. Blank input is not a turn.
func (g *Game) Submit(input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}

	cmd := Parse(input)
	result := g.apply(cmd)

	g.logger.Debug("turn",
		"command", input,
		"verb", string(cmd.Verb),
		"room", g.Map.CurrentName(),
		"result", result,
	)
	return result
}

// ResolveEncounter is called once after every turn with the campaign's
// killer item.
func (g *Game) ResolveEncounter(killer string) (string, bool) {
	return g.CheckDeath(killer)
}

func (g *Game) apply(cmd Command) string {
	if cmd.Debug && !g.debug {
		return MsgInvalidInput
	}

	switch cmd.Verb {
	case VerbMove:
		return g.Map.Move(models.Direction(cmd.Arg), g.Player)

	case VerbGet:
		return g.Player.Get(cmd.Arg, g.Map.Current())

	case VerbUse:
		return g.Player.Use(cmd.Arg, g.Map.Current())

	case VerbHelp:
		return HelpText

	case VerbGive:
		for _, item := range cmd.Items {
			g.Player.Add(item)
		}
		return ""

	case VerbTeleport:
		if !g.Map.Teleport(cmd.Arg) {
			return MsgNoSuchRoom
		}
		return ""

	case VerbDurset:
		n, err := strconv.Atoi(cmd.Arg)
		if err != nil {
			return MsgNotANumber
		}
		g.Player.SwordDurability = n
		return ""

	default:
		return MsgInvalidInput
	}
}
