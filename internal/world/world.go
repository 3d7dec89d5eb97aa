// Package world holds the mutable room graph of a level and the player's
// position in it.
package world

import (
	"errors"
	"fmt"
	"slices"

	"github.com/tatianab/no-escape/internal/models"
)

// Movement results.
const (
	MsgStrange       = "The room feels strange..."
	MsgCantGo        = "You can't go there!"
	MsgUnlocked      = "You unlocked the door"
	MsgLocked        = "That door is locked"
	MsgBarrierLifted = "You remove the magical barrier..."
	MsgBarrier       = "A magical barrier blocks your path"
	MsgOnewayClick   = "You hear a dry click behind you"
)

// KeyItem is consumed when entering a locked room.
const KeyItem = "key"

var (
	ErrUnknownRoom  = errors.New("unknown room")
	ErrDanglingExit = errors.New("exit leads to unknown room")
)

// Inventory is what movement needs from the player: locked rooms consume a
// key and bound rooms check for their unbind item.
type Inventory interface {
	Has(item string) bool
	Remove(item string) bool
}

// Map owns a level's room graph. It is not safe for concurrent use.
type Map struct {
	rooms   map[string]*models.Room
	current string
}

// New takes ownership of rooms and places the player in start.
func New(rooms map[string]*models.Room, start string) (*Map, error) {
	if _, ok := rooms[start]; !ok {
		return nil, fmt.Errorf("starting room %q: %w", start, ErrUnknownRoom)
	}
	for name, room := range rooms {
		for dir, next := range room.Exits {
			if _, ok := rooms[next]; !ok {
				return nil, fmt.Errorf("room %q exit %s to %q: %w", name, dir, next, ErrDanglingExit)
			}
		}
		if room.Name == "" {
			room.Name = name
		}
	}
	return &Map{rooms: rooms, current: start}, nil
}

// Current returns the room the player is in.
func (m *Map) Current() *models.Room {
	return m.rooms[m.current]
}

func (m *Map) CurrentName() string {
	return m.current
}

// Room looks up a room by name.
func (m *Map) Room(name string) (*models.Room, bool) {
	room, ok := m.rooms[name]
	return room, ok
}

// Rooms returns every room name in sorted order.
func (m *Map) Rooms() []string {
	names := make([]string, 0, len(m.rooms))
	for name := range m.rooms {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Teleport moves the player to name without any checks. It reports false
// if the room does not exist.
func (m *Map) Teleport(name string) bool {
	if _, ok := m.rooms[name]; !ok {
		return false
	}
	m.current = name
	return true
}

// Move tries to walk out of the current room in dir and returns the message
// to show, which may be empty.
func (m *Map) Move(dir models.Direction, inv Inventory) string {
	here := m.Current()

	// Strange rooms hold the player until the status is cleared.
	if here.Status == models.StatusStrange {
		return MsgStrange
	}

	nextName, ok := here.Exits[dir]
	if !ok {
		return MsgCantGo
	}
	next := m.rooms[nextName]

	switch {
	case next.Status == models.StatusNone:
		m.current = nextName
		return ""

	case next.Status == models.StatusLocked:
		if !inv.Has(KeyItem) {
			return MsgLocked
		}
		m.current = nextName
		inv.Remove(KeyItem)
		next.ClearStatus()
		return MsgUnlocked

	case next.Status == models.StatusBound:
		if !inv.Has(next.Unbind) {
			return MsgBarrier
		}
		m.current = nextName
		next.ClearStatus()
		return MsgBarrierLifted

	case here.Status != models.StatusNone:
		// Leaving one one-way room for another; neither status is cleared.
		if here.Status == models.StatusOneway && next.Status == models.StatusOneway {
			m.current = nextName
			return MsgOnewayClick
		}
		return ""

	default:
		m.current = nextName
		return ""
	}
}
