package models

import (
	"errors"
	"fmt"
	"maps"

	"gopkg.in/yaml.v3"
)

// Direction is an exit token: n, s, e or w.
type Direction string

const (
	North Direction = "n"
	South Direction = "s"
	East  Direction = "e"
	West  Direction = "w"
)

// Directions lists the exit tokens in drawing order.
var Directions = []Direction{North, South, East, West}

// Status governs whether a room can be entered or left.
type Status int

const (
	StatusNone Status = iota
	StatusLocked
	StatusBound
	StatusStrange
	StatusOneway
)

var ErrInvalidStatus = errors.New("invalid room status")

var statusNames = map[Status]string{
	StatusNone:    "",
	StatusLocked:  "locked",
	StatusBound:   "bound",
	StatusStrange: "strange",
	StatusOneway:  "oneway",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// ParseStatus maps the level file spelling of a status to its value.
func ParseStatus(name string) (Status, error) {
	for status, n := range statusNames {
		if n == name {
			return status, nil
		}
	}
	return StatusNone, fmt.Errorf("%w: %q", ErrInvalidStatus, name)
}

func (s Status) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

func (s *Status) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	status, err := ParseStatus(name)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*s = status
	return nil
}

// Layout is where a room is drawn on the map panel. The game rules never
// read it.
type Layout struct {
	X         int               `yaml:"x"`
	Y         int               `yaml:"y"`
	Width     int               `yaml:"width,omitempty"`
	Height    int               `yaml:"height,omitempty"`
	Placement map[Direction]int `yaml:"placement,omitempty"` // shifts an exit stub along a wide or tall wall
	Hidden    bool              `yaml:"hidden,omitempty"`    // never drawn, e.g. portals
}

// Size returns the room's width and height in map cells, at least 1x1.
func (l Layout) Size() (int, int) {
	w, h := l.Width, l.Height
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// Room is a node of the level graph. Status and Item are mutated in place
// as the game progresses.
type Room struct {
	Name   string               `yaml:"-"` // Also the key in the level's room map.
	Exits  map[Direction]string `yaml:"exits,omitempty"`
	Status Status               `yaml:"status,omitempty"`
	Unbind string               `yaml:"unbind,omitempty"` // item that clears a bound status
	Item   string               `yaml:"item,omitempty"`
	Layout Layout               `yaml:"layout"`
}

// HasItem reports whether anything lies in the room.
func (r *Room) HasItem() bool {
	return r.Item != ""
}

// ClearItem removes the room's item.
func (r *Room) ClearItem() {
	r.Item = ""
}

// ClearStatus resolves the room's status for good.
func (r *Room) ClearStatus() {
	r.Status = StatusNone
}

// Clone returns a copy that shares no maps with r.
func (r *Room) Clone() *Room {
	c := *r
	c.Exits = maps.Clone(r.Exits)
	c.Layout.Placement = maps.Clone(r.Layout.Placement)
	return &c
}
