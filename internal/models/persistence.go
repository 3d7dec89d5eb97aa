package models

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"

	"gopkg.in/yaml.v3"
)

const CampaignFile = "campaign.yaml"

var (
	ErrNoLevels    = errors.New("campaign has no levels")
	ErrInvalidRoom = errors.New("invalid room")
)

// Level is one map of the campaign as stored on disk.
type Level struct {
	File           string           `yaml:"-"`
	Title          string           `yaml:"title"`
	Start          string           `yaml:"start"`
	Trigger        string           `yaml:"trigger"`         // entering this room ends the level
	CarryInventory bool             `yaml:"carry_inventory"` // keep the previous level's player
	Checkpoint     int              `yaml:"checkpoint"`      // level index to restart from on death
	Outro          []string         `yaml:"outro"`
	RoomData       map[string]*Room `yaml:"rooms"`
}

// Rooms returns a fresh copy of the level's room graph. Every game gets its
// own copy so that a restart begins from the stored state.
func (l *Level) Rooms() map[string]*Room {
	rooms := make(map[string]*Room, len(l.RoomData))
	for name, room := range l.RoomData {
		c := room.Clone()
		c.Name = name
		rooms[name] = c
	}
	return rooms
}

// Validate checks that the level can be played.
func (l *Level) Validate() error {
	if _, ok := l.RoomData[l.Start]; !ok {
		return fmt.Errorf("%s: start room %q: %w", l.File, l.Start, ErrInvalidRoom)
	}
	if _, ok := l.RoomData[l.Trigger]; !ok {
		return fmt.Errorf("%s: trigger room %q: %w", l.File, l.Trigger, ErrInvalidRoom)
	}
	for name, room := range l.RoomData {
		if room == nil {
			return fmt.Errorf("%s: room %q is empty: %w", l.File, name, ErrInvalidRoom)
		}
		for dir, next := range room.Exits {
			if !slices.Contains(Directions, dir) {
				return fmt.Errorf("%s: room %q has unknown direction %q: %w", l.File, name, dir, ErrInvalidRoom)
			}
			if _, ok := l.RoomData[next]; !ok {
				return fmt.Errorf("%s: room %q exit %s leads to unknown room %q: %w", l.File, name, dir, next, ErrInvalidRoom)
			}
		}
		if room.Status == StatusBound && room.Unbind == "" {
			return fmt.Errorf("%s: bound room %q has no unbind item: %w", l.File, name, ErrInvalidRoom)
		}
	}
	return nil
}

// Campaign is the ordered list of levels plus the framing text around them.
type Campaign struct {
	Title      string   `yaml:"title"`
	Killer     string   `yaml:"killer"` // item that ends the game unless slain
	Intro      []string `yaml:"intro"`
	Ending     string   `yaml:"ending"`
	LevelFiles []string `yaml:"levels"`
	Levels     []*Level `yaml:"-"`
}

// LoadLevel reads a single level file from fsys.
func LoadLevel(fsys fs.FS, name string) (*Level, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}

	var level Level
	if err := yaml.Unmarshal(data, &level); err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	level.File = name

	if err := level.Validate(); err != nil {
		return nil, err
	}
	return &level, nil
}

// LoadCampaign reads the campaign manifest and every level it lists. Level
// paths are relative to the manifest.
func LoadCampaign(fsys fs.FS, name string) (*Campaign, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}

	var campaign Campaign
	if err := yaml.Unmarshal(data, &campaign); err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	if len(campaign.LevelFiles) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrNoLevels)
	}
	if campaign.Killer == "" {
		campaign.Killer = "monster"
	}

	dir := path.Dir(name)
	for i, file := range campaign.LevelFiles {
		level, err := LoadLevel(fsys, path.Join(dir, file))
		if err != nil {
			return nil, err
		}
		if level.Checkpoint < 0 || level.Checkpoint > i {
			return nil, fmt.Errorf("%s: checkpoint %d must be an earlier or the same level", level.File, level.Checkpoint)
		}
		campaign.Levels = append(campaign.Levels, level)
	}
	return &campaign, nil
}

// ListLevels returns the level files found in dir, for validation tooling.
func ListLevels(fsys fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	var levels []string
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".yaml" || entry.Name() == CampaignFile {
			continue
		}
		levels = append(levels, path.Join(dir, entry.Name()))
	}
	return levels, nil
}
