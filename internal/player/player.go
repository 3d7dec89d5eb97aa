package player

import (
	"fmt"
	"slices"

	"golang.org/x/text/cases"

	"github.com/tatianab/no-escape/internal/models"
)

const (
	Sword        = "sword"
	CrackedSword = "cracked sword"
	Hammer       = "hammer"
	StrangeTome  = "Strange Tome"

	// FullDurability is a new or repaired sword's durability.
	FullDurability = 2
)

// Item results.
const (
	MsgNoItemHere     = "There isn't an item here!"
	MsgWrongItem      = "That item isn't here!"
	MsgNotHeld        = "You do not have that item"
	MsgRepaired       = "You repaired your sword!"
	MsgNotBroken      = "Your sword is not broken"
	MsgNeedSword      = "You need a sword to repair!"
	MsgRoomNormal     = "The room became normal"
	MsgCantUseHere    = "You can't use that here!"
	MsgNothingHappens = "Nothing happens."
)

var fold = cases.Fold()

// Player is the inventory and the state of the player's sword. It is not
// safe for concurrent use.
type Player struct {
	inventory       []string
	SwordDurability int
}

// New returns a player holding items.
func New(items ...string) *Player {
	return &Player{
		inventory:       slices.Clone(items),
		SwordDurability: FullDurability,
	}
}

// Items returns a copy of the inventory in pickup order.
func (p *Player) Items() []string {
	return slices.Clone(p.inventory)
}

// Sorted returns a sorted copy of the inventory.
func (p *Player) Sorted() []string {
	items := p.Items()
	slices.Sort(items)
	return items
}

func (p *Player) Has(item string) bool {
	return slices.Contains(p.inventory, item)
}

// Count returns how many copies of item are held.
func (p *Player) Count(item string) int {
	n := 0
	for _, held := range p.inventory {
		if held == item {
			n++
		}
	}
	return n
}

// Add appends item without any checks.
func (p *Player) Add(item string) {
	p.inventory = append(p.inventory, item)
}

// Remove drops one copy of item and reports whether there was one.
func (p *Player) Remove(item string) bool {
	i := slices.Index(p.inventory, item)
	if i < 0 {
		return false
	}
	p.inventory = slices.Delete(p.inventory, i, i+1)
	return true
}

// HasSword reports whether any sword, cracked or not, is held.
func (p *Player) HasSword() bool {
	return p.Has(Sword) || p.Has(CrackedSword)
}

// Get picks up the room's item if name matches it, ignoring case.
func (p *Player) Get(name string, room *models.Room) string {
	if !room.HasItem() {
		return MsgNoItemHere
	}
	if fold.String(name) != fold.String(room.Item) {
		return MsgWrongItem
	}

	item := room.Item
	p.Add(item)
	room.ClearItem()

	if item == Sword {
		p.SwordDurability = FullDurability
	}
	return fmt.Sprintf("You got the %s!", item)
}

// Use applies a held item in room.
func (p *Player) Use(name string, room *models.Room) string {
	if !p.Has(name) {
		return MsgNotHeld
	}

	switch name {
	case Hammer:
		switch {
		case p.Has(CrackedSword):
			p.SwordDurability = FullDurability
			p.Remove(CrackedSword)
			p.Add(Sword)
			p.Remove(Hammer)
			return MsgRepaired
		case p.Has(Sword):
			return MsgNotBroken
		default:
			return MsgNeedSword
		}

	case StrangeTome:
		if room.Status == models.StatusStrange {
			room.ClearStatus()
			return MsgRoomNormal
		}
		return MsgCantUseHere

	default:
		return MsgNothingHappens
	}
}

// WearSword takes one point of durability off after a kill. The sword
// cracks at 1 and shatters at 0; the returned note describes what happened,
// if anything.
func (p *Player) WearSword() string {
	p.SwordDurability--

	switch {
	case p.SwordDurability == 1:
		if p.Remove(Sword) {
			p.Add(CrackedSword)
			return " Your sword cracks."
		}
	case p.SwordDurability <= 0:
		if p.Remove(CrackedSword) || p.Remove(Sword) {
			return " Your sword shatters."
		}
	}
	return ""
}
