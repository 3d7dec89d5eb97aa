package engine

import (
	"fmt"
	"strings"
)

// CheckDeath resolves a killer lying in the current room. Without a sword
// the player dies; with one the killer is slain and the sword wears down.
func (g *Game) CheckDeath(killer string) (string, bool) {
	room := g.Map.Current()
	if killer == "" || !strings.Contains(room.Item, killer) {
		return "", false
	}

	if !g.Player.HasSword() {
		g.logger.Info("player killed", "room", room.Name, "killer", killer)
		return fmt.Sprintf("A %s has got you... GAME OVER!", killer), true
	}

	room.ClearItem()
	msg := fmt.Sprintf("There is a %s! But you slay it \nwith your sword.", killer)
	msg += g.Player.WearSword()

	g.logger.Info("killer slain",
		"room", room.Name,
		"killer", killer,
		"durability", g.Player.SwordDurability,
	)
	return msg, false
}
