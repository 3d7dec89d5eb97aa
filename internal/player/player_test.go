package player

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tatianab/no-escape/internal/models"
)

func TestGet(t *testing.T) {
	tests := []struct {
		name      string
		inventory []string
		roomItem  string
		get       string
		want      string
		wantInv   []string
		wantRoom  string
	}{
		{
			name:     "picks up key",
			roomItem: "key",
			get:      "key",
			want:     "You got the key!",
			wantInv:  []string{"key"},
		},
		{
			name:     "case insensitive keeps room casing",
			roomItem: "Strange Tome",
			get:      "strange TOME",
			want:     "You got the Strange Tome!",
			wantInv:  []string{"Strange Tome"},
		},
		{
			name:     "upper case request",
			roomItem: "sword",
			get:      "SWORD",
			want:     "You got the sword!",
			wantInv:  []string{"sword"},
		},
		{
			name:     "wrong item",
			roomItem: "hammer",
			get:      "key",
			want:     MsgWrongItem,
			wantRoom: "hammer",
		},
		{
			name: "empty room",
			get:  "key",
			want: MsgNoItemHere,
		},
		{
			name:     "empty name",
			roomItem: "key",
			get:      "",
			want:     MsgWrongItem,
			wantRoom: "key",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.inventory...)
			room := &models.Room{Item: tt.roomItem}

			assert.Equal(t, tt.want, p.Get(tt.get, room))
			assert.Equal(t, tt.wantRoom, room.Item)
			if tt.wantInv == nil {
				assert.Empty(t, p.Items())
			} else {
				assert.Equal(t, tt.wantInv, p.Items())
			}
		})
	}
}

func TestGetTwice(t *testing.T) {
	p := New()
	room := &models.Room{Item: "key"}

	assert.Equal(t, "You got the key!", p.Get("key", room))
	assert.Equal(t, MsgNoItemHere, p.Get("key", room))
	assert.Equal(t, 1, p.Count("key"))
}

func TestGetSwordResetsDurability(t *testing.T) {
	p := New()
	p.SwordDurability = 0

	p.Get("sword", &models.Room{Item: Sword})
	assert.Equal(t, FullDurability, p.SwordDurability)
}

func TestUseHammer(t *testing.T) {
	t.Run("repairs cracked sword", func(t *testing.T) {
		p := New(CrackedSword, Hammer)
		p.SwordDurability = 1

		assert.Equal(t, MsgRepaired, p.Use(Hammer, &models.Room{}))
		assert.Equal(t, []string{Sword}, p.Items())
		assert.Equal(t, FullDurability, p.SwordDurability)
	})

	t.Run("intact sword keeps hammer", func(t *testing.T) {
		p := New(Sword, Hammer)

		assert.Equal(t, MsgNotBroken, p.Use(Hammer, &models.Room{}))
		assert.Equal(t, MsgNotBroken, p.Use(Hammer, &models.Room{}))
		assert.True(t, p.Has(Hammer))
		assert.Equal(t, []string{Sword, Hammer}, p.Items())
	})

	t.Run("no sword", func(t *testing.T) {
		p := New(Hammer)
		assert.Equal(t, MsgNeedSword, p.Use(Hammer, &models.Room{}))
		assert.True(t, p.Has(Hammer))
	})
}

func TestUseStrangeTome(t *testing.T) {
	p := New(StrangeTome)

	room := &models.Room{Status: models.StatusStrange}
	assert.Equal(t, MsgRoomNormal, p.Use(StrangeTome, room))
	assert.Equal(t, models.StatusNone, room.Status)
	assert.True(t, p.Has(StrangeTome))

	assert.Equal(t, MsgCantUseHere, p.Use(StrangeTome, room))

	locked := &models.Room{Status: models.StatusLocked}
	assert.Equal(t, MsgCantUseHere, p.Use(StrangeTome, locked))
	assert.Equal(t, models.StatusLocked, locked.Status)
}

func TestUseOther(t *testing.T) {
	p := New("key")

	assert.Equal(t, MsgNothingHappens, p.Use("key", &models.Room{}))
	assert.Equal(t, MsgNotHeld, p.Use("lantern", &models.Room{}))
	assert.Equal(t, MsgNotHeld, p.Use("KEY", &models.Room{}))
	assert.Equal(t, []string{"key"}, p.Items())
}

func TestWearSword(t *testing.T) {
	p := New(Sword)

	assert.Equal(t, " Your sword cracks.", p.WearSword())
	assert.Equal(t, 1, p.SwordDurability)
	assert.Equal(t, []string{CrackedSword}, p.Items())

	assert.Equal(t, " Your sword shatters.", p.WearSword())
	assert.Equal(t, 0, p.SwordDurability)
	assert.False(t, p.HasSword())
	assert.Empty(t, p.Items())
}

func TestWearSwordAboveCrackThreshold(t *testing.T) {
	p := New(Sword)
	p.SwordDurability = 5

	assert.Empty(t, p.WearSword())
	assert.Equal(t, 4, p.SwordDurability)
	assert.Equal(t, []string{Sword}, p.Items())
}

func TestRemoveOneCopy(t *testing.T) {
	p := New("key", "key", "hammer")

	assert.True(t, p.Remove("key"))
	assert.Equal(t, 1, p.Count("key"))
	assert.False(t, p.Remove("lantern"))
	assert.Equal(t, []string{"hammer", "key"}, p.Sorted())
}
