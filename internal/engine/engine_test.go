package engine

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/tatianab/no-escape/internal/models"
	"github.com/tatianab/no-escape/internal/player"
	"github.com/tatianab/no-escape/internal/world"
	"github.com/tatianab/no-escape/levels"
)

type GameTestSuite struct {
	suite.Suite
	game *Game
}

func (s *GameTestSuite) SetupTest() {
	rooms := map[string]*models.Room{
		"Cell": {
			Exits: map[models.Direction]string{models.North: "Den", models.East: "Vault"},
			Item:  "key",
		},
		"Den": {
			Exits: map[models.Direction]string{models.South: "Cell"},
			Item:  "monster",
		},
		"Vault": {
			Exits:  map[models.Direction]string{models.West: "Cell"},
			Status: models.StatusLocked,
		},
	}
	m, err := world.New(rooms, "Cell")
	s.Require().NoError(err)
	s.game = NewGame(player.New(), m, WithLogger(slog.New(slog.DiscardHandler)))
}

func (s *GameTestSuite) TestSubmitGetKey() {
	msg := s.game.Submit("get key")

	s.Equal("You got the key!", msg)
	s.Equal([]string{"key"}, s.game.Player.Items())
	s.Empty(s.game.Map.Current().Item)
}

func (s *GameTestSuite) TestSubmitGetTwice() {
	s.game.Submit("get key")
	s.Equal(player.MsgNoItemHere, s.game.Submit("get key"))
}

func (s *GameTestSuite) TestSubmitMove() {
	s.Run("unknown direction", func() {
		s.Equal(world.MsgCantGo, s.game.Submit("go west"))
		s.Equal("Cell", s.game.Map.CurrentName())
	})

	s.Run("locked then unlocked", func() {
		s.Equal(world.MsgLocked, s.game.Submit("go east"))
		s.game.Submit("take KEY")
		s.Equal(world.MsgUnlocked, s.game.Submit("move e"))
		s.Equal("Vault", s.game.Map.CurrentName())
		s.Zero(s.game.Player.Count("key"))
	})
}

func (s *GameTestSuite) TestSubmitHelp() {
	s.Equal(HelpText, s.game.Submit("help"))
	s.Equal("Cell", s.game.Map.CurrentName())
}

func (s *GameTestSuite) TestSubmitInvalid() {
	s.Equal(MsgInvalidInput, s.game.Submit("dance wildly"))
	s.Equal(MsgInvalidInput, s.game.Submit("go"))
}

func (s *GameTestSuite) TestSubmitBlank() {
	s.Empty(s.game.Submit("   "))
}

func (s *GameTestSuite) TestSubmitUseNoEffect() {
	s.game.Submit("get key")
	s.Equal(player.MsgNothingHappens, s.game.Submit("use key"))
	s.Equal(player.MsgNotHeld, s.game.Submit("use hammer"))
}

func (s *GameTestSuite) TestDebugCommands() {
	s.Run("give", func() {
		s.Empty(s.game.Submit("give cracked sword, Strange Tome"))
		s.Equal([]string{"Strange Tome", "cracked sword"}, s.game.State().Inventory)
	})

	s.Run("tp", func() {
		s.Empty(s.game.Submit("tp Vault"))
		s.Equal("Vault", s.game.Map.CurrentName())
		s.Equal(MsgNoSuchRoom, s.game.Submit("tp Attic"))
		s.Equal("Vault", s.game.Map.CurrentName())
	})

	s.Run("durset", func() {
		s.Empty(s.game.Submit("durset 7"))
		s.Equal(7, s.game.Player.SwordDurability)
		s.Equal(MsgNotANumber, s.game.Submit("durset abc"))
		s.Equal(7, s.game.Player.SwordDurability)
	})
}

func (s *GameTestSuite) TestDebugCommandsDisabled() {
	WithDebugCommands(false)(s.game)

	s.Equal(MsgInvalidInput, s.game.Submit("give sword"))
	s.Equal(MsgInvalidInput, s.game.Submit("tp Vault"))
	s.Equal(MsgInvalidInput, s.game.Submit("durset 1"))
	s.Empty(s.game.Player.Items())
	s.Equal("Cell", s.game.Map.CurrentName())
}

func (s *GameTestSuite) TestEncounterWithoutSword() {
	s.game.Submit("go north")

	msg, dead := s.game.ResolveEncounter("monster")
	s.True(dead)
	s.Equal("A monster has got you... GAME OVER!", msg)
	s.Equal("monster", s.game.Map.Current().Item)
}

func (s *GameTestSuite) TestEncounterNothingHere() {
	msg, dead := s.game.ResolveEncounter("monster")
	s.False(dead)
	s.Empty(msg)
	s.Equal("key", s.game.Map.Current().Item)
}

func (s *GameTestSuite) TestEncounterWithSword() {
	s.game.Submit("give sword")
	s.game.Submit("go north")

	msg, dead := s.game.ResolveEncounter("monster")
	s.False(dead)
	s.Contains(msg, "slay it")
	s.Contains(msg, "Your sword cracks.")
	s.Equal(1, s.game.Player.SwordDurability)
	s.Equal([]string{"cracked sword"}, s.game.Player.Items())
	s.Empty(s.game.Map.Current().Item)

	// The monster is gone, so staying put is safe.
	msg, dead = s.game.ResolveEncounter("monster")
	s.False(dead)
	s.Empty(msg)
}

func (s *GameTestSuite) TestDurabilitySequence() {
	s.game.Submit("give sword")
	den, _ := s.game.Map.Room("Den")

	s.game.Submit("go north")
	_, dead := s.game.ResolveEncounter("monster")
	s.False(dead)
	s.Equal(1, s.game.Player.Count("cracked sword"))
	s.Zero(s.game.Player.Count("sword"))

	den.Item = "angry monster"
	msg, dead := s.game.ResolveEncounter("monster")
	s.False(dead)
	s.Contains(msg, "Your sword shatters.")
	s.Equal(0, s.game.Player.SwordDurability)
	s.False(s.game.Player.HasSword())

	den.Item = "monster"
	_, dead = s.game.ResolveEncounter("monster")
	s.True(dead)
}

func (s *GameTestSuite) TestRepairAfterCrack() {
	s.game.Submit("give sword, hammer")
	s.game.Submit("go north")
	s.game.ResolveEncounter("monster")

	s.Equal(player.MsgRepaired, s.game.Submit("use hammer"))
	s.Equal([]string{"sword"}, s.game.Player.Items())
	s.Equal(player.FullDurability, s.game.Player.SwordDurability)
}

func (s *GameTestSuite) TestStateAndString() {
	s.Equal(State{Room: "Cell", Item: "key"}, s.game.State())
	s.Equal("You are in the Cell\nYou see a key\nInventory: []\n", s.game.String())

	s.game.Submit("get key")
	s.game.Submit("give hammer")
	s.Equal("You are in the Cell\nInventory: [hammer, key]\n", s.game.String())
	s.True(s.game.Reached("Cell"))
	s.False(s.game.Reached("Vault"))
}

func TestGameTestSuite(t *testing.T) {
	suite.Run(t, new(GameTestSuite))
}

func TestStartLevel(t *testing.T) {
	campaign, err := models.LoadCampaign(levels.FS, models.CampaignFile)
	if err != nil {
		t.Fatalf("load campaign: %v", err)
	}
	quiet := WithLogger(slog.New(slog.DiscardHandler))

	first, err := StartLevel(campaign.Levels[0], nil, quiet)
	if err != nil {
		t.Fatalf("start level one: %v", err)
	}
	first.Player.Add("sword")

	second, err := StartLevel(campaign.Levels[1], first.Player, quiet)
	if err != nil {
		t.Fatalf("start level two: %v", err)
	}
	if second.Player != first.Player {
		t.Errorf("expected level two to carry the player over")
	}
	if second.ID == first.ID {
		t.Errorf("expected a new game ID per level")
	}

	third, err := StartLevel(campaign.Levels[2], second.Player, quiet)
	if err != nil {
		t.Fatalf("start level three: %v", err)
	}
	if len(third.Player.Items()) != 0 {
		t.Errorf("expected level three to start empty-handed, got %v", third.Player.Items())
	}
	if third.Map.CurrentName() != "Cellar" {
		t.Errorf("expected to start in the Cellar, got %s", third.Map.CurrentName())
	}
}

func TestStartLevelUsesFreshRooms(t *testing.T) {
	campaign, err := models.LoadCampaign(levels.FS, models.CampaignFile)
	if err != nil {
		t.Fatalf("load campaign: %v", err)
	}
	level := campaign.Levels[0]
	quiet := WithLogger(slog.New(slog.DiscardHandler))

	g, _ := StartLevel(level, nil, quiet)
	g.Submit("go w")
	g.Submit("get sword")

	again, _ := StartLevel(level, nil, quiet)
	closet, _ := again.Map.Room("Closet")
	if closet.Item != "sword" {
		t.Errorf("expected the restarted level to have its sword back, got %q", closet.Item)
	}
}
