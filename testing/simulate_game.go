package main

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/tatianab/no-escape/internal/config"
	"github.com/tatianab/no-escape/internal/engine"
	"github.com/tatianab/no-escape/internal/logger"
	"github.com/tatianab/no-escape/internal/models"
	"github.com/tatianab/no-escape/levels"
)

type outcome int

const (
	outcomeUnfinished outcome = iota
	outcomeWon
	outcomeDead
)

func (o outcome) String() string {
	switch o {
	case outcomeWon:
		return "WON"
	case outcomeDead:
		return "DEAD"
	default:
		return "UNFINISHED"
	}
}

func main() {
	script := flag.String("script", "testing/walkthrough.txt", "file with one command per line")
	configPath := flag.String("config", "no-escape.yaml", "path to the config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.Logging.Console = false
	logs, closeLog := logger.Setup(cfg.Logging)
	defer func() {
		_ = closeLog()
	}()

	var fsys fs.FS = levels.FS
	if cfg.LevelsDir != "" {
		fsys = os.DirFS(cfg.LevelsDir)
	}
	campaign, err := models.LoadCampaign(fsys, cfg.Campaign)
	if err != nil {
		log.Fatalf("Failed to load campaign: %v", err)
	}

	f, err := os.Open(*script)
	if err != nil {
		log.Fatalf("Failed to open script: %v", err)
	}
	defer f.Close()

	commands, err := readScript(f)
	if err != nil {
		log.Fatalf("Failed to read script: %v", err)
	}

	result, err := play(os.Stdout, campaign, commands,
		engine.WithLogger(logs),
		engine.WithDebugCommands(cfg.DebugCommands),
	)
	if err != nil {
		log.Fatalf("Failed to play: %v", err)
	}

	fmt.Printf("Game Ended: %s\n", result)
	if result == outcomeDead {
		os.Exit(1)
	}
}

// readScript returns the non-empty lines of r. Lines starting with # are
// comments.
func readScript(r io.Reader) ([]string, error) {
	var commands []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		commands = append(commands, line)
	}
	return commands, scanner.Err()
}

// play runs commands through the campaign the way the TUI would, writing a
// transcript to w. Death ends the run; there is no restart.
func play(w io.Writer, campaign *models.Campaign, commands []string, opts ...engine.Option) (outcome, error) {
	index := 0
	game, err := engine.StartLevel(campaign.Levels[index], nil, opts...)
	if err != nil {
		return outcomeUnfinished, err
	}
	fmt.Fprintf(w, "=== %s ===\n%s\n", campaign.Levels[index].Title, game)

	for turn, input := range commands {
		fmt.Fprintf(w, "--- Turn %d ---\n", turn+1)
		fmt.Fprintf(w, "> %s\n", input)

		if result := game.Submit(input); result != "" {
			fmt.Fprintln(w, result)
		}
		encounter, dead := game.ResolveEncounter(campaign.Killer)
		if encounter != "" {
			fmt.Fprintln(w, encounter)
		}
		fmt.Fprintln(w, game)

		if dead {
			slog.Debug("script ended in death", "turn", turn+1)
			return outcomeDead, nil
		}

		level := campaign.Levels[index]
		if !game.Reached(level.Trigger) {
			continue
		}
		for _, line := range level.Outro {
			fmt.Fprintln(w, line)
		}

		index++
		if index >= len(campaign.Levels) {
			fmt.Fprintln(w, campaign.Ending)
			return outcomeWon, nil
		}
		game, err = engine.StartLevel(campaign.Levels[index], game.Player, opts...)
		if err != nil {
			return outcomeUnfinished, err
		}
		fmt.Fprintf(w, "=== %s ===\n%s\n", campaign.Levels[index].Title, game)
	}
	return outcomeUnfinished, nil
}
