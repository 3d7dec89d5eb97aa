package engine

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type Verb string

const (
	VerbMove     Verb = "move"
	VerbGet      Verb = "get"
	VerbUse      Verb = "use"
	VerbHelp     Verb = "help"
	VerbGive     Verb = "give"
	VerbTeleport Verb = "tp"
	VerbDurset   Verb = "durset"
	VerbInvalid  Verb = "" // Anything that matched no rule
)

// Command is a parsed line of player input.
type Command struct {
	Verb  Verb
	Arg   string   // direction, item or room name with words rejoined
	Items []string // give only
	Debug bool
}

// rule matches the leading token of the input. Rules are tried in order.
type rule struct {
	words []string
	verb  Verb
	// exact is the required token count, or 0 for "verb plus any number of
	// words".
	exact int
	debug bool
	build func(words []string) Command
}

var rules = []rule{
	{words: []string{"move", "go"}, verb: VerbMove, exact: 2, build: direction},
	{words: []string{"get", "take"}, verb: VerbGet, build: phrase},
	{words: []string{"use"}, verb: VerbUse, build: phrase},
	{words: []string{"help"}, verb: VerbHelp, exact: 1},
	{words: []string{"give"}, verb: VerbGive, debug: true, build: itemList},
	{words: []string{"tp"}, verb: VerbTeleport, debug: true, build: phrase},
	{words: []string{"durset"}, verb: VerbDurset, exact: 2, debug: true, build: phrase},
}

// Parse splits input on whitespace and matches it against the command
// table. Verbs are case-sensitive; arguments keep their case.
func Parse(input string) Command {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return Command{Verb: VerbInvalid}
	}

	for _, r := range rules {
		if !matches(r, tokens) {
			continue
		}
		cmd := Command{}
		if r.build != nil {
			cmd = r.build(tokens[1:])
		}
		cmd.Verb = r.verb
		cmd.Debug = r.debug
		return cmd
	}
	return Command{Verb: VerbInvalid}
}

func matches(r rule, tokens []string) bool {
	if r.exact > 0 && len(tokens) != r.exact {
		return false
	}
	for _, w := range r.words {
		if tokens[0] == w {
			return true
		}
	}
	return false
}

// direction keeps only the first character of the word, lower-cased.
func direction(words []string) Command {
	r, _ := utf8.DecodeRuneInString(words[0])
	return Command{Arg: string(unicode.ToLower(r))}
}

func phrase(words []string) Command {
	return Command{Arg: strings.Join(words, " ")}
}

// itemList splits "a b, c" into ["a b", "c"]. Empty names are dropped.
func itemList(words []string) Command {
	var items []string
	for _, item := range strings.Split(strings.Join(words, " "), ", ") {
		if item != "" {
			items = append(items, item)
		}
	}
	return Command{Items: items}
}
