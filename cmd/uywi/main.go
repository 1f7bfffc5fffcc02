/*
Uywi starts an interactive session for exploring the UYWI enumeration: paging
through concepts, rendering a concept or word under a script, and parsing a
string back into a concept or word.

Usage:

	uywi [flags]

The flags are:

	-l, --length N
		Default concept length (2, 3, or 4) for commands that don't specify
		one. Defaults to the length saved in ~/.uywi.toml by the previous
		session, or 4 when there is none.

	-s, --script NAME
		Default script ("chiffre" or "ipa") for rendering. Defaults to the
		script saved in ~/.uywi.toml by the previous session, or "chiffre"
		when there is none.

	-c, --command COMMANDS
		Immediately run the given command(s) at start. Can be multiple
		commands separated by the ";" character.

Once a session has started, type "help" for the list of commands. To exit,
type "quit".
*/
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/chzyer/readline"
	"github.com/spf13/pflag"

	"github.com/uywi-lang/uywi"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitUsageError indicates a malformed command or flag.
	ExitUsageError

	// ExitSessionError indicates the interactive session ended abnormally.
	ExitSessionError
)

var (
	returnCode   = ExitSuccess
	flagLength   = pflag.IntP("length", "l", uywi.DefaultLength().AsInt(), "Default concept length (2, 3, or 4)")
	flagScript   = pflag.StringP("script", "s", "chiffre", `Default script ("chiffre" or "ipa")`)
	startCommand = pflag.StringP("command", "c", "", "Execute the given commands immediately at start, separated by ';'")
)

// preferences are persisted to ~/.uywi.toml between sessions, grounded on
// the BurntSushi/toml-decoded manifest files this project's ancestor used
// for its own on-disk configuration.
type preferences struct {
	Length int    `toml:"length"`
	Script string `toml:"script"`
}

func preferencesPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home + "/.uywi.toml"
}

func defaultPreferences() preferences {
	return preferences{Length: uywi.DefaultLength().AsInt(), Script: "chiffre"}
}

func loadPreferences() preferences {
	prefs := defaultPreferences()

	path := preferencesPath()
	if path == "" {
		return prefs
	}

	if _, err := toml.DecodeFile(path, &prefs); err != nil {
		return defaultPreferences()
	}
	return prefs
}

func savePreferences(prefs preferences) {
	path := preferencesPath()
	if path == "" {
		return
	}

	f, err := os.Create(path)
	if err != nil {
		return
	}
	defer f.Close()

	_ = toml.NewEncoder(f).Encode(prefs)
}

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	prefs := loadPreferences()
	if !isFlagPassed("length") {
		*flagLength = prefs.Length
	}
	if !isFlagPassed("script") {
		*flagScript = prefs.Script
	}

	length, err := uywi.NewLength(*flagLength)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitUsageError
		return
	}

	script, err := parseScriptFlag(*flagScript)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitUsageError
		return
	}

	sess := &session{length: length, script: script}

	var startCommands []string
	if *startCommand != "" {
		startCommands = strings.Split(*startCommand, ";")
	}

	if err := sess.run(startCommands); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitSessionError
		return
	}

	savePreferences(preferences{Length: sess.length.AsInt(), Script: scriptName(sess.script)})
}

func isFlagPassed(name string) bool {
	found := false
	pflag.Visit(func(f *pflag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

func parseScriptFlag(name string) (uywi.Script, error) {
	switch name {
	case "chiffre":
		return uywi.ScriptUywiChiffre, nil
	case "ipa":
		return uywi.ScriptIpaPeter, nil
	default:
		return 0, fmt.Errorf("unknown script %q, want \"chiffre\" or \"ipa\"", name)
	}
}

func scriptName(script uywi.Script) string {
	if script == uywi.ScriptIpaPeter {
		return "ipa"
	}
	return "chiffre"
}

// session holds the interactive state a sequence of commands mutates:
// the length and script commands default to when not given explicitly.
type session struct {
	length uywi.Length
	script uywi.Script
}

func (s *session) run(startCommands []string) error {
	rl, err := readline.NewEx(&readline.Config{Prompt: "uywi> "})
	if err != nil {
		return fmt.Errorf("create readline config: %w", err)
	}
	defer rl.Close()

	for _, cmd := range startCommands {
		if strings.TrimSpace(cmd) == "" {
			continue
		}
		if quit := s.dispatch(cmd); quit {
			return nil
		}
	}

	for {
		line, err := rl.Readline()
		if err != nil {
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if quit := s.dispatch(line); quit {
			return nil
		}
	}
}

// dispatch runs one command line and reports whether the session should
// end.
func (s *session) dispatch(line string) (quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	switch fields[0] {
	case "quit", "exit":
		return true
	case "help":
		printHelp()
	case "length":
		s.cmdLength(fields[1:])
	case "script":
		s.cmdScript(fields[1:])
	case "concept":
		s.cmdConcept(fields[1:])
	case "word":
		s.cmdWord(fields[1:])
	case "parse":
		s.cmdParse(fields[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q; type \"help\" for a list\n", fields[0])
	}
	return false
}

func printHelp() {
	fmt.Println(`commands:
  length <2|3|4>             set the default concept length
  script <chiffre|ipa>       set the default rendering script
  concept <index>            render the concept at the given 1-based index
  word <index> <stem> <form> render a word by concept index, stem, and form
  parse <string>             parse a string as a concept or word
  help                       show this message
  quit                       end the session`)
}

func (s *session) cmdLength(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: length <2|3|4>")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, "length must be a number")
		return
	}
	length, err := uywi.NewLength(n)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return
	}
	s.length = length
}

func (s *session) cmdScript(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, `usage: script <chiffre|ipa>`)
		return
	}
	script, err := parseScriptFlag(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return
	}
	s.script = script
}

func (s *session) cmdConcept(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: concept <index>")
		return
	}
	concept, err := uywi.ConceptFromIndexStr(args[0], s.length)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return
	}
	fmt.Println(concept.Render(s.script))
}

func (s *session) cmdWord(args []string) {
	if len(args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: word <index> <stem> <form>")
		return
	}
	concept, err := uywi.ConceptFromIndexStr(args[0], s.length)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return
	}
	stemIndex, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "stem must be a number")
		return
	}
	formIndex, err := strconv.Atoi(args[2])
	if err != nil {
		fmt.Fprintln(os.Stderr, "form must be a number")
		return
	}

	stemIter := concept.Stems()
	for {
		stem, ok := stemIter.Next()
		if !ok {
			fmt.Fprintln(os.Stderr, "no such stem index for this length")
			return
		}
		if stem.StemIndex() != stemIndex {
			continue
		}

		wordIter := stem.Words()
		for {
			word, ok := wordIter.Next()
			if !ok {
				fmt.Fprintln(os.Stderr, "no such form index for this length")
				return
			}
			if word.FormIndex() == formIndex {
				fmt.Println(word.Render(s.script))
				return
			}
		}
	}
}

func (s *session) cmdParse(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: parse <string>")
		return
	}
	result, err := s.script.FromStr(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return
	}

	if result.IsWord() {
		word := result.Word()
		fmt.Printf("word: concept=%s stem=%d form=%d\n", word.Concept().Render(s.script), word.StemIndex(), word.FormIndex())
	} else {
		fmt.Printf("concept: index=%s\n", result.Concept().IndexAsString())
	}
}
