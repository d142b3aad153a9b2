package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/dateutil"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellPowerShell Shell = "powershell"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagInt
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --index
	Short    string   // -i (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	FileGlob string   // for file flags
}

// commandDef describes a command for completion.
type commandDef struct {
	Name      string
	Desc      string
	Flags     []flagDef
	TakesDirs bool     // accepts a directory argument
	Args      []string // fixed argument values (e.g. shells)
}

// completionMeta holds completion-specific metadata for flags.
// Flag names, types, and descriptions come from the FlagSet.
type completionMeta struct {
	Values   func() []string // enum values, resolved lazily
	FileGlob string          // file glob pattern
	IsDir    bool            // directory completion
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	// Enum flags
	"highlight-style": {Values: config.HighlightStyles},
	"style":           {Values: config.HighlightStyles},
	"page-template":   {Values: func() []string { return templateNames("") }},
	"index-template":  {Values: func() []string { return templateNames("") }},
	"date-format":     {Values: datePresetNames},

	// File flags with glob patterns
	"config": {FileGlob: "*.yaml,*.yml"},
	"index":  {FileGlob: "*.html"},

	// Directory flags
	"asset-path": {IsDir: true},
}

// datePresetNames lists the timestamp presets, sorted.
func datePresetNames() []string {
	names := make([]string, 0, len(dateutil.DatePresets))
	for name := range dateutil.DatePresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// commandFlagSet returns an unparsed FlagSet carrying the flags of the named
// command, registered exactly as the command's parser registers them.
func commandFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	switch name {
	case "convert":
		registerConvertFlags(fs, &convertFlags{})
	case "css":
		registerCSSFlags(fs, &cssFlags{})
		addConfigFlag(fs, new(string))
	case "config":
		addConfigFlag(fs, new(string))
	}
	return fs
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet.
// Enriches with completion metadata from flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}

		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int":
			fd.Type = flagInt
		default:
			fd.Type = flagString
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			switch {
			case meta.Values != nil:
				fd.Type = flagEnum
				fd.Values = meta.Values()
			case meta.FileGlob != "":
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			case meta.IsDir:
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Flags are extracted from the actual FlagSet.
func getCommands() []commandDef {
	return []commandDef{
		{
			Name:      "convert",
			Desc:      "Convert markdown notes to HTML pages and an index",
			Flags:     extractFlagsFromFlagSet(commandFlagSet("convert")),
			TakesDirs: true,
		},
		{
			Name:  "css",
			Desc:  "Print the stylesheet for class-based highlighting",
			Flags: extractFlagsFromFlagSet(commandFlagSet("css")),
		},
		{
			Name:  "config",
			Desc:  "Print the effective configuration",
			Flags: extractFlagsFromFlagSet(commandFlagSet("config")),
		},
		{
			Name: "completion",
			Desc: "Generate shell completion script",
			Args: []string{string(ShellBash), string(ShellZsh), string(ShellFish), string(ShellPowerShell)},
		},
		{Name: "version", Desc: "Show version information"},
		{Name: "help", Desc: "Show help for a command"},
	}
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	cmds := getCommands()
	switch shell {
	case ShellBash:
		return generateBash(w, cmds)
	case ShellZsh:
		return generateZsh(w, cmds)
	case ShellFish:
		return generateFish(w, cmds)
	case ShellPowerShell:
		return generatePowerShell(w, cmds)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish, powershell)", ErrUnsupportedShell, shell)
	}
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

const completionUsage = `Usage: md2html completion <shell>

Generate shell completion script for the specified shell.

Supported shells:
  bash        Bash completion script
  zsh         Zsh completion script
  fish        Fish completion script
  powershell  PowerShell completion script

Installation:

  Bash:
    # Add to ~/.bashrc:
    eval "$(md2html completion bash)"

  Zsh:
    # Add to ~/.zshrc (before compinit):
    eval "$(md2html completion zsh)"

  Fish:
    md2html completion fish > ~/.config/fish/completions/md2html.fish

  PowerShell:
    # Add to $PROFILE:
    md2html completion powershell | Out-String | Invoke-Expression
`

func printCompletionUsage(w io.Writer) {
	_, _ = io.WriteString(w, completionUsage)
}

// commandNames returns the names of cmds joined by sep.
func commandNames(cmds []commandDef, sep string) string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return strings.Join(names, sep)
}

// flagWords returns every --long and -short spelling of flags.
func flagWords(flags []flagDef) []string {
	words := make([]string, 0, len(flags)*2)
	for _, f := range flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return words
}

// quoteSingle escapes s for use inside single quotes in POSIX shells.
func quoteSingle(s string) string {
	return strings.ReplaceAll(s, "'", `'\''`)
}
