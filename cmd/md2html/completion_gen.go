package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// globExtensions turns "*.yaml,*.yml" into ["yaml", "yml"].
func globExtensions(glob string) []string {
	var exts []string
	for _, part := range strings.Split(glob, ",") {
		part = strings.TrimPrefix(strings.TrimSpace(part), "*.")
		if part != "" {
			exts = append(exts, part)
		}
	}
	return exts
}

// ---------------------------------------------------------------------------
// Bash
// ---------------------------------------------------------------------------

func generateBash(w io.Writer, cmds []commandDef) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# bash completion for md2html")
	fmt.Fprintln(bw, "_md2html_completions() {")
	fmt.Fprintln(bw, "    local cur prev")
	fmt.Fprintln(bw, "    COMPREPLY=()")
	fmt.Fprintln(bw, `    cur="${COMP_WORDS[COMP_CWORD]}"`)
	fmt.Fprintln(bw, `    prev="${COMP_WORDS[COMP_CWORD-1]}"`)
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "    if [[ ${COMP_CWORD} -eq 1 ]]; then")
	fmt.Fprintf(bw, "        COMPREPLY=( $(compgen -W \"%s\" -- \"$cur\") )\n", commandNames(cmds, " "))
	fmt.Fprintln(bw, "        return")
	fmt.Fprintln(bw, "    fi")
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, `    case "${COMP_WORDS[1]}" in`)

	for _, cmd := range cmds {
		fmt.Fprintf(bw, "        %s)\n", cmd.Name)
		writeBashFlagValues(bw, cmd.Flags)

		switch {
		case len(cmd.Flags) > 0:
			fmt.Fprintln(bw, `            if [[ "$cur" == -* ]]; then`)
			fmt.Fprintf(bw, "                COMPREPLY=( $(compgen -W \"%s\" -- \"$cur\") )\n", strings.Join(flagWords(cmd.Flags), " "))
			if cmd.TakesDirs {
				fmt.Fprintln(bw, "            else")
				fmt.Fprintln(bw, `                COMPREPLY=( $(compgen -d -- "$cur") )`)
			}
			fmt.Fprintln(bw, "            fi")
		case len(cmd.Args) > 0:
			fmt.Fprintf(bw, "            COMPREPLY=( $(compgen -W \"%s\" -- \"$cur\") )\n", strings.Join(cmd.Args, " "))
		case cmd.Name == "help":
			fmt.Fprintf(bw, "            COMPREPLY=( $(compgen -W \"%s\" -- \"$cur\") )\n", commandNames(cmds, " "))
		}
		fmt.Fprintln(bw, "            ;;")
	}

	fmt.Fprintln(bw, "    esac")
	fmt.Fprintln(bw, "}")
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "complete -F _md2html_completions md2html")

	return bw.Flush()
}

// writeBashFlagValues completes the value of the previous flag, if it takes one.
func writeBashFlagValues(w io.Writer, flags []flagDef) {
	var cases []string
	for _, f := range flags {
		pattern := "--" + f.Long
		if f.Short != "" {
			pattern += "|-" + f.Short
		}

		var action string
		switch f.Type {
		case flagEnum:
			action = fmt.Sprintf(`COMPREPLY=( $(compgen -W "%s" -- "$cur") )`, strings.Join(f.Values, " "))
		case flagFile:
			action = `COMPREPLY=( $(compgen -f -- "$cur") )`
		case flagDir:
			action = `COMPREPLY=( $(compgen -d -- "$cur") )`
		case flagString, flagInt:
			action = "COMPREPLY=()"
		default:
			continue
		}
		cases = append(cases, fmt.Sprintf("                %s)\n                    %s\n                    return\n                    ;;", pattern, action))
	}
	if len(cases) == 0 {
		return
	}

	fmt.Fprintln(w, `            case "$prev" in`)
	for _, c := range cases {
		fmt.Fprintln(w, c)
	}
	fmt.Fprintln(w, "            esac")
}

// ---------------------------------------------------------------------------
// Zsh
// ---------------------------------------------------------------------------

func generateZsh(w io.Writer, cmds []commandDef) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "#compdef md2html")
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "_md2html() {")
	fmt.Fprintln(bw, "    local -a commands")
	fmt.Fprintln(bw, "    commands=(")
	for _, cmd := range cmds {
		fmt.Fprintf(bw, "        '%s:%s'\n", cmd.Name, zshEscape(cmd.Desc))
	}
	fmt.Fprintln(bw, "    )")
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "    if (( CURRENT == 2 )); then")
	fmt.Fprintln(bw, "        _describe 'command' commands")
	fmt.Fprintln(bw, "        return")
	fmt.Fprintln(bw, "    fi")
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "    local cmd=${words[2]}")
	fmt.Fprintln(bw, "    shift words")
	fmt.Fprintln(bw, "    (( CURRENT-- ))")
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, `    case "$cmd" in`)

	for _, cmd := range cmds {
		fmt.Fprintf(bw, "        %s)\n", cmd.Name)
		switch {
		case len(cmd.Flags) > 0:
			fmt.Fprint(bw, "            _arguments")
			for _, f := range cmd.Flags {
				fmt.Fprintf(bw, " \\\n                %s", zshFlagSpec(f))
			}
			if cmd.TakesDirs {
				fmt.Fprint(bw, " \\\n                '*:directory:_files -/'")
			}
			fmt.Fprintln(bw)
		case len(cmd.Args) > 0:
			fmt.Fprintf(bw, "            _values 'shell' %s\n", strings.Join(cmd.Args, " "))
		case cmd.Name == "help":
			fmt.Fprintln(bw, "            _describe 'command' commands")
		}
		fmt.Fprintln(bw, "            ;;")
	}

	fmt.Fprintln(bw, "    esac")
	fmt.Fprintln(bw, "}")
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, `_md2html "$@"`)

	return bw.Flush()
}

// zshFlagSpec renders one _arguments spec for f.
func zshFlagSpec(f flagDef) string {
	desc := "[" + zshEscape(f.Desc) + "]"

	var action string
	switch f.Type {
	case flagEnum:
		action = ":" + f.Long + ":(" + strings.Join(f.Values, " ") + ")"
	case flagFile:
		action = ":file:_files -g \"*.(" + strings.Join(globExtensions(f.FileGlob), "|") + ")\""
	case flagDir:
		action = ":directory:_files -/"
	case flagString, flagInt:
		action = ":" + f.Long + ": "
	}

	if f.Short == "" {
		return "'--" + f.Long + desc + action + "'"
	}
	return fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'%s%s'", f.Short, f.Long, f.Short, f.Long, desc, action)
}

// zshEscape escapes characters special inside a single-quoted _arguments spec.
func zshEscape(s string) string {
	r := strings.NewReplacer("[", `\[`, "]", `\]`, ":", `\:`)
	return quoteSingle(r.Replace(s))
}

// ---------------------------------------------------------------------------
// Fish
// ---------------------------------------------------------------------------

func generateFish(w io.Writer, cmds []commandDef) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# fish completion for md2html")
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "function __fish_md2html_needs_command")
	fmt.Fprintln(bw, "    set -l cmd (commandline -opc)")
	fmt.Fprintln(bw, "    test (count $cmd) -eq 1")
	fmt.Fprintln(bw, "end")
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "function __fish_md2html_using_command")
	fmt.Fprintln(bw, "    set -l cmd (commandline -opc)")
	fmt.Fprintln(bw, "    test (count $cmd) -gt 1; and test $argv[1] = $cmd[2]")
	fmt.Fprintln(bw, "end")
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "complete -c md2html -f")

	for _, cmd := range cmds {
		fmt.Fprintf(bw, "complete -c md2html -n __fish_md2html_needs_command -a %s -d '%s'\n", cmd.Name, quoteFish(cmd.Desc))
	}

	for _, cmd := range cmds {
		cond := "'__fish_md2html_using_command " + cmd.Name + "'"
		fmt.Fprintln(bw)

		for _, f := range cmd.Flags {
			line := "complete -c md2html -n " + cond + " -l " + f.Long
			if f.Short != "" {
				line += " -s " + f.Short
			}
			switch f.Type {
			case flagEnum:
				line += " -x -a '" + strings.Join(f.Values, " ") + "'"
			case flagFile:
				line += " -r -F"
			case flagDir:
				line += " -x -a '(__fish_complete_directories)'"
			case flagString, flagInt:
				line += " -x"
			}
			line += " -d '" + quoteFish(f.Desc) + "'"
			fmt.Fprintln(bw, line)
		}

		switch {
		case cmd.TakesDirs:
			fmt.Fprintf(bw, "complete -c md2html -n %s -a '(__fish_complete_directories)'\n", cond)
		case len(cmd.Args) > 0:
			fmt.Fprintf(bw, "complete -c md2html -n %s -a '%s'\n", cond, strings.Join(cmd.Args, " "))
		case cmd.Name == "help":
			fmt.Fprintf(bw, "complete -c md2html -n %s -a '%s'\n", cond, commandNames(cmds, " "))
		}
	}

	return bw.Flush()
}

// quoteFish escapes s for use inside single quotes in fish.
func quoteFish(s string) string {
	return strings.NewReplacer(`\`, `\\`, "'", `\'`).Replace(s)
}

// ---------------------------------------------------------------------------
// PowerShell
// ---------------------------------------------------------------------------

func generatePowerShell(w io.Writer, cmds []commandDef) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# powershell completion for md2html")
	fmt.Fprintln(bw, "Register-ArgumentCompleter -Native -CommandName md2html -ScriptBlock {")
	fmt.Fprintln(bw, "    param($wordToComplete, $commandAst, $cursorPosition)")
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "    $elements = $commandAst.CommandElements | ForEach-Object { $_.ToString() }")
	fmt.Fprintln(bw, "    $commands = @{")
	for _, cmd := range cmds {
		fmt.Fprintf(bw, "        '%s' = '%s'\n", cmd.Name, quotePowerShell(cmd.Desc))
	}
	fmt.Fprintln(bw, "    }")
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "    if ($elements.Count -le 1 -or ($elements.Count -eq 2 -and $wordToComplete)) {")
	fmt.Fprintln(bw, "        $commands.GetEnumerator() | Where-Object { $_.Key -like \"$wordToComplete*\" } | Sort-Object Key | ForEach-Object {")
	fmt.Fprintln(bw, "            [System.Management.Automation.CompletionResult]::new($_.Key, $_.Key, 'ParameterValue', $_.Value)")
	fmt.Fprintln(bw, "        }")
	fmt.Fprintln(bw, "        return")
	fmt.Fprintln(bw, "    }")
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "    $values = switch ($elements[1]) {")
	for _, cmd := range cmds {
		var words []string
		switch {
		case len(cmd.Flags) > 0:
			words = flagWords(cmd.Flags)
		case len(cmd.Args) > 0:
			words = cmd.Args
		case cmd.Name == "help":
			words = strings.Fields(commandNames(cmds, " "))
		default:
			continue
		}
		quoted := make([]string, len(words))
		for i, word := range words {
			quoted[i] = "'" + quotePowerShell(word) + "'"
		}
		fmt.Fprintf(bw, "        '%s' { @(%s) }\n", cmd.Name, strings.Join(quoted, ", "))
	}
	fmt.Fprintln(bw, "        default { @() }")
	fmt.Fprintln(bw, "    }")
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "    $values | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {")
	fmt.Fprintln(bw, "        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)")
	fmt.Fprintln(bw, "    }")
	fmt.Fprintln(bw, "}")

	return bw.Flush()
}

// quotePowerShell escapes s for use inside single quotes in PowerShell.
func quotePowerShell(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
