package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert     Convert a directory of markdown notes to HTML pages and an index")
	fmt.Fprintln(w, "  css         Print the stylesheet for class-based code highlighting")
	fmt.Fprintln(w, "  config      Print the effective configuration")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2html help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html convert [dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert every .md file directly inside dir to an .html page next to it,")
	fmt.Fprintln(w, "then write an index page linking to them.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  dir    Markdown directory (optional if config has input.dir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -i, --index <path>            Index page path (default: ../index.html)")
	fmt.Fprintln(w, "  -c, --config <name>           Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>             Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -k, --keep-going              Write the index even if some pages fail")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Templates:")
	fmt.Fprintln(w, "      --page-template <s>       Page template: default, minimal, or file path")
	fmt.Fprintln(w, "      --index-template <s>      Index template: default, minimal, or file path")
	fmt.Fprintln(w, "      --asset-path <dir>        Directory with templates/<name>/{page,index}.html")
	fmt.Fprintln(w, "                                Page templates use [BODY], [TITLE], [UPDATE];")
	fmt.Fprintln(w, "                                index templates use [LIST]. Write [TOC] in")
	fmt.Fprintln(w, "                                markdown to insert the table of contents.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page Text:")
	fmt.Fprintln(w, "      --title-prefix <s>        Text before the page name (default: ZETIN::)")
	fmt.Fprintln(w, "      --update-label <s>        Text before the timestamp (default: \"Last updated: \")")
	fmt.Fprintln(w, "      --date-format <s>         Timestamp format (default: YYYY-MM-DD HH:mm:ss)")
	fmt.Fprintln(w, "                                Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D,")
	fmt.Fprintln(w, "                                dddd, ddd, HH, hh, h, mm, ss, A, Z")
	fmt.Fprintln(w, "                                Presets: iso, datetime, european, us, long, rfc3339")
	fmt.Fprintln(w, "                                Use [text] to escape literals: [at] HH:mm")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Markdown:")
	fmt.Fprintln(w, "      --highlight-style <s>     Chroma style for code blocks (default: github)")
	fmt.Fprintln(w, "      --highlight-classes       Emit CSS classes instead of inline styles")
	fmt.Fprintln(w, "      --no-html                 Omit raw HTML in markdown")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                   Only show errors")
	fmt.Fprintln(w, "  -v, --verbose                 Show per-page details")
}

// printCSSUsage prints usage for the css command.
func printCSSUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html css [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the stylesheet matching pages built with --highlight-classes.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -s, --style <name>    Chroma style (default: from config, or github)")
	fmt.Fprintln(w, "  -l, --list            List available styles")
	fmt.Fprintln(w, "  -c, --config <name>   Config file name or path")
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html config [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the configuration after applying defaults, the config file and")
	fmt.Fprintln(w, "MD2HTML_* environment variables, and check the selected templates.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>   Config file name or path")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "css":
		printCSSUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: md2html version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: md2html help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	return nil
}
