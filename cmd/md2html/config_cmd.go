package main

import (
	"fmt"
	"strings"

	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/hints"
	"github.com/alnah/go-md2html/internal/logger"
	"github.com/alnah/go-md2html/internal/yamlutil"
)

// runConfig prints the effective configuration as YAML and warns about
// templates missing placeholders.
func runConfig(args []string, env *Environment) error {
	flags, err := parseConfigFlags(args)
	if err != nil {
		return usageError(err)
	}

	cfg, err := loadConfig(flags.config, loadEnvConfig(), logger.Discard())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return withConfigHint(err)
	}

	out, err := yamlutil.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if _, err := env.Stdout.Write(out); err != nil {
		return err
	}

	conv, err := newConverter(cfg, env.clock())
	if err != nil {
		return err
	}
	checks := []struct {
		kind    assets.TemplateKind
		missing []string
	}{
		{assets.KindPage, conv.MissingPagePlaceholders()},
		{assets.KindIndex, conv.MissingIndexPlaceholders()},
	}
	for _, c := range checks {
		if len(c.missing) == 0 {
			continue
		}
		fmt.Fprintf(env.Stderr, "warning: %s template has no %s%s\n",
			c.kind, strings.Join(c.missing, ", "), hints.ForMissingPlaceholders(c.missing))
	}
	return nil
}
