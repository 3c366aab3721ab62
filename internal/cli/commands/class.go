package commands

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/traitkit/traitkit/internal/cli/ui"
	"github.com/traitkit/traitkit/introspect"
	"github.com/traitkit/traitkit/props"
	"github.com/traitkit/traitkit/watch"
)

// NewClassCommand creates the 'class' command
func NewClassCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "class [name]",
		Short: "Show one class's member surfaces",
		Long: `Show one class's member surfaces.

Displays the class's statics, instance members, and default attributes.
When no name is given, prompts interactively for one of the defined
classes.`,
		Example: `  # View the Post class
  traitkit class Post

  # Pick a class interactively
  traitkit class

  # JSON output for tooling
  traitkit class Post --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runClassCommand,
	}
}

func runClassCommand(cmd *cobra.Command, args []string) error {
	cfg, registry, err := loadSetup()
	if err != nil {
		return err
	}

	var name string
	if len(args) == 1 {
		name = args[0]
	} else {
		names := registry.Names()
		if len(names) == 0 {
			return fmt.Errorf("no classes defined; add a classes section to traitkit.yml")
		}
		prompt := &survey.Select{
			Message: "Choose a class:",
			Options: names,
		}
		if err := survey.AskOne(prompt, &name); err != nil {
			return err
		}
	}

	c, err := lookupClass(registry, name)
	if err != nil {
		return err
	}

	attrs, err := introspect.Attributes(c)
	if err != nil {
		return fmt.Errorf("extract attributes: %w", err)
	}

	if cfg.Format == "json" {
		detail := map[string]any{
			"name":       c.Name(),
			"parent":     c.Parent().Name(),
			"statics":    c.Statics(),
			"members":    memberNames(c.Methods()),
			"attributes": attrs,
		}
		out, err := json.MarshalIndent(detail, "", "  ")
		if err != nil {
			return fmt.Errorf("encode class: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s (parent: %s)\n\n", c.Name(), c.Parent().Name())
	renderMembers(cmd, cfg.NoColor, "STATIC", c.Statics())
	renderMembers(cmd, cfg.NoColor, "MEMBER", c.Methods())
	renderMembers(cmd, cfg.NoColor, "ATTRIBUTE", attrs)
	return nil
}

func renderMembers(cmd *cobra.Command, noColor bool, kind string, m props.Map) {
	table := ui.NewTable(cmd.OutOrStdout(), []string{kind, "VALUE"}, noColor)
	for _, name := range sortedKeys(m) {
		table.AddRow(name, watch.Serialize(m[name]))
	}
	table.Render()
	fmt.Fprintln(cmd.OutOrStdout())
}

func memberNames(m props.Map) []string {
	return sortedKeys(m)
}

func sortedKeys(m props.Map) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
