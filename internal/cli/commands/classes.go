package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/traitkit/traitkit/internal/cli/ui"
	"github.com/traitkit/traitkit/introspect"
)

// NewClassesCommand creates the 'classes' command
func NewClassesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "classes",
		Short: "List the classes defined in traitkit.yml",
		Long: `List the classes defined in traitkit.yml.

Shows each class with its parent and the sizes of its member surfaces.
Use the 'class <name>' command to view one class in detail.`,
		Example: `  # List all classes
  traitkit classes

  # List classes in JSON format
  traitkit classes --format json`,
		RunE: runClassesCommand,
	}
}

type classSummary struct {
	Name       string `json:"name"`
	Parent     string `json:"parent"`
	Statics    int    `json:"statics"`
	Members    int    `json:"members"`
	Attributes int    `json:"attributes"`
}

func runClassesCommand(cmd *cobra.Command, args []string) error {
	cfg, registry, err := loadSetup()
	if err != nil {
		return err
	}

	summaries := make([]classSummary, 0)
	for _, c := range registry.Classes() {
		summaries = append(summaries, classSummary{
			Name:       c.Name(),
			Parent:     c.Parent().Name(),
			Statics:    len(c.Statics()),
			Members:    len(c.Methods()),
			Attributes: len(c.Template()),
		})
	}

	if cfg.Format == "json" {
		out, err := json.MarshalIndent(summaries, "", "  ")
		if err != nil {
			return fmt.Errorf("encode classes: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	table := ui.NewTable(cmd.OutOrStdout(), []string{"NAME", "PARENT", "STATICS", "MEMBERS", "ATTRIBUTES"}, cfg.NoColor)
	for _, s := range summaries {
		table.AddRow(s.Name, s.Parent,
			fmt.Sprintf("%d", s.Statics),
			fmt.Sprintf("%d", s.Members),
			fmt.Sprintf("%d", s.Attributes))
	}
	table.Render()
	return nil
}

// lookupClass resolves a class by name, attaching "did you mean"
// suggestions to the error when the name is unknown.
func lookupClass(registry *introspect.Registry, name string) (*introspect.Class, error) {
	c, err := registry.Lookup(name)
	if err == nil {
		return c, nil
	}
	if suggestions := ui.Suggest(name, registry.Names()); len(suggestions) > 0 {
		return nil, fmt.Errorf("class not found: %s (did you mean %s?)", name, strings.Join(suggestions, ", "))
	}
	return nil, err
}
