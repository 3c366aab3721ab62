package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/traitkit/traitkit/introspect"
	"github.com/traitkit/traitkit/traits"
)

// NewInjectCommand creates the 'inject' command
func NewInjectCommand() *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "inject <source> [destination]",
		Short: "Copy a class's behavioral surface into another class",
		Long: `Copy a class's behavioral surface into another class.

Copies the source's statics, instance members, and default attributes
into the destination, then prints the destination's resulting members.
With no destination, the source's parent class receives the injection.
The copies are physical; later changes to the source do not propagate.`,
		Example: `  # Mix Timestamps into Post
  traitkit inject Timestamps Post

  # Replace colliding members instead of keeping the destination's
  traitkit inject Timestamps Post --overwrite

  # Inject into the source's parent class
  traitkit inject Timestamps`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInjectCommand(cmd, args, overwrite)
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace members the destination already has")
	return cmd
}

func runInjectCommand(cmd *cobra.Command, args []string, overwrite bool) error {
	cfg, registry, err := loadSetup()
	if err != nil {
		return err
	}

	source, err := lookupClass(registry, args[0])
	if err != nil {
		return err
	}

	var dest *introspect.Class
	if len(args) == 2 {
		dest, err = lookupClass(registry, args[1])
		if err != nil {
			return err
		}
	} else {
		dest = introspect.ResolveParent(source)
	}

	opts := []traits.Option{traits.Into(dest)}
	if overwrite {
		opts = append(opts, traits.Overwrite())
	}
	if err := traits.Inject(source, opts...); err != nil {
		return err
	}

	attrs, err := introspect.Attributes(dest)
	if err != nil {
		return fmt.Errorf("extract attributes: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Injected %s into %s\n\n", source.Name(), dest.Name())
	renderMembers(cmd, cfg.NoColor, "STATIC", dest.Statics())
	renderMembers(cmd, cfg.NoColor, "MEMBER", dest.Methods())
	renderMembers(cmd, cfg.NoColor, "ATTRIBUTE", attrs)
	return nil
}
