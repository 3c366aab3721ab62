package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/traitkit/traitkit/watch"
)

// NewTraceCommand creates the 'trace' command
func NewTraceCommand() *cobra.Command {
	var label string

	cmd := &cobra.Command{
		Use:   "trace <class>",
		Short: "Construct a traced instance and replay its attribute reads",
		Long: `Construct a traced instance and replay its attribute reads.

Builds one default instance of the class, wraps it in the access tracer,
then reads every attribute through the wrapper. Each read emits one log
line of the form:

  Reading <label>.<attribute> -> <value>`,
		Example: `  # Trace the Post class under the default label
  traitkit trace Post

  # Use a custom root label
  traitkit trace Post --label post`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTraceCommand(cmd, args[0], label)
		},
	}

	cmd.Flags().StringVar(&label, "label", "root", "Root label for access paths")
	return cmd
}

func runTraceCommand(cmd *cobra.Command, name, label string) error {
	_, registry, err := loadSetup()
	if err != nil {
		return err
	}

	c, err := lookupClass(registry, name)
	if err != nil {
		return err
	}
	inst, err := c.New()
	if err != nil {
		return fmt.Errorf("construct %s: %w", name, err)
	}

	tracer := watch.New(watch.WithSink(watch.WriterSink(cmd.OutOrStdout())))
	wrapped := tracer.Watch(inst, label)
	node, ok := wrapped.(*watch.Node)
	if !ok {
		return fmt.Errorf("trace %s: instance is not traceable", name)
	}

	names := inst.Names()
	sort.Strings(names)
	for _, attr := range names {
		node.Get(attr)
	}
	return nil
}
