package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/tooltip/pkg/tooltip"
)

var strategyDescriptions = map[string]string{
	tooltip.StrategyKeyValue: "one \"key: value\" row per model field",
	tooltip.StrategyTable:    "header and data rows in table layout",
	tooltip.StrategySeries:   "optional title, then icon/name/value per series",
	tooltip.StrategyRaw:      "the model is the descriptor",
}

func strategiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List the built-in content strategies",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			reg := tooltip.DefaultRegistry()
			out := cmd.OutOrStdout()
			for _, name := range reg.Names() {
				marker := " "
				if name == reg.Default() {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %-9s %s\n", marker, name, strategyDescriptions[name])
			}
		},
	}
}
