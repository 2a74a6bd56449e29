package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"srcmetrics/src/model"
	"srcmetrics/src/service/detector"
)

func (h *Handler) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", h.cfg.Agent.Name, h.cfg.Agent.Version)
		},
	}
}

func (h *Handler) metricsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "List available metrics",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, m := range model.AllMetrics() {
				fmt.Fprintf(out, "  %-28s %s\n", m.String(), m.Description())
			}

			fmt.Fprintln(out, "")
			fmt.Fprintln(out, "Limit checks:")
			for _, name := range detector.NewRunner(h.cfg.Limits).ListDetectors() {
				limits := h.cfg.Limits.File
				if name == "function_limits" {
					limits = h.cfg.Limits.Function
				}
				fmt.Fprintf(out, "  - %s\n", name)
				for _, metric := range sortedNames(limits) {
					fmt.Fprintf(out, "      %-26s <= %d\n", metric, limits[metric])
				}
			}
		},
	}
}

func sortedNames(limits map[string]int) []string {
	names := make([]string, 0, len(limits))
	for name := range limits {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
