package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"remaster/internal/preset"
)

func newPresetsCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List available mastering presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(ctx.catalog.List()))
			for _, p := range ctx.catalog.List() {
				settings := p.Settings()
				rows = append(rows, []string{
					p.Key,
					p.Name,
					fmt.Sprintf("%.3g", settings.Threshold),
					formatFormats(p.OutputFormats),
					p.Description,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Preset", "Name", "Threshold", "Formats", "Description"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft, alignLeft},
			))
			return nil
		},
	}

	cmd.AddCommand(newPresetsShowCommand(ctx))
	return cmd
}

func newPresetsShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <preset>",
		Short: "Show one preset's full configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := ctx.catalog.Get(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			settings := p.Settings()

			fmt.Fprintf(out, "%s — %s\n", p.Name, p.Description)
			fmt.Fprintf(out, "  threshold: %g\n", settings.Threshold)
			fmt.Fprintf(out, "  rms correction steps: %d\n", settings.RMSCorrectionSteps)
			fmt.Fprintf(out, "  lowess fraction: %g\n", settings.LowessFrac)
			fmt.Fprintf(out, "  limiter: %t, normalize: %t\n", p.UseLimiter, p.Normalize)
			fmt.Fprintf(out, "  formats: %s\n", formatFormats(p.OutputFormats))

			if len(p.Characteristics) > 0 {
				title := cases.Title(language.English)
				traits := make([]string, 0, len(p.Characteristics))
				for trait := range p.Characteristics {
					traits = append(traits, trait)
				}
				sort.Strings(traits)
				fmt.Fprintln(out, "  characteristics:")
				for _, trait := range traits {
					label := title.String(strings.ReplaceAll(trait, "_", " "))
					fmt.Fprintf(out, "    %s: %.2f\n", label, p.Characteristics[trait])
				}
			}
			return nil
		},
	}
}

func formatFormats(formats []preset.OutputFormat) string {
	names := make([]string, 0, len(formats))
	for _, f := range formats {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}
