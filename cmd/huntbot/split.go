package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/susu3304/huntbot/internal/lootsplit"
	"gopkg.in/yaml.v3"
)

var errNoPlayers = errors.New("no party members detected, paste the whole Party Hunt log")

func newSplitCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "split [file]",
		Short: "Split a Party Hunt report read from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			text, err := io.ReadAll(in)
			if err != nil {
				return fmt.Errorf("read report: %w", err)
			}
			return writeSplit(cmd.OutOrStdout(), string(text), output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text, json or yaml")
	return cmd
}

func writeSplit(w io.Writer, text, format string) error {
	session := lootsplit.Parse(text)
	if len(session.Players) == 0 {
		return errNoPlayers
	}
	res := lootsplit.CalculateSplit(session)

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(res)
	case "text":
		_, err := io.WriteString(w, renderText(res))
		return err
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func renderText(res lootsplit.SplitResult) string {
	var b strings.Builder
	b.WriteString(lootsplit.Summary(res.Session))
	fmt.Fprintf(&b, "\n\nIndividual balance: %s\n\n", lootsplit.FormatAmount(res.IndividualBalance))

	groups := lootsplit.Instructions(res)
	if len(groups) == 0 {
		b.WriteString("No transfers needed.\n")
		return b.String()
	}
	for _, g := range groups {
		fmt.Fprintf(&b, "%s:\n", g.Payer)
		for _, t := range g.Transfers {
			fmt.Fprintf(&b, "  %s\n", lootsplit.BankCommand(t))
		}
	}
	return b.String()
}
