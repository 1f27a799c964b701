package main

import (
	"github.com/spf13/cobra"

	"regform/internal/registration/rules"
)

func newPasswordCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "password <password>",
		Short: "Show which password requirements are met",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report := rules.CheckPassword(args[0])
			for _, req := range []struct {
				name string
				ok   bool
			}{
				{"number", report.HasNumber},
				{"min length", report.MinLength},
				{"uppercase", report.HasUpper},
				{"lowercase", report.HasLower},
				{"special", report.HasSpecial},
			} {
				mark := "ok"
				if !req.ok {
					mark = "missing"
				}
				cmd.Printf("%-10s %s\n", req.name, mark)
			}
			if !report.OK() {
				return errInvalid
			}
			return nil
		},
	}
}
