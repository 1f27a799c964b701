package main

import (
	"github.com/spf13/cobra"

	"regform/pkg/document"
)

func newDocumentCommand() *cobra.Command {
	var isPJ bool

	cmd := &cobra.Command{
		Use:   "document <number>",
		Short: "Validate a CPF, or a CNPJ with --pj",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := document.KindFromFlag(isPJ)
			number := args[0]

			formatted, ok := document.Format(number, kind)
			if !ok {
				formatted = number
			}
			if !document.Validate(number, kind) {
				cmd.Printf("invalid %s %s\n", kind.Label(), formatted)
				return errInvalid
			}
			cmd.Printf("valid %s %s\n", kind.Label(), formatted)
			return nil
		},
	}
	cmd.Flags().BoolVar(&isPJ, "pj", false, "validate as CNPJ (organization)")
	return cmd
}
