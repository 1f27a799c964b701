package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// errInvalid signals a failed check. Its message is already printed.
var errInvalid = errors.New("invalid")

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "regctl",
		Short: "Registration form checks",
		Long: `regctl runs the registration form rules offline: CPF/CNPJ checksums
and password requirements.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newDocumentCommand(), newPasswordCommand())
	return cmd
}

func main() {
	cmd := newRootCommand()
	cmd.SetOut(os.Stdout)
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errInvalid) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
