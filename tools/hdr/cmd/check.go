package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zostay/go-httpheader/header/policy"
)

func newCheckCmd() *cobra.Command {
	var strict bool

	checkCmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Check the header against RFC 2045 and HTTP field syntax",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := policy.CheckStandard
			if strict {
				mode = policy.CheckStrict
			}
			return runCheck(cmd, args[0], mode)
		},
	}

	checkCmd.Flags().BoolVarP(&strict, "strict", "s", false, "also check rules that span fields")

	return checkCmd
}

func runCheck(cmd *cobra.Command, path string, mode policy.CheckMode) error {
	m, err := readMessage(cmd, path)
	if err != nil {
		return err
	}

	if err := policy.CheckWithMode(m.header, mode); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "ok")
	return nil
}
