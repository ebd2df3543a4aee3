package cmd

import (
	"bytes"
	"fmt"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/zostay/go-httpheader/header/field"
)

func newRoundTripCmd() *cobra.Command {
	var fold bool

	roundTripCmd := &cobra.Command{
		Use:   "roundtrip FILE",
		Short: "Parse and rewrite a message, showing any difference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoundTrip(cmd, args[0], fold)
		},
	}

	roundTripCmd.Flags().BoolVarP(&fold, "fold", "f", false, "refold every field with the default folding")

	return roundTripCmd
}

func runRoundTrip(cmd *cobra.Command, path string, fold bool) error {
	m, err := readMessage(cmd, path)
	if err != nil {
		return err
	}

	if fold {
		m.header.SetFoldEncoding(field.DefaultFoldEncoding)
		for _, f := range m.header.ListFields() {
			f.SetBody(f.Body())
		}
	}

	rt := m.Bytes()
	if bytes.Equal(m.orig, rt) {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "identical")
		return nil
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(string(m.orig), string(rt), false)
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), dmp.DiffPrettyText(diffs))

	return nil
}
