package cmd

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zostay/go-httpheader/header/policy"
	"github.com/zostay/go-httpheader/header/value"
	"github.com/zostay/go-httpheader/transfer"
)

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode FILE",
		Short: "Write the body decoded per its Content-Transfer-Encoding",
		Args:  cobra.ExactArgs(1),
		RunE:  runDecode,
	}
}

func runDecode(cmd *cobra.Command, args []string) error {
	m, err := readMessage(cmd, args[0])
	if err != nil {
		return err
	}

	r := transfer.ApplyTransferDecoding(m.header, bytes.NewReader(m.body))
	if _, err := io.Copy(cmd.OutOrStdout(), r); err != nil {
		return fmt.Errorf("unable to decode body: %w", err)
	}

	return nil
}

func newEncodeCmd() *cobra.Command {
	var encoding string

	encodeCmd := &cobra.Command{
		Use:   "encode FILE",
		Short: "Rewrite the message with its body in another transfer encoding",
		Long: `Rewrite the message with its body in another transfer encoding.

The body of FILE is taken to be raw, already decoded content. The output is
the header with its Content-Transfer-Encoding replaced, followed by the body
encoded to match.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(cmd, args[0], encoding)
		},
	}

	encodeCmd.Flags().StringVarP(&encoding, "encoding", "e", transfer.Base64, "the Content-Transfer-Encoding to apply")

	return encodeCmd
}

func runEncode(cmd *cobra.Command, path, encoding string) error {
	cte := value.NewContentTransferEncoding(encoding)
	if err := policy.CheckTransferEncoding(cte); err != nil {
		return err
	}

	m, err := readMessage(cmd, path)
	if err != nil {
		return err
	}

	m.header.SetTransferEncoding(cte)

	out := cmd.OutOrStdout()
	if _, err := m.header.WriteTo(out); err != nil {
		return err
	}

	w := transfer.ApplyTransferEncoding(m.header, out)
	if _, err := w.Write(m.body); err != nil {
		return fmt.Errorf("unable to encode body: %w", err)
	}

	return w.Close()
}
