package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/zostay/go-httpheader/header"
	"github.com/zostay/go-httpheader/header/field"
)

// NewRootCmd builds the hdr command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "hdr",
		Short:         "Inspect, check, and transcode message headers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newInspectCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newRoundTripCmd())
	rootCmd.AddCommand(newDecodeCmd())
	rootCmd.AddCommand(newEncodeCmd())

	return rootCmd
}

// Execute builds the hdr command tree and runs it against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// message is a file split into its parsed header and its body.
type message struct {
	orig   []byte
	header *header.Header
	body   []byte
	ended  bool // a blank line ended the header
}

// readMessage reads the named file, or standard input for "-", and parses
// the header at its start. A message with no blank line after the header is
// treated as all header. Junk before the first field is reported on stderr
// and otherwise ignored.
func readMessage(cmd *cobra.Command, path string) (*message, error) {
	var (
		orig []byte
		err  error
	)
	if path == "-" {
		orig, err = io.ReadAll(cmd.InOrStdin())
	} else {
		orig, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", path, err)
	}

	head, body, lb, err := header.Split(orig)
	ended := err == nil
	if err != nil && !errors.Is(err, header.ErrNoHeaderEnd) {
		return nil, err
	}

	h, err := header.Parse(head, lb)
	var badStartErr *field.BadStartError
	if errors.As(err, &badStartErr) {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "skipped %d bytes of junk before the header\n",
			len(badStartErr.BadStart))
	} else if err != nil {
		return nil, fmt.Errorf("unable to parse header of %s: %w", path, err)
	}

	return &message{orig, h, body, ended}, nil
}

// Bytes returns the header followed by the body.
func (m *message) Bytes() []byte {
	buf := &bytes.Buffer{}
	_, _ = m.header.WriteTo(buf)
	if m.header.Len() == 0 && m.ended {
		buf.Write(m.header.Break().Bytes())
	}
	buf.Write(m.body)
	return buf.Bytes()
}
