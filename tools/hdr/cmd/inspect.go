package cmd

import (
	"fmt"
	"io"

	json "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/zostay/go-httpheader/header/value"
)

// Output formats for inspect.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// fieldReport describes one field for inspect.
type fieldReport struct {
	Index int    `json:"index" yaml:"index"`
	Kind  string `json:"kind" yaml:"kind"`
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

func newInspectCmd() *cobra.Command {
	var format string

	inspectCmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "List each header field with the kind it parses as",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0], format)
		},
	}

	inspectCmd.Flags().StringVarP(&format, "format", "o", FormatText, "output format: text, json, or yaml")

	return inspectCmd
}

func runInspect(cmd *cobra.Command, path, format string) error {
	m, err := readMessage(cmd, path)
	if err != nil {
		return err
	}

	fs := m.header.ListFields()
	reports := make([]fieldReport, len(fs))
	for i, f := range fs {
		v, err := value.Parse(f.Name(), f.Body())
		reports[i] = fieldReport{
			Index: i,
			Kind:  v.Kind().String(),
			Name:  v.Name(),
			Value: v.Value(),
		}
		if err != nil {
			reports[i].Error = err.Error()
		}
	}

	out := cmd.OutOrStdout()
	switch format {
	case FormatText:
		return writeText(out, cmd.ErrOrStderr(), reports)
	case FormatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	case FormatYAML:
		enc := yaml.NewEncoder(out)
		if err := enc.Encode(reports); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeText(out, errOut io.Writer, reports []fieldReport) error {
	for _, r := range reports {
		if r.Error != "" {
			_, _ = fmt.Fprintln(errOut, r.Error)
		}
		if _, err := fmt.Fprintf(out, "%s\t%s: %s\n", r.Kind, r.Name, r.Value); err != nil {
			return err
		}
	}
	return nil
}
