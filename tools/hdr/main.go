package main

import (
	"github.com/spf13/cobra"

	_ "github.com/zostay/go-httpheader/header/encoding"
	"github.com/zostay/go-httpheader/tools/hdr/cmd"
)

func main() {
	err := cmd.Execute()
	cobra.CheckErr(err)
}
