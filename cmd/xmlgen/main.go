package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmcclimon/simplexml"
)

func main() {
	if err := DefineRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func DefineRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "xmlgen [script]",
		Short:        "Render a YAML tag script as an XML document",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         RunGen,
	}

	cmd.Flags().StringP("out", "o", "", "write the document to a file instead of stdout")
	cmd.Flags().Bool("indent", false, "indent the output, overriding the script")
	cmd.Flags().String("encoding", "", "output encoding, overriding the script")

	return cmd
}

func RunGen(cmd *cobra.Command, args []string) error {
	var src io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		src = f
	}

	script, err := LoadScript(src)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("indent") {
		script.Indent, _ = cmd.Flags().GetBool("indent")
	}
	if cmd.Flags().Changed("encoding") {
		script.Encoding, _ = cmd.Flags().GetString("encoding")
	}

	options, err := script.Options()
	if err != nil {
		return err
	}

	if out, _ := cmd.Flags().GetString("out"); out != "" {
		return simplexml.WriteFile(out, script.Run, options...)
	}
	return simplexml.WriteDocument(cmd.OutOrStdout(), script.Run, options...)
}
