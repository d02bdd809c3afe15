package cli

import (
	"os"

	"github.com/spf13/cobra"

	wellio "github.com/matzehuels/wellsketch/pkg/io"
)

func (c *CLI) exampleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "example [file]",
		Short: "Write the sample well description",
		Long: `Write the sample five-string well description, with cement, tubing and a
production packer, to file or to stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := wellio.Sample()
			if len(args) == 0 {
				return wellio.WriteTOML(doc, c.Out)
			}
			path := args[0]
			if _, err := os.Stat(path); err == nil {
				printWarning(c.Out, "Overwriting %s", path)
			}
			if err := wellio.ExportTOML(doc, path); err != nil {
				return err
			}
			printSuccess(c.Out, "Wrote %s", path)
			printNextStep(c.Out, "Draw it", "wellsketch render "+path)
			return nil
		},
	}
}
