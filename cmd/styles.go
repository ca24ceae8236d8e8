package cmd

import (
	"fmt"

	"github.com/shouni/go-postcard-kit/pkg/domain"

	"github.com/spf13/cobra"
)

// stylesCmd は、選択可能な画風とトーンの一覧を表示するのだ。
var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "選択できる画風とキャプショントーンの一覧を表示するのだ。",
	RunE:  stylesCommand,
}

func init() {
}

func stylesCommand(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Art styles (--art-style):")
	for _, opt := range domain.ArtStyleOptions() {
		fmt.Fprintf(out, "  %-24s %s (%s)\n", opt.Value, opt.Label, opt.Description)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Caption tones (--caption-tone):")
	for _, opt := range domain.CaptionToneOptions() {
		fmt.Fprintf(out, "  %-24s %s (%s)\n", opt.Value, opt.Label, opt.Description)
	}

	return nil
}
