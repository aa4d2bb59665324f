package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/morikuni/failure/v2"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/mcpup/mcpup/api"
)

var (
	browserFlag bool

	showCmd = &cobra.Command{
		Use:   "show [source]",
		Short: "Show the configuration extracted from a source without installing it",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
)

func init() {
	showCmd.Flags().BoolVarP(&browserFlag, "browser", "b", false, "Open the resolved source in the browser instead")
	showCmd.Flags().BoolVarP(&forceFlag, "force", "f", false, "Bypass the fetch cache")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	src := args[0]

	if browserFlag {
		u := api.BrowserURL(src)
		if u == "" {
			return failure.New(NoBrowserURL,
				failure.Message("Source has no browser-viewable URL"),
				failure.Context{"source": src},
			)
		}
		fmt.Printf("Opening source in browser: %s\n", u)
		return browser.OpenURL(u)
	}

	reg, err := api.GetConfig(src, forceFlag)
	if err != nil {
		return err
	}

	out, err := api.NewResult(reg, nil).PrettyJSON()
	if err != nil {
		return err
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Println(out)
		return nil
	}

	// Render as a fenced document so glamour highlights the JSON
	doc := fmt.Sprintf("# %s\n\n```json\n%s\n```\n", src, out)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return failure.Wrap(err)
	}

	rendered, err := renderer.Render(doc)
	if err != nil {
		return failure.Wrap(err)
	}

	return RunPager(rendered)
}
