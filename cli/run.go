package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcpup/mcpup/api"
	"github.com/mcpup/mcpup/api/store"
	"github.com/mcpup/mcpup/log"
	"github.com/mcpup/mcpup/mcp"
)

var (
	// Command line flags
	serverFlag string
	configFlag configPathFlag
	dryRunFlag bool
	forceFlag  bool

	// Root command
	rootCmd = &cobra.Command{
		Use:           "mcpup [source]",
		Short:         "Install MCP server configurations from documentation",
		SilenceErrors: true,
		Long: `mcpup extracts MCP server configuration blocks from READMEs, JSON files,
and URLs, and merges them into your server configuration store.

A source can be:
  - a GitHub repository URL or owner/repo shorthand
  - a raw content URL or documentation page
  - a path to a local JSON file
  - a literal JSON configuration string`,
		Args: func(cmd *cobra.Command, args []string) error {
			// Subcommands validate their own arguments
			if cmd.CommandPath() != "mcpup" {
				return nil
			}
			if len(args) != 1 {
				return fmt.Errorf("accepts 1 arg, but received %d", len(args))
			}
			return nil
		},
		RunE: runRoot,
	}

	// Version information
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"

	// Version command
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  "Print detailed version information about mcpup",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("mcpup version %s\n", Version)
			fmt.Printf("  commit: %s\n", Commit)
			fmt.Printf("  built:  %s\n", Date)
		},
	}
)

func init() {
	rootCmd.Flags().StringVarP(&serverFlag, "server", "s", "", "Install only the named server from the extracted configuration")
	rootCmd.PersistentFlags().VarP(&configFlag, "config", "c", "Path to the server configuration store (default server_config.json)")
	rootCmd.Flags().BoolVarP(&dryRunFlag, "dry-run", "n", false, "Print the extracted configuration without writing the store")
	rootCmd.Flags().BoolVarP(&forceFlag, "force", "f", false, "Bypass the fetch cache")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(mcp.Command())

	log.EnableGlobalHTTP()
}

// Run executes the main CLI functionality
func Run() error {
	return rootCmd.Execute()
}

func runRoot(cmd *cobra.Command, args []string) error {
	src := args[0]

	reg, err := extractRegistry(src)
	if err != nil {
		return err
	}

	if dryRunFlag {
		out, err := api.NewResult(reg, nil).PrettyJSON()
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	st := store.New(configFlag.Value)
	merged, err := st.Apply(reg)
	if err != nil {
		return err
	}

	fmt.Printf("Added %d server(s) to %s:\n", len(reg), st.Path())
	printLaunchSummary(reg)
	fmt.Printf("Store now holds %d server(s).\n", len(merged))

	return nil
}

func extractRegistry(src string) (api.Registry, error) {
	if serverFlag != "" {
		return api.GetServerConfig(src, serverFlag, forceFlag)
	}
	return api.GetConfig(src, forceFlag)
}

// printLaunchSummary prints one line per server with its launch command
// when the entry decodes to one
func printLaunchSummary(reg api.Registry) {
	for _, name := range reg.Names() {
		spec, err := reg[name].LaunchSpec()
		if err != nil {
			fmt.Printf("  %s\n", name)
			continue
		}
		fmt.Printf("  %s: %s %s\n", name, spec.Command, strings.Join(spec.Args, " "))
	}
}
