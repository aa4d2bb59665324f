package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/morikuni/failure/v2"
	"github.com/spf13/cobra"

	"github.com/mcpup/mcpup/api/store"
)

var injectCmd = &cobra.Command{
	Use:   "inject [file]",
	Short: "Deep-merge a trusted configuration file into the store",
	Long: `inject merges a fully formed configuration file into the store recursively,
key by key, including nested objects.

Unlike the default install flow, which overwrites overlapping server entries
wholesale, inject preserves fields that the incoming file does not mention.
Only use it with configuration files you trust; heuristically extracted
configurations should go through the default flow instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runInject,
}

func init() {
	rootCmd.AddCommand(injectCmd)
}

func runInject(cmd *cobra.Command, args []string) error {
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		return failure.New(InvalidConfigFile,
			failure.Message(fmt.Sprintf("Cannot read configuration file %s", path)),
			failure.Context{"path": path, "error": err.Error()},
		)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return failure.New(InvalidConfigFile,
			failure.Message(fmt.Sprintf("Configuration file %s is not valid JSON", path)),
			failure.Context{"path": path, "error": err.Error()},
		)
	}

	st := store.New(configFlag.Value)
	reg, err := st.InjectConfig(doc)
	if err != nil {
		return err
	}

	fmt.Printf("Merged %s into %s; store now holds %d server(s).\n", path, st.Path(), len(reg))
	return nil
}
