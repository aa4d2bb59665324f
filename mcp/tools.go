package mcp

import (
	"context"
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"

	"github.com/mcpup/mcpup/api"
	"github.com/mcpup/mcpup/api/store"
)

var validate = validator.New()

func InitTools() []server.ServerTool {
	tools := []server.ServerTool{}

	tools = append(tools, newServerTool(GetMCPConfig()))
	tools = append(tools, newServerTool(InstallMCPConfig()))

	return tools
}

// GetMCPConfig extracts server configurations from a source and returns
// them without touching the store
func GetMCPConfig() (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"get_mcp_config",
			mcp.WithDescription("Extract MCP server configuration from a README, URL, file, or JSON string"),
			mcp.WithString("source", mcp.Required(), mcp.Description("GitHub repository, URL, file path, or literal JSON")),
			mcp.WithString("server", mcp.Description("Return only the named server from the extracted configuration")),
			mcp.WithBoolean("force_update", mcp.Description("Bypass the fetch cache")),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			type ToolArguments struct {
				Source      string `mapstructure:"source" validate:"required"`
				Server      string `mapstructure:"server" validate:"omitempty"`
				ForceUpdate bool   `mapstructure:"force_update"`
			}
			var args ToolArguments
			if err := mapstructure.Decode(req.Params.Arguments, &args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			if err := validate.StructCtx(ctx, args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			reg, err := extractRegistry(args.Source, args.Server, args.ForceUpdate)
			result := api.NewResult(reg, err)

			b, err := json.Marshal(result)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			if !result.OK() {
				return mcp.NewToolResultError(string(b)), nil
			}

			return mcp.NewToolResultText(string(b)), nil
		}
}

// InstallMCPConfig extracts server configurations from a source and merges
// them into the configuration store
func InstallMCPConfig() (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"install_mcp_config",
			mcp.WithDescription("Extract MCP server configuration from a source and merge it into the configuration store"),
			mcp.WithString("source", mcp.Required(), mcp.Description("GitHub repository, URL, file path, or literal JSON")),
			mcp.WithString("server", mcp.Description("Install only the named server from the extracted configuration")),
			mcp.WithString("config_path", mcp.Description("Path to the configuration store (default server_config.json)")),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			type ToolArguments struct {
				Source     string `mapstructure:"source" validate:"required"`
				Server     string `mapstructure:"server" validate:"omitempty"`
				ConfigPath string `mapstructure:"config_path" validate:"omitempty"`
			}
			var args ToolArguments
			if err := mapstructure.Decode(req.Params.Arguments, &args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			if err := validate.StructCtx(ctx, args); err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			reg, err := extractRegistry(args.Source, args.Server, false)
			if err != nil {
				b, merr := json.Marshal(api.NewResult(nil, err))
				if merr != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return mcp.NewToolResultError(string(b)), nil
			}

			st := store.New(args.ConfigPath)
			merged, err := st.Apply(reg)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			type installInfo struct {
				Installed []string `json:"installed"`
				Path      string   `json:"path"`
				Total     int      `json:"total"`
			}
			b, err := json.Marshal(installInfo{
				Installed: reg.Names(),
				Path:      st.Path(),
				Total:     len(merged),
			})
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			return mcp.NewToolResultText(string(b)), nil
		}
}

func extractRegistry(src, serverName string, forceUpdate bool) (api.Registry, error) {
	if serverName != "" {
		return api.GetServerConfig(src, serverName, forceUpdate)
	}
	return api.GetConfig(src, forceUpdate)
}
