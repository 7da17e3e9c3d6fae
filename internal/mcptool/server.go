package mcptool

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/comigor/unitconv-go/internal/convert"
	"github.com/comigor/unitconv-go/internal/units"
)

// New returns an MCP server exposing the converter as tools, so agents can
// call the same operations the browser form does. Tool failures are reported
// as MCP error results, mirroring the web shell's rendered error lines,
// never as transport errors.
func New() *server.MCPServer {
	s := server.NewMCPServer("unitconv", "0.1.0", server.WithToolCapabilities(false))

	s.AddTool(mcp.NewTool("list_units",
		mcp.WithDescription("List the unit labels of a measurement category, in display order."),
		mcp.WithString("category",
			mcp.Required(),
			mcp.Description("Measurement category, e.g. Length, Mass or Temperature."),
		),
	), handleListUnits)

	s.AddTool(mcp.NewTool("convert",
		mcp.WithDescription("Convert a numeric value between two units of a measurement category."),
		mcp.WithString("category",
			mcp.Required(),
			mcp.Description("Measurement category, e.g. Length, Mass or Temperature."),
		),
		mcp.WithNumber("value",
			mcp.Required(),
			mcp.Description("The numeric value to convert."),
		),
		mcp.WithString("from",
			mcp.Required(),
			mcp.Description("Source unit label, e.g. km."),
		),
		mcp.WithString("to",
			mcp.Required(),
			mcp.Description("Target unit label, e.g. m."),
		),
	), handleConvert)

	return s
}

func handleListUnits(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category, err := request.RequireString("category")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	labels, err := units.ListUnits(category)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(strings.Join(labels, "\n")), nil
}

func handleConvert(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category, err := request.RequireString("category")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	from, err := request.RequireString("from")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	to, err := request.RequireString("to")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	// A missing or non-numeric value flows through as the missing-input
	// case rather than a tool failure, matching the form behavior.
	var value *float64
	if v, err := request.RequireFloat("value"); err == nil {
		value = &v
	}

	res, cerr := convert.Convert(category, value, from, to)
	return mcp.NewToolResultText(convert.Render(res, cerr)), nil
}
