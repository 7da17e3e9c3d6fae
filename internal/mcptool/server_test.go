package mcptool

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/require"
)

func callReq(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func textOf(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return tc.Text
}

func TestListUnitsTool(t *testing.T) {
	res, err := handleListUnits(context.Background(), callReq("list_units", map[string]any{
		"category": "Temperature",
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)
	require.Equal(t, "°C\n°F\nK", textOf(t, res))
}

func TestListUnitsTool_UnknownCategory(t *testing.T) {
	res, err := handleListUnits(context.Background(), callReq("list_units", map[string]any{
		"category": "Currency",
	}))
	require.NoError(t, err)
	require.True(t, res.IsError)
}

func TestListUnitsTool_MissingArgument(t *testing.T) {
	res, err := handleListUnits(context.Background(), callReq("list_units", map[string]any{}))
	require.NoError(t, err)
	require.True(t, res.IsError)
}

func TestConvertTool(t *testing.T) {
	res, err := handleConvert(context.Background(), callReq("convert", map[string]any{
		"category": "Length",
		"value":    float64(1),
		"from":     "km",
		"to":       "m",
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)
	require.Equal(t, "1 km = 1000 m", textOf(t, res))
}

func TestConvertTool_MissingValue(t *testing.T) {
	// A missing value renders the same missing-input line the form shows,
	// as tool output rather than a tool failure.
	res, err := handleConvert(context.Background(), callReq("convert", map[string]any{
		"category": "Length",
		"from":     "km",
		"to":       "m",
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)
	require.Equal(t, "❌ Enter a number.", textOf(t, res))
}

func TestNew_RegistersTools(t *testing.T) {
	require.NotNil(t, New())
}
