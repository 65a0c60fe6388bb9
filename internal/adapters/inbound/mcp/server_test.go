package mcp_test

import (
	"testing"

	mcpadapter "github.com/authentiq/authentiq/internal/adapters/inbound/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAuthentiqMCPServer(t *testing.T) {
	s := mcpadapter.NewAuthentiqMCPServer("")
	require.NotNil(t, s)
}

func TestMCPServerHasTools(t *testing.T) {
	s := mcpadapter.NewAuthentiqMCPServer("")
	require.NotNil(t, s)

	tools := s.ListTools()
	require.NotNil(t, tools)

	expectedTools := []string{
		"authentiq_score",
		"authentiq_score_detailed",
		"authentiq_config",
	}

	for _, name := range expectedTools {
		_, exists := tools[name]
		assert.True(t, exists, "tool %q should be registered", name)
	}

	assert.Len(t, tools, len(expectedTools), "should have exactly %d tools", len(expectedTools))
}
