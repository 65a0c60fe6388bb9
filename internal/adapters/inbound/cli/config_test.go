package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/authentiq/authentiq/internal/adapters/inbound/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigShow_Defaults(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"config", "show", "--config", ""})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "person_weights:")
	assert.Contains(t, buf.String(), "activation:")
	assert.Contains(t, buf.String(), "penalty_multipliers:")
}

func TestConfigShow_JSON(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"config", "show", "--json"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), `"person_weights"`)
	assert.Contains(t, buf.String(), `"penalty_thresholds"`)
}

func TestConfigShow_MergesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "has.yaml")
	require.NoError(t, os.WriteFile(path, []byte("activation:\n  bot: 0.9\n"), 0o644))

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"config", "show", "--config", path})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "bot: 0.9")
}

func TestConfigValidate_Valid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "has.yaml")
	require.NoError(t, os.WriteFile(path, []byte("activation:\n  person: 0.5\n"), 0o644))

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"config", "validate", path})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "valid")
}

func TestConfigValidate_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "has.yaml")
	require.NoError(t, os.WriteFile(path, []byte("activation:\n  bot: 1.5\n"), 0o644))

	cmd := cli.NewRootCmdForTest()
	cmd.SetArgs([]string{"config", "validate", path})
	assert.Error(t, cmd.Execute())
}

func TestConfigValidate_UnknownField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "has.yaml")
	require.NoError(t, os.WriteFile(path, []byte("activaton:\n  bot: 0.9\n"), 0o644))

	cmd := cli.NewRootCmdForTest()
	cmd.SetArgs([]string{"config", "validate", path})
	assert.Error(t, cmd.Execute())
}
