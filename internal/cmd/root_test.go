package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/reactkit/crc/internal/errors"
	"github.com/reactkit/crc/internal/testutil"
)

// setupProject creates a project with src/components and makes it the
// working directory for the rest of the test.
func setupProject(t *testing.T) string {
	t.Helper()
	t.Setenv("CRC_CONFIG", "")

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src", "components"), 0o755))
	t.Chdir(dir)
	return dir
}

func executeCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func requireExitCode(t *testing.T, err error, code int) *oerrors.ExitError {
	t.Helper()
	require.Error(t, err)
	var exitErr *oerrors.ExitError
	require.True(t, errors.As(err, &exitErr), "expected ExitError, got %T: %v", err, err)
	assert.Equal(t, code, exitErr.Code, "exit code %s", oerrors.ExitCodeName(exitErr.Code))
	return exitErr
}

func readProjectFile(t *testing.T, dir string, rel ...string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(append([]string{dir}, rel...)...))
	require.NoError(t, err)
	return string(data)
}

func TestNewRootCmd(t *testing.T) {
	cmd := NewRootCmd()

	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	for _, flag := range []string{
		"withcontainer", "notest", "reactnative", "createindex", "functional",
		"uppercase", "storybook", "dry-run", "legacy-casing",
	} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %s", flag)
	}
	assert.NotNil(t, cmd.Flags().ShorthandLookup("f"))
	assert.NotNil(t, cmd.Flags().ShorthandLookup("u"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("verbose"))

	names := make([]string, 0)
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"config", "templates", "version"})
}

func TestRootCmd_GeneratesComponent(t *testing.T) {
	dir := setupProject(t)

	out, err := executeCmd(t, "src/components/button")
	require.NoError(t, err)

	assert.Contains(t, out, "Created new React components at: src/components/button")
	assert.Contains(t, out, "Finished in")
	assert.Contains(t, out, "Success!")

	assert.Equal(t, []string{
		"src/components/button/Button.js",
		"src/components/button/Render.jsx",
		"src/components/button/Render.native.js",
		"src/components/button/__tests__/button.test.jsx",
		"src/components/button/__tests__/button.test.native.js",
	}, testutil.ListFiles(t, dir))

	compDir := filepath.Join(dir, "src", "components", "button")
	assert.Contains(t, readProjectFile(t, compDir, "Button.js"), "export default injectIntl(Button, { withRef: true })")
}

func TestRootCmd_Flags(t *testing.T) {
	dir := setupProject(t)

	_, err := executeCmd(t, "src/components/button", "card", "--withcontainer", "--notest", "-f", "--storybook")
	require.NoError(t, err)

	assert.NoDirExists(t, filepath.Join(dir, "src", "components", "button", "__tests__"))
	assert.FileExists(t, filepath.Join(dir, "src", "containers", "ButtonContainer.js"))
	assert.FileExists(t, filepath.Join(dir, "src", "containers", "CardContainer.js"))
	assert.FileExists(t, filepath.Join(dir, "src", "components", "card", "Card.stories.jsx"))
	assert.Contains(t, readProjectFile(t, dir, "src", "components", "card", "Render.jsx"), "const Render = () =>")
}

func TestRootCmd_AlreadyExists(t *testing.T) {
	dir := setupProject(t)

	_, err := executeCmd(t, "src/components/button")
	require.NoError(t, err)
	before := testutil.Snapshot(t, dir)

	_, err = executeCmd(t, "src/components/button", "-f", "--withcontainer")
	exitErr := requireExitCode(t, err, oerrors.ExitAlreadyExists)
	assert.True(t, exitErr.Printed)
	assert.ErrorIs(t, err, oerrors.ErrAlreadyExists)
	assert.Equal(t, before, testutil.Snapshot(t, dir))
}

func TestRootCmd_MissingName(t *testing.T) {
	setupProject(t)

	_, err := executeCmd(t)
	requireExitCode(t, err, oerrors.ExitValidationError)
}

func TestRootCmd_UnknownFlag(t *testing.T) {
	setupProject(t)

	_, err := executeCmd(t, "button", "--bogus")
	exitErr := requireExitCode(t, err, oerrors.ExitValidationError)
	assert.False(t, exitErr.Printed)
}

func TestRootCmd_Conflict(t *testing.T) {
	dir := setupProject(t)

	_, err := executeCmd(t, "src/components/button", "button")
	requireExitCode(t, err, oerrors.ExitAlreadyExists)
	assert.NoDirExists(t, filepath.Join(dir, "src", "components", "button"))
}

func TestRootCmd_DryRun(t *testing.T) {
	dir := setupProject(t)

	out, err := executeCmd(t, "src/components/button", "--dry-run")
	require.NoError(t, err)

	assert.Contains(t, out, "Would create React components at: src/components/button")
	assert.Contains(t, out, "src/components/button/Button.js")
	assert.Contains(t, out, "planned")
	assert.NoDirExists(t, filepath.Join(dir, "src", "components", "button"))
}

func TestRootCmd_DryRunExistingComponent(t *testing.T) {
	dir := setupProject(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src", "components", "button"), 0o755))

	out, err := executeCmd(t, "src/components/button", "--dry-run")
	requireExitCode(t, err, oerrors.ExitAlreadyExists)
	assert.NotContains(t, out, "Would create React components")
}

func TestRootCmd_CreateIndex(t *testing.T) {
	dir := setupProject(t)

	_, err := executeCmd(t, "src/components/Button", "Card", "--createindex")
	require.NoError(t, err)

	content := readProjectFile(t, dir, "src", "components", "index.js")
	assert.Contains(t, content, "import Button from './Button'")
	assert.Contains(t, content, "Card\n}")
}

func TestRootCmd_ConfigDefaults(t *testing.T) {
	dir := setupProject(t)
	cfg := `layout:
  testsDir: specs
generate:
  functional: true
casing:
  uppercase: true
`
	testutil.WriteFile(t, dir, ".crc.yaml", cfg)

	_, err := executeCmd(t, "src/components/button")
	require.NoError(t, err)

	compDir := filepath.Join(dir, "src", "components", "button")
	assert.FileExists(t, filepath.Join(compDir, "specs", "Button.test.jsx"))
	assert.Contains(t, readProjectFile(t, compDir, "Render.jsx"), "const Render = () =>")
}

func TestRootCmd_ConfigCasingPolicy(t *testing.T) {
	dir := setupProject(t)
	testutil.WriteFile(t, dir, ".crc.yaml", "casing:\n  policy:\n    index: never\n")

	_, err := executeCmd(t, "src/components/button")
	require.NoError(t, err)

	compDir := filepath.Join(dir, "src", "components", "button")
	assert.FileExists(t, filepath.Join(compDir, "button.js"))
	assert.Contains(t, readProjectFile(t, compDir, "__tests__", "button.test.jsx"), "from '../button'")
}

func TestRootCmd_ConfigCasingPolicyInvalid(t *testing.T) {
	dir := setupProject(t)
	testutil.WriteFile(t, dir, ".crc.yaml", "casing:\n  policy:\n    index: sometimes\n")

	_, err := executeCmd(t, "src/components/button")
	requireExitCode(t, err, oerrors.ExitValidationError)
	assert.NoDirExists(t, filepath.Join(dir, "src", "components", "button"))
}

func TestRootCmd_FlagOverridesConfig(t *testing.T) {
	dir := setupProject(t)
	testutil.WriteFile(t, dir, ".crc.yaml", "generate:\n  noTest: true\n")

	_, err := executeCmd(t, "src/components/button", "--notest=false")
	require.NoError(t, err)

	assert.DirExists(t, filepath.Join(dir, "src", "components", "button", "__tests__"))
}

func TestRootCmd_InvalidConfig(t *testing.T) {
	dir := setupProject(t)
	testutil.WriteFile(t, dir, ".crc.yaml", "layout:\n  testsDir: a/b\n")

	_, err := executeCmd(t, "src/components/button")
	requireExitCode(t, err, oerrors.ExitValidationError)
	assert.NoDirExists(t, filepath.Join(dir, "src", "components", "button"))
}

func TestRootCmd_LegacyCasing(t *testing.T) {
	dir := setupProject(t)

	_, err := executeCmd(t, "src/components/button", "--legacy-casing")
	require.NoError(t, err)

	compDir := filepath.Join(dir, "src", "components", "button")
	assert.FileExists(t, filepath.Join(compDir, "button.js"))
	assert.FileExists(t, filepath.Join(compDir, "__tests__", "Button.test.native.js"))
	assert.Contains(t, readProjectFile(t, compDir, "__tests__", "button.test.jsx"), "import Button from '../button'")
}
