package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/abdidvp/inventory/internal/adapters/inbound/cli"
	"github.com/abdidvp/inventory/internal/adapters/outbound/config"
	"github.com/abdidvp/inventory/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stockDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(`
stock:
  - name: Pen
    price: 1.50
    quantity: 100
  - name: Blue Notebook
    price: 3
    quantity: 20
`), 0644))
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "list", "--path", stockDir(t))
	require.NoError(t, err)
	assert.Contains(t, out, "1. Product: Pen | Price: $1.50 | Quantity: 100")
	assert.Contains(t, out, "2. Product: Blue Notebook | Price: $3.00 | Quantity: 20")
}

func TestListCommand_Empty(t *testing.T) {
	out, err := execute(t, "list", "--path", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "No products in the inventory.")
}

func TestListCommand_JSON(t *testing.T) {
	out, err := execute(t, "list", "--path", stockDir(t), "--json")
	require.NoError(t, err)

	var products []domain.ProductSnapshot
	require.NoError(t, json.Unmarshal([]byte(out), &products), "output should be valid JSON")
	require.Len(t, products, 2)
	assert.Equal(t, "Pen", products[0].Name)
	assert.Equal(t, 150.0, products[0].TotalValue)
}

func TestFindCommand(t *testing.T) {
	out, err := execute(t, "find", "PEN", "--path", stockDir(t))
	require.NoError(t, err)
	assert.Contains(t, out, "Found: Product: Pen | Price: $1.50 | Quantity: 100")
}

func TestFindCommand_MultiWordName(t *testing.T) {
	out, err := execute(t, "find", "blue", "notebook", "--path", stockDir(t), "--json")
	require.NoError(t, err)

	var p domain.ProductSnapshot
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.Equal(t, "Blue Notebook", p.Name)
}

func TestFindCommand_NotFound(t *testing.T) {
	_, err := execute(t, "find", "ghost", "--path", stockDir(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestFindCommand_RequiresName(t *testing.T) {
	_, err := execute(t, "find", "--path", stockDir(t))
	assert.Error(t, err)
}

func TestTotalCommand(t *testing.T) {
	out, err := execute(t, "total", "--path", stockDir(t))
	require.NoError(t, err)
	assert.Contains(t, out, "Total inventory value: $210.00")
}

func TestTotalCommand_JSON(t *testing.T) {
	out, err := execute(t, "total", "--path", stockDir(t), "--json")
	require.NoError(t, err)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &result), "output should be valid JSON")
	assert.Equal(t, 2.0, result["products"])
	assert.InDelta(t, 210.0, result["total_value"], 1e-9)
}

func TestCommands_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte("color: rainbow\n"), 0644))

	_, err := execute(t, "total", "--path", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
}

func TestCommands_OverflowingStockRejected(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(`
stock:
  - name: Gold
    price: 1e308
    quantity: 10
`), 0644))

	for _, args := range [][]string{{"list", "--json"}, {"total", "--json"}} {
		out, err := execute(t, append(args, "--path", dir)...)
		require.Error(t, err, "args %v", args)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		assert.Contains(t, err.Error(), "total value out of range")
		assert.Empty(t, out)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "inventory dev (none)")
}

func TestVerboseLogsToStderr(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	stderr := new(bytes.Buffer)
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(stderr)
	cmd.SetArgs([]string{"total", "--path", stockDir(t), "--verbose"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, stderr.String(), "stock seeded")
	assert.Contains(t, stderr.String(), "products=2")
}
