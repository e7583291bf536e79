package e2e_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/nutricalc/nutricalc/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build binary before running tests
	dir, err := os.MkdirTemp("", "nutricalc-e2e")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	binaryPath = filepath.Join(dir, "nutricalc")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/nutricalc")
	if out, err := cmd.CombinedOutput(); err != nil {
		panic("build failed: " + string(out))
	}

	os.Exit(m.Run())
}

func run(t *testing.T, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	out, err := cmd.CombinedOutput()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
	}
	return string(out), exitCode
}

// --- Calculate Tests ---

func TestE2E_Calculate(t *testing.T) {
	out, code := run(t, "calculate", "--age", "30", "--weight", "70", "--height", "175", "--config-dir", t.TempDir())
	assert.Equal(t, 0, code, out)
	assert.Contains(t, out, "nutricalc")
	assert.Contains(t, out, "1702 kcal")
	assert.Contains(t, out, "Suggested Menu")
}

func TestE2E_CalculateJSON(t *testing.T) {
	out, code := run(t, "calculate", "--json", "--seed", "9",
		"--gender", "female", "--age", "60", "--weight", "50", "--height", "160", "--goal", "lose",
		"--config-dir", t.TempDir())
	require.Equal(t, 0, code, out)

	var calc domain.Calculation
	require.NoError(t, json.Unmarshal([]byte(out), &calc))
	assert.Equal(t, 878, calc.Result.TargetCalories)
	assert.True(t, calc.Result.Warnings.LowCalorie)
	assert.LessOrEqual(t, calc.Menu.Totals.Calories, 878)
}

func TestE2E_CalculateMissingField(t *testing.T) {
	out, code := run(t, "calculate", "--weight", "70", "--height", "175", "--config-dir", t.TempDir())
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "age")
}

// --- Config Tests ---

func TestE2E_InitThenCatalog(t *testing.T) {
	dir := t.TempDir()
	out, code := run(t, "init", dir)
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "Created .nutricalc.yaml")

	out, code = run(t, "catalog", "exercises", "--config-dir", dir)
	assert.Equal(t, 0, code, out)
	assert.Contains(t, out, "Jump Rope")
}

func TestE2E_Version(t *testing.T) {
	out, code := run(t, "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "nutricalc")
}
