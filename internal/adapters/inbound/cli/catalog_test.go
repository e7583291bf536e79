package cli_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/nutricalc/nutricalc/internal/adapters/inbound/cli"
	"github.com/nutricalc/nutricalc/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogCmd_ExercisesJSON(t *testing.T) {
	var out bytes.Buffer
	root := cli.NewRootCmdForTest()
	root.SetOut(&out)
	root.SetArgs([]string{"catalog", "exercises", "--json", "--config-dir", t.TempDir()})
	require.NoError(t, root.Execute())

	var catalog domain.ExerciseCatalog
	require.NoError(t, json.Unmarshal(out.Bytes(), &catalog))
	assert.Equal(t, domain.DefaultExerciseCatalog(), catalog)
}

func TestCatalogCmd_MealsText(t *testing.T) {
	var out bytes.Buffer
	root := cli.NewRootCmdForTest()
	root.SetOut(&out)
	root.SetArgs([]string{"catalog", "meals", "--config-dir", t.TempDir()})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "Meal Catalog")
	assert.Contains(t, out.String(), "Tuna salad")
}

func TestVersionCmd(t *testing.T) {
	var out bytes.Buffer
	root := cli.NewRootCmdForTest()
	root.SetOut(&out)
	root.SetArgs([]string{"version"})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "nutricalc dev")
}
