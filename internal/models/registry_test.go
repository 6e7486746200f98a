package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func testConfig() ModelConfig {
	return ModelConfig{
		Excel: ExcelConfig{
			Columnas: map[string][]string{
				"numero_pallet": {"pallet"},
				"cantidad":      {"cantidad", "qty"},
			},
		},
		PDF: PDFConfig{DescripcionProducto: "WIDGET"},
	}
}

func TestLoadMissingFileYieldsEmptyRegistry(t *testing.T) {
	t.Parallel()

	reg, err := Load(filepath.Join(t.TempDir(), "models.json"))
	require.NoError(t, err)
	require.Empty(t, reg.Models(false))
}

func TestLoadMalformedFileFails(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "models.json")
	require.NoError(t, os.WriteFile(path, []byte("{nope"), 0o644))
	_, err := Load(path)
	require.Error(t, err)
}

func TestPutPersistsAndReloads(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "models.json")
	reg, err := Load(path)
	require.NoError(t, err)

	require.NoError(t, reg.Put("hsps", testConfig()))

	reloaded, err := Load(path)
	require.NoError(t, err)
	mc, ok := reloaded.Get("hsps")
	require.True(t, ok)
	require.Equal(t, "WIDGET", mc.PDF.DescripcionProducto)
	require.Equal(t, []string{"cantidad", "qty"}, mc.Excel.Columnas["cantidad"])
}

func TestPutRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	reg, err := Load(filepath.Join(t.TempDir(), "models.json"))
	require.NoError(t, err)

	bad := testConfig()
	bad.Excel.Columnas = nil // alias map is required
	require.Error(t, reg.Put("hsps", bad))

	require.Error(t, reg.Put("", testConfig()))

	bad = testConfig()
	bad.Excel.Calculos = &CalcConfig{Metodo: "magia"}
	require.Error(t, reg.Put("hsps", bad))
}

func TestModelsActiveFilter(t *testing.T) {
	t.Parallel()

	reg, err := Load(filepath.Join(t.TempDir(), "models.json"))
	require.NoError(t, err)

	active := testConfig()
	inactive := testConfig()
	no := false
	inactive.Activo = &no

	require.NoError(t, reg.Put("a-activo", active))
	require.NoError(t, reg.Put("b-inactivo", inactive))

	require.Equal(t, []string{"a-activo"}, reg.Models(true))
	require.Equal(t, []string{"a-activo", "b-inactivo"}, reg.Models(false))
}
