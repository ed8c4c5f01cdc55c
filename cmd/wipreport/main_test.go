package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/wipreport-go/pkg/wipreport"
	"github.com/xuri/excelize/v2"
)

func writeTimesheet(t *testing.T, dir string) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	rows := [][]interface{}{
		{"Invoice Group", "Client Name", "Contractor Name", "Week ending date"},
		{"EB-M-PO", "Acme", "Smith", "2024-01-05"},
		{"TCS weekly PO", "Globex", "Jones", "2024-01-12"},
		{"EB-M-PO", "Initech", "Brown", "not-a-date"},
	}
	sheet := f.GetSheetName(0)
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &rows[i]))
	}

	path := filepath.Join(dir, "timesheet.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func writeConfig(t *testing.T, dir, saveDir string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	content := fmt.Sprintf("report:\n  save_dir: %q\nlogging:\n  level: error\n", saveDir)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func execute(args ...string) (string, error) {
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func reportFiles(t *testing.T, dir string) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, "Unbilled WIP Report - *.xlsx"))
	require.NoError(t, err)
	return matches
}

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	input := writeTimesheet(t, dir)
	outDir := filepath.Join(dir, "out")
	cfg := writeConfig(t, dir, filepath.Join(dir, "saved"))

	out, err := execute("generate", input, "-o", outDir, "--config", cfg)
	require.NoError(t, err)

	files := reportFiles(t, outDir)
	require.Len(t, files, 1)
	assert.Contains(t, out, "Wrote "+files[0])
	assert.Contains(t, out, "Rows: All 2, Experis 1, Manpower 1")
	assert.Contains(t, out, `Skipped row 4: invalid week ending date "not-a-date"`)
	assert.NotContains(t, out, "Saved ")
	assert.NoDirExists(t, filepath.Join(dir, "saved"))
}

func TestGenerateCommandSave(t *testing.T) {
	dir := t.TempDir()
	input := writeTimesheet(t, dir)
	saveDir := filepath.Join(dir, "saved")
	cfg := writeConfig(t, dir, saveDir)

	out, err := execute("generate", input, "-o", filepath.Join(dir, "out"), "--save", "--config", cfg)
	require.NoError(t, err)

	files := reportFiles(t, saveDir)
	require.Len(t, files, 1)
	assert.Contains(t, out, "Saved "+files[0])
}

func TestGenerateCommandSaveFailureIsWarning(t *testing.T) {
	dir := t.TempDir()
	input := writeTimesheet(t, dir)
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
	cfg := writeConfig(t, dir, filepath.Join(blocker, "saved"))

	out, err := execute("generate", input, "-o", filepath.Join(dir, "out"), "--save", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "Warning: failed to save")
	assert.Len(t, reportFiles(t, filepath.Join(dir, "out")), 1)
}

func TestGenerateCommandErrors(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir, filepath.Join(dir, "saved"))

	t.Run("missing input", func(t *testing.T) {
		_, err := execute("generate", filepath.Join(dir, "missing.xlsx"), "--config", cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "file not found")
	})

	t.Run("unreadable input", func(t *testing.T) {
		input := filepath.Join(dir, "broken.xlsx")
		require.NoError(t, os.WriteFile(input, []byte("not a workbook"), 0644))

		_, err := execute("generate", input, "-o", filepath.Join(dir, "out"), "--config", cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, wipreport.ErrUnreadableFile)
	})

	t.Run("bad config", func(t *testing.T) {
		_, err := execute("generate", writeTimesheet(t, t.TempDir()), "--config", filepath.Join(dir, "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load config")
	})
}
