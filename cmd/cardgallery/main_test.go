package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// fixture writes a workbook and config file and returns the base args.
func fixture(t *testing.T) []string {
	t.Helper()
	dir := t.TempDir()

	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", "Landing Page"))
	rows := map[string][][]interface{}{
		"Landing Page": {
			{"Title", "Description", "Category", "Highlight", "Image", "Redirect URL", "Page"},
			{"Gems", "Our gems", "Showcase", "New!", "", "", "gems"},
		},
		"Gems": {
			{"Title", "Description", "Image", "URL"},
			{"Ruby", "A *red* stone", "https://drive.google.com/file/d/1AbCdEfGhIjKlMnOpQrStUvWxYz/view", "https://ruby.example"},
			{"Opal", "No link", "", ""},
		},
	}
	for _, sheet := range []string{"Landing Page", "Gems"} {
		if sheet != "Landing Page" {
			_, err := f.NewSheet(sheet)
			require.NoError(t, err)
		}
		for i, row := range rows[sheet] {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			r := row
			require.NoError(t, f.SetSheetRow(sheet, cell, &r))
		}
	}
	book := filepath.Join(dir, "gallery.xlsx")
	require.NoError(t, f.SaveAs(book))

	cfg := filepath.Join(dir, "cardgallery.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("pages:\n  - id: gems\n    template: Cards\n"), 0644))

	return []string{"--config", cfg, "--workbook", book, "--env-file", filepath.Join(dir, "none.env")}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	outputPath, format, pretty, addr = "", "html", false, ""
	configPath, envFile, workbookPath, templatesDir, baseURL, debug = "", ".env", "", "", "", false

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCardsCommand(t *testing.T) {
	base := fixture(t)
	// The env file named in base does not exist; drop it so loading is optional.
	base = base[:4]

	out, err := execute(t, append([]string{"cards", "gems", "--pretty"}, base...)...)
	require.NoError(t, err)

	var cards []map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &cards))
	require.Len(t, cards, 1)
	assert.Equal(t, "Ruby", cards[0]["title"])
	assert.Equal(t, "https://drive.google.com/thumbnail?id=1AbCdEfGhIjKlMnOpQrStUvWxYz&sz=w600", cards[0]["image"])
}

func TestRenderCommandMarkdown(t *testing.T) {
	base := fixture(t)[:4]

	out, err := execute(t, append([]string{"render", "--format", "markdown", "--base-url", "https://svc.example/exec"}, base...)...)
	require.NoError(t, err)

	assert.Contains(t, out, "# Welcome")
	assert.Contains(t, out, "https://svc.example/exec?page=gems")
}

func TestRenderCommandToFile(t *testing.T) {
	base := fixture(t)[:4]
	target := filepath.Join(t.TempDir(), "gems.html")

	out, err := execute(t, append([]string{"render", "gems", "-o", target}, base...)...)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "<!DOCTYPE html>"))
	assert.Contains(t, string(data), "<em>red</em>")
}

func TestRenderCommandErrors(t *testing.T) {
	base := fixture(t)[:4]

	_, err := execute(t, append([]string{"render", "nope"}, base...)...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `Error: Page "nope" not found.`)

	_, err = execute(t, append([]string{"render", "--format", "pdf"}, base...)...)
	assert.Error(t, err)
}

func TestMissingEnvFileIsAnErrorWhenNamed(t *testing.T) {
	_, err := execute(t, append([]string{"pages"}, fixture(t)...)...)
	assert.Error(t, err)
}

func TestPagesCommand(t *testing.T) {
	out, err := execute(t, append([]string{"pages"}, fixture(t)[:4]...)...)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.True(t, strings.HasPrefix(lines[1], "landing"))
	assert.True(t, strings.HasPrefix(lines[2], "interactivelearningapps"))
	assert.True(t, strings.HasPrefix(lines[3], "gems"))
}
