package exporter

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := strings.TrimPrefix(string(data), "\xEF\xBB\xBF")
	records, err := csv.NewReader(strings.NewReader(content)).ReadAll()
	require.NoError(t, err)
	return records
}

func TestNewCSVWriter(t *testing.T) {
	writer := NewCSVWriter(nil)

	assert.NotNil(t, writer)
	assert.NotNil(t, writer.logger)
}

func TestCSVWriter_WriteCSV(t *testing.T) {
	tempDir := t.TempDir()
	writer := NewCSVWriter(nil)

	tests := []struct {
		name      string
		filePath  string
		options   WriteOptions
		wantBOM   bool
		wantLines [][]string
	}{
		{
			name:     "headers and records",
			filePath: filepath.Join(tempDir, "basic.csv"),
			options: WriteOptions{
				Headers: []string{"Code", "Need"},
				Records: [][]string{{"PROG", "1.0000"}, {"TEST", "0.5000"}},
			},
			wantLines: [][]string{{"Code", "Need"}, {"PROG", "1.0000"}, {"TEST", "0.5000"}},
		},
		{
			name:     "nested directory is created",
			filePath: filepath.Join(tempDir, "a", "b", "nested.csv"),
			options: WriteOptions{
				Records: [][]string{{"x"}},
			},
			wantLines: [][]string{{"x"}},
		},
		{
			name:     "byte order mark",
			filePath: filepath.Join(tempDir, "bom.csv"),
			options: WriteOptions{
				Headers:   []string{"Skill"},
				Records:   [][]string{{"Data visualisation"}},
				BOMPrefix: true,
			},
			wantBOM:   true,
			wantLines: [][]string{{"Skill"}, {"Data visualisation"}},
		},
		{
			name:     "fields needing quotes",
			filePath: filepath.Join(tempDir, "quotes.csv"),
			options: WriteOptions{
				Records: [][]string{{"Programming/software development", "Data modelling, design", `say "hi"`}},
			},
			wantLines: [][]string{{"Programming/software development", "Data modelling, design", `say "hi"`}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, writer.WriteCSV(tt.filePath, tt.options))

			data, err := os.ReadFile(tt.filePath)
			require.NoError(t, err)
			assert.Equal(t, tt.wantBOM, strings.HasPrefix(string(data), "\xEF\xBB\xBF"))
			assert.Equal(t, tt.wantLines, readCSV(t, tt.filePath))
		})
	}
}

func TestCSVWriter_OverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	writer := NewCSVWriter(nil)

	require.NoError(t, writer.WriteCSV(path, WriteOptions{Records: [][]string{{"old"}, {"old"}}}))
	require.NoError(t, writer.WriteCSV(path, WriteOptions{Records: [][]string{{"new"}}}))

	assert.Equal(t, [][]string{{"new"}}, readCSV(t, path))
}

func TestCSVWriter_ErrorScenarios(t *testing.T) {
	tempDir := t.TempDir()
	blocker := filepath.Join(tempDir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	writer := NewCSVWriter(nil)
	err := writer.WriteCSV(filepath.Join(blocker, "out.csv"), WriteOptions{Records: [][]string{{"a"}}})
	assert.Error(t, err)
}
