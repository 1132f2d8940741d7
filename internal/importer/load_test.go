package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadIssues_JSONArrayWithNumericIDs(t *testing.T) {
	path := writeFile(t, "issues.json", `[
		{"id": 1, "title": "Epic A", "issue_type": "epic", "parent_issue_id": null},
		{"id": 2, "title": "Story", "issue_type": "story", "parent_issue_id": 1,
		 "start_date": "2024-01-01", "end_date": "2024-01-10", "sprint_number": 3}
	]`)

	batch, err := LoadIssues(path)
	require.NoError(t, err)

	assert.Equal(t, FormatJSON, batch.Format)
	require.Len(t, batch.Issues, 2)
	assert.Equal(t, FlexID("1"), batch.Issues[0].ID)
	assert.Nil(t, batch.Issues[0].ParentIssueID)
	require.NotNil(t, batch.Issues[1].ParentIssueID)
	assert.Equal(t, "1", batch.Issues[1].ParentIssueID.String())
	assert.Equal(t, FlexID("3"), batch.Issues[1].SprintNumber)
}

func TestLoadIssues_WrappedJSON(t *testing.T) {
	path := writeFile(t, "export.json", `{"issues": [{"id": "ST-1", "title": "One"}]}`)

	batch, err := LoadIssues(path)
	require.NoError(t, err)
	require.Len(t, batch.Issues, 1)
	assert.Equal(t, FlexID("ST-1"), batch.Issues[0].ID)
}

func TestLoadIssues_JSONLSkipsMalformedLines(t *testing.T) {
	path := writeFile(t, "issues.jsonl", `{"id": 1, "title": "One"}

not json
{"id": 2, "title": "Two"}
`)

	batch, err := LoadIssues(path)
	require.NoError(t, err)

	assert.Equal(t, FormatJSONL, batch.Format)
	require.Len(t, batch.Issues, 2)
	require.Len(t, batch.Skipped, 1)
	assert.Contains(t, batch.Skipped[0].Error(), "line 3")
}

func TestLoadIssues_YAMLWrappedAndBare(t *testing.T) {
	wrapped := writeFile(t, "issues.yaml", `
issues:
  - id: 10
    title: Epic
    issue_type: epic
  - id: 11
    title: Child
    parent_issue_id: 10
    start_date: 2024-02-01
`)
	batch, err := LoadIssues(wrapped)
	require.NoError(t, err)
	require.Len(t, batch.Issues, 2)
	assert.Equal(t, FlexID("10"), batch.Issues[0].ID)
	require.NotNil(t, batch.Issues[1].StartDate)
	assert.Equal(t, "2024-02-01", *batch.Issues[1].StartDate)

	bare := writeFile(t, "bare.yml", `
- id: a
  title: Alpha
  parent_issue_id: ~
`)
	batch, err = LoadIssues(bare)
	require.NoError(t, err)
	require.Len(t, batch.Issues, 1)
	assert.Nil(t, batch.Issues[0].ParentIssueID)
}

func TestLoadIssues_MissingFile(t *testing.T) {
	_, err := LoadIssues(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorContains(t, err, "reading issue file")
}

func TestLoadIssues_MalformedJSON(t *testing.T) {
	_, err := LoadIssues(writeFile(t, "bad.json", `[{"id": 1,`))
	assert.ErrorContains(t, err, "parsing issue file")
}

func TestDetectFormat_SniffsContent(t *testing.T) {
	tests := []struct {
		name string
		data string
		want Format
	}{
		{"array", `[{"id":1}]`, FormatJSON},
		{"pretty wrapped object", "{\n  \"issues\": []\n}", FormatJSON},
		{"object per line", "{\"id\":1}\n{\"id\":2}\n", FormatJSONL},
		{"single-line wrapped object", `{"issues": [{"id": 1}]}`, FormatJSON},
		{"single record without newline", `{"id": 1, "title": "One"}`, FormatJSONL},
		{"single malformed line", `{"id": 1,`, FormatJSON},
		{"yaml", "issues:\n  - id: 1\n", FormatYAML},
		{"empty", "", FormatJSON},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFormat("issues.txt", []byte(tt.data)))
		})
	}
}

func TestLoadIssues_SingleJSONLRecordWithoutExtension(t *testing.T) {
	path := writeFile(t, "issues", `{"id": 7, "title": "Only one"}`)

	batch, err := LoadIssues(path)
	require.NoError(t, err)

	assert.Equal(t, FormatJSONL, batch.Format)
	require.Len(t, batch.Issues, 1)
	assert.Equal(t, FlexID("7"), batch.Issues[0].ID)
}

func TestFlexID_RejectsObjects(t *testing.T) {
	_, err := ParseIssues([]byte(`[{"id": {"nested": true}}]`), FormatJSON)
	assert.Error(t, err)
}

func TestParseIssues_UnsupportedFormat(t *testing.T) {
	_, err := ParseIssues(nil, Format("xml"))
	assert.ErrorContains(t, err, "unsupported")
}
