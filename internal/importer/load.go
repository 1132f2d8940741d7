package importer

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of an issue file.
type Format string

const (
	FormatJSON  Format = "json"
	FormatJSONL Format = "jsonl"
	FormatYAML  Format = "yaml"
)

// maxLineSize bounds a single JSONL record.
const maxLineSize = 10 * 1024 * 1024

// Batch is the result of reading one issue document. Skipped holds one error
// per JSONL line that could not be decoded; the remaining lines still load.
type Batch struct {
	Format  Format
	Issues  []IssueImport
	Skipped []error
}

// DetectFormat picks the format from the file extension, falling back to
// sniffing the content.
func DetectFormat(path string, data []byte) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsonl", ".ndjson":
		return FormatJSONL
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return FormatJSON
	}
	switch trimmed[0] {
	case '[':
		return FormatJSON
	case '{':
		// A single object spanning the document is wrapped JSON; one object
		// per line is JSONL.
		first, _, multiline := bytes.Cut(trimmed, []byte("\n"))
		if multiline {
			if json.Valid(bytes.TrimSpace(first)) {
				return FormatJSONL
			}
			return FormatJSON
		}
		if isIssueFile(trimmed) {
			return FormatJSON
		}
		return FormatJSONL
	}
	return FormatYAML
}

// isIssueFile reports whether a single-line object is the wrapped form, i.e.
// carries an "issues" key. Anything else on one line is a lone JSONL record.
func isIssueFile(obj []byte) bool {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(obj, &fields); err != nil {
		return true
	}
	_, ok := fields["issues"]
	return ok
}

// LoadIssues reads and decodes an issue file.
func LoadIssues(path string) (*Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading issue file: %w", err)
	}
	return ParseIssues(data, DetectFormat(path, data))
}

// ParseIssues decodes data in the given format.
func ParseIssues(data []byte, format Format) (*Batch, error) {
	batch := &Batch{Format: format}
	var err error
	switch format {
	case FormatJSONL:
		batch.Issues, batch.Skipped, err = parseJSONL(data)
	case FormatYAML:
		batch.Issues, err = parseYAML(data)
	case FormatJSON:
		batch.Issues, err = parseJSON(data)
	default:
		return nil, fmt.Errorf("unsupported issue format %q", format)
	}
	if err != nil {
		return nil, err
	}
	return batch, nil
}

func parseJSON(data []byte) ([]IssueImport, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if trimmed[0] == '[' {
		var issues []IssueImport
		if err := json.Unmarshal(trimmed, &issues); err != nil {
			return nil, fmt.Errorf("parsing issue file: %w", err)
		}
		return issues, nil
	}
	var file IssueFile
	if err := json.Unmarshal(trimmed, &file); err != nil {
		return nil, fmt.Errorf("parsing issue file: %w", err)
	}
	return file.Issues, nil
}

func parseJSONL(data []byte) ([]IssueImport, []error, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var issues []IssueImport
	var skipped []error
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var issue IssueImport
		if err := json.Unmarshal(line, &issue); err != nil {
			skipped = append(skipped, fmt.Errorf("line %d: %w", lineNum, err))
			continue
		}
		issues = append(issues, issue)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading issue lines: %w", err)
	}
	return issues, skipped, nil
}

func parseYAML(data []byte) ([]IssueImport, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing issue file: %w", err)
	}
	if len(root.Content) == 0 {
		return nil, nil
	}

	doc := root.Content[0]
	if doc.Kind == yaml.SequenceNode {
		var issues []IssueImport
		if err := doc.Decode(&issues); err != nil {
			return nil, fmt.Errorf("parsing issue file: %w", err)
		}
		return issues, nil
	}
	var file IssueFile
	if err := doc.Decode(&file); err != nil {
		return nil, fmt.Errorf("parsing issue file: %w", err)
	}
	return file.Issues, nil
}
