package importer

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// IssueImport is one issue record as produced by the tracker API or an
// exported issue file. Every field except id is optional on the wire.
type IssueImport struct {
	ID            FlexID  `json:"id" yaml:"id"`
	Title         string  `json:"title" yaml:"title"`
	IssueType     string  `json:"issue_type" yaml:"issue_type"`
	ParentIssueID *FlexID `json:"parent_issue_id,omitempty" yaml:"parent_issue_id,omitempty"`
	Status        string  `json:"status,omitempty" yaml:"status,omitempty"`
	StartDate     *string `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	EndDate       *string `json:"end_date,omitempty" yaml:"end_date,omitempty"`
	DueDate       *string `json:"due_date,omitempty" yaml:"due_date,omitempty"` // legacy alias of end_date
	CreatedAt     *string `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	StoryCode     string  `json:"story_code,omitempty" yaml:"story_code,omitempty"`
	Assignee      string  `json:"assignee,omitempty" yaml:"assignee,omitempty"`
	ProjectID     FlexID  `json:"project_id,omitempty" yaml:"project_id,omitempty"`
	SprintNumber  FlexID  `json:"sprint_number,omitempty" yaml:"sprint_number,omitempty"`
}

// IssueFile is the wrapped document form: {"issues": [...]}.
type IssueFile struct {
	Issues []IssueImport `json:"issues" yaml:"issues"`
}

// FlexID is an identifier that may be encoded as a number or a string.
// It always decodes to its string form.
type FlexID string

// String returns the identifier text.
func (f FlexID) String() string { return string(f) }

// UnmarshalJSON accepts strings, numbers and null.
func (f *FlexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number, got %s", data)
	}
	*f = FlexID(n.String())
	return nil
}

// UnmarshalYAML accepts any scalar.
func (f *FlexID) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: id must be a scalar", value.Line)
	}
	if value.Tag == "!!null" {
		*f = ""
		return nil
	}
	*f = FlexID(value.Value)
	return nil
}
