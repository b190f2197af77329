package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// timeLayout is the wire format mobile clients use for timestamps.
const timeLayout = "2006-01-02 15:04:05"

// Timestamp decodes the client's "2006-01-02 15:04:05" format.
type Timestamp struct {
	time.Time
}

// UnmarshalJSON accepts the client layout, an empty string, or null.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := time.Parse(timeLayout, s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// MarshalJSON emits the client layout.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Format(timeLayout) + `"`), nil
}

// Submission is the decoded "model" part of an upload.
type Submission struct {
	UUID       string     `json:"uuid"`
	Latitude   float64    `json:"latitude"`
	Longitude  float64    `json:"longitude"`
	Accuracy   float64    `json:"accuracy"`
	ProjectID  int64      `json:"projectId"`
	StartDate  *Timestamp `json:"startDate"`
	FinishDate *Timestamp `json:"finishDate"`
}

func decodeSubmission(raw string) (*Submission, error) {
	var sub Submission
	if err := json.Unmarshal([]byte(raw), &sub); err != nil {
		return nil, &ValidationError{Field: "model", Reason: err.Error()}
	}
	if sub.UUID == "" {
		return nil, &ValidationError{Field: "model", Reason: "uuid is required"}
	}
	return &sub, nil
}

// AnswerValue is the tagged union a results value decodes into:
// either a scalar string or a list of strings.
type AnswerValue struct {
	Scalar string
	List   []string
	IsList bool
}

// UnmarshalJSON decodes a JSON string or array of strings.
func (v *AnswerValue) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 {
		return fmt.Errorf("empty answer value")
	}
	switch trimmed[0] {
	case '"':
		v.IsList = false
		v.List = nil
		return json.Unmarshal(trimmed, &v.Scalar)
	case '[':
		v.IsList = true
		v.Scalar = ""
		return json.Unmarshal(trimmed, &v.List)
	default:
		return fmt.Errorf("answer value must be a string or a list of strings")
	}
}

// Encode returns the text persisted as the answer response: the scalar
// verbatim, or the list serialized as JSON array text.
func (v AnswerValue) Encode() (string, error) {
	if !v.IsList {
		return v.Scalar, nil
	}
	b, err := json.Marshal(v.List)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeAnswers(raw string) (map[string]AnswerValue, error) {
	answers := make(map[string]AnswerValue)
	if err := json.Unmarshal([]byte(raw), &answers); err != nil {
		return nil, &ValidationError{Field: "results", Reason: err.Error()}
	}
	return answers, nil
}

// Upload is one file of a multipart submission, decoupled from the transport.
type Upload struct {
	// FileName is the client's original file name, pattern "<sectionId>-<name>.<ext>".
	FileName string
	// Size is the upload size in bytes.
	Size int64
	// ContentType is the MIME type announced by the client.
	ContentType string
	// Open returns the file content. It may be called at most once.
	Open func() (io.ReadCloser, error)
}

// parseSectionID extracts the section id from an uploaded file name.
// The name must start with "<sectionId>-".
func parseSectionID(fileName string) (int64, error) {
	idx := strings.Index(fileName, "-")
	if idx <= 0 {
		return 0, &ValidationError{Field: "images", Reason: fmt.Sprintf("file name %q has no section prefix", fileName)}
	}
	id, err := strconv.ParseInt(fileName[:idx], 10, 64)
	if err != nil {
		return 0, &ValidationError{Field: "images", Reason: fmt.Sprintf("file name %q has a non-numeric section prefix", fileName)}
	}
	return id, nil
}
