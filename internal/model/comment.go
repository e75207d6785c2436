package model

// Comment is a visitor comment attached to a project.
//
// All fields are plain strings supplied by the client, including the
// ISO-8601 timestamp. Bodies are accepted as-is at the API boundary;
// there is no required-field or format check.
type Comment struct {
	ProjectID string `json:"projectId"`
	Name      string `json:"name"`
	Comment   string `json:"comment"`
	Timestamp string `json:"timestamp"`
}
