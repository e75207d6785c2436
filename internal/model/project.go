package model

// Project is the metadata of one GeoJSON point feature. It is derived
// from the feature's properties and never persisted on its own.
type Project struct {
	ID          string `json:"project_id"`
	Title       string `json:"project_title"`
	Cost        string `json:"cost"`
	Type        string `json:"project_type"`
	Improvement string `json:"improvement"`
	Locality    string `json:"locality"`
	Product     string `json:"product"`
}
