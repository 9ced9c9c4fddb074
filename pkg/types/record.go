// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Document identifies one discovered PDF on disk. Created by the locator
// and never mutated afterwards.
type Document struct {
	// Path is the file path as discovered under the root directory.
	Path string `json:"path" yaml:"path"`

	// Name is the base filename (e.g. "smith2020.pdf"), used as the
	// record identifier.
	Name string `json:"name" yaml:"name"`
}

// SummaryRecord is the structured summary of one paper. The struct fields
// fix both the field set and the serialization order, so every record in a
// batch shares the same schema. All values are strings; empty is permitted.
type SummaryRecord struct {
	ID                  string `json:"id" yaml:"id"`
	Title               string `json:"title" yaml:"title"`
	Year                string `json:"year" yaml:"year"`
	Venue               string `json:"venue" yaml:"venue"`
	StudyType           string `json:"study_type" yaml:"study_type"`
	Environment         string `json:"environment" yaml:"environment"`
	InterfaceType       string `json:"interface_type" yaml:"interface_type"`
	Task                string `json:"task" yaml:"task"`
	Participants        string `json:"participants" yaml:"participants"`
	Measures            string `json:"measures" yaml:"measures"`
	MainFindings        string `json:"main_findings" yaml:"main_findings"`
	RelevanceToMyThesis string `json:"relevance_to_my_thesis" yaml:"relevance_to_my_thesis"`
}

// RecordFields lists the record field names in serialization order. The CSV
// header row and the JSON key order both derive from this ordering.
func RecordFields() []string {
	return []string{
		"id",
		"title",
		"year",
		"venue",
		"study_type",
		"environment",
		"interface_type",
		"task",
		"participants",
		"measures",
		"main_findings",
		"relevance_to_my_thesis",
	}
}

// Values returns the record's field values in the same order as RecordFields.
func (r SummaryRecord) Values() []string {
	return []string{
		r.ID,
		r.Title,
		r.Year,
		r.Venue,
		r.StudyType,
		r.Environment,
		r.InterfaceType,
		r.Task,
		r.Participants,
		r.Measures,
		r.MainFindings,
		r.RelevanceToMyThesis,
	}
}
