package model

// ResultRow is one CSV line summarizing a participant's answer for one
// folder. Rows are derived from Session.Answers on every export, never
// stored.
type ResultRow struct {
	Participant  string `json:"participant"`
	Folder       string `json:"folder"`
	SelectedFile string `json:"selected_file"`
}
