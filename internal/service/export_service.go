package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"image_study_backend/internal/model"
	"image_study_backend/internal/repository"
	"image_study_backend/internal/util"
)

// Export is one built CSV artifact. SavedPath is set when the disk copy was
// written; otherwise SaveWarning carries the reason. The Data bytes are
// valid either way, so the download never depends on the disk write.
type Export struct {
	Filename    string `json:"filename"`
	Data        []byte `json:"-"`
	SavedPath   string `json:"savedPath,omitempty"`
	SaveWarning string `json:"saveWarning,omitempty"`
}

// ExportService turns a session's answers into CSV result rows.
type ExportService struct {
	results *repository.ResultsRepository
}

func NewExportService(results *repository.ResultsRepository) *ExportService {
	return &ExportService{results: results}
}

// Rows builds one result row per question in catalog order, regardless of
// the shuffled display order.
func (s *ExportService) Rows(sess *model.Session) []model.ResultRow {
	sess.Lock()
	defer sess.Unlock()

	rows := make([]model.ResultRow, 0, len(sess.CatalogOrder))
	for _, folder := range sess.CatalogOrder {
		rows = append(rows, model.ResultRow{
			Participant:  sess.Participant,
			Folder:       folder,
			SelectedFile: selectedFile(sess.Answers[folder]),
		})
	}
	return rows
}

func selectedFile(ans model.Answer) string {
	switch ans.Mode {
	case model.AnswerBest:
		return ans.Best
	case model.AnswerWorstEqual:
		if len(ans.Others) >= 2 {
			return fmt.Sprintf("equal score for %s and %s", ans.Others[0], ans.Others[1])
		}
		return "equal score for " + strings.Join(ans.Others, " and ")
	case model.AnswerNone:
		return util.NoneLabel
	default:
		return ""
	}
}

// CSV serializes rows with the fixed header. encoding/csv handles quoting of
// commas and quotes inside folder or file names.
func (s *ExportService) CSV(rows []model.ResultRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(util.CSVHeader); err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err := w.Write([]string{row.Participant, row.Folder, row.SelectedFile}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Export builds the CSV for the session and best-effort writes a timestamped
// copy under {root}/results. A failed disk write only sets SaveWarning; the
// returned bytes are complete regardless.
func (s *ExportService) Export(sess *model.Session, root string) (*Export, error) {
	data, err := s.CSV(s.Rows(sess))
	if err != nil {
		return nil, err
	}

	filename := fmt.Sprintf("%s_results_%s.csv",
		util.Slugify(sess.Participant), time.Now().Format(util.TimestampFormat))

	exp := &Export{Filename: filename, Data: data}
	path, err := s.results.Save(root, filename, data)
	if err != nil {
		exp.SaveWarning = fmt.Sprintf("could not save results to disk: %v", err)
	} else {
		exp.SavedPath = path
	}
	return exp, nil
}
