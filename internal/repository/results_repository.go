package repository

import (
	"os"
	"path/filepath"

	"image_study_backend/internal/util"
)

// ResultsRepository writes exported CSVs under {root}/results. Filenames
// carry a timestamp, so files are only ever added, never overwritten.
type ResultsRepository struct{}

func NewResultsRepository() *ResultsRepository {
	return &ResultsRepository{}
}

// Save writes data to {root}/results/{filename} and returns the full path.
func (r *ResultsRepository) Save(root, filename string, data []byte) (string, error) {
	dir := filepath.Join(root, util.ResultsDirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}
