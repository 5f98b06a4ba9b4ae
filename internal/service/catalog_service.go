package service

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"image_study_backend/internal/model"
	"image_study_backend/internal/util"
)

// CatalogService enumerates the study root. All enumeration is fail-soft: a
// missing or unreadable path yields an empty list, never an error, so the UI
// stays usable with a misconfigured root.
type CatalogService struct {
	mu      sync.RWMutex
	allowed map[string]bool
	exts    map[string]bool
}

func NewCatalogService(allowedImages []string) *CatalogService {
	c := &CatalogService{
		exts: make(map[string]bool, len(util.ImageExtensions)),
	}
	for _, ext := range util.ImageExtensions {
		c.exts[ext] = true
	}
	c.SetAllowedImages(allowedImages)
	return c
}

// SetAllowedImages replaces the filename allowlist. An empty list falls back
// to the built-in default pair. Called on config hot reload.
func (c *CatalogService) SetAllowedImages(allowedImages []string) {
	if len(allowedImages) == 0 {
		allowedImages = util.DefaultAllowedImages
	}
	allowed := make(map[string]bool, len(allowedImages))
	for _, name := range allowedImages {
		allowed[name] = true
	}
	c.mu.Lock()
	c.allowed = allowed
	c.mu.Unlock()
}

// ListFolders returns the sorted immediate subdirectory names of root, or an
// empty list on any filesystem error.
func (c *CatalogService) ListFolders(root string) []string {
	entries, err := os.ReadDir(root)
	if err != nil {
		return []string{}
	}
	folders := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			folders = append(folders, e.Name())
		}
	}
	sort.Strings(folders)
	return folders
}

// ListImages returns the sorted filenames in folderPath whose extension is a
// known image extension and whose exact name is on the allowlist, or an
// empty list on any filesystem error.
func (c *CatalogService) ListImages(folderPath string) []string {
	entries, err := os.ReadDir(folderPath)
	if err != nil {
		return []string{}
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	files := make([]string, 0, len(c.allowed))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if c.exts[ext] && c.allowed[name] {
			files = append(files, name)
		}
	}
	sort.Strings(files)
	return files
}

// Load builds the question catalog in folder-sorted order, excluding folders
// with no qualifying images.
func (c *CatalogService) Load(root string) []model.Question {
	folders := c.ListFolders(root)
	questions := make([]model.Question, 0, len(folders))
	for _, folder := range folders {
		path := filepath.Join(root, folder)
		images := c.ListImages(path)
		if len(images) == 0 {
			continue
		}
		questions = append(questions, model.Question{
			Folder: folder,
			Path:   path,
			Images: images,
		})
	}
	return questions
}
