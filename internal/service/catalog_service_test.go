package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAllowlist = []string{"left.png", "right.png"}

// writeFixture builds a study root with the given folder -> filenames layout.
func writeFixture(t *testing.T, layout map[string][]string) string {
	t.Helper()
	root := t.TempDir()
	for folder, files := range layout {
		dir := filepath.Join(root, folder)
		require.NoError(t, os.MkdirAll(dir, 0755))
		for _, f := range files {
			require.NoError(t, os.WriteFile(filepath.Join(dir, f), []byte("img"), 0644))
		}
	}
	return root
}

func TestListFoldersSorted(t *testing.T) {
	root := writeFixture(t, map[string][]string{
		"Set C": nil, "Set A": nil, "Set B": nil,
	})

	c := NewCatalogService(testAllowlist)
	assert.Equal(t, []string{"Set A", "Set B", "Set C"}, c.ListFolders(root))
}

func TestListFoldersMissingRootIsEmpty(t *testing.T) {
	c := NewCatalogService(testAllowlist)
	assert.Empty(t, c.ListFolders(filepath.Join(t.TempDir(), "does-not-exist")))
}

func TestListImagesFiltersAllowlistAndExtension(t *testing.T) {
	root := writeFixture(t, map[string][]string{
		"Set A": {"right.png", "left.png", "extra.png", "left.txt", "notes.md"},
	})

	c := NewCatalogService(testAllowlist)
	got := c.ListImages(filepath.Join(root, "Set A"))
	assert.Equal(t, []string{"left.png", "right.png"}, got)
}

func TestListImagesMissingFolderIsEmpty(t *testing.T) {
	c := NewCatalogService(testAllowlist)
	assert.Empty(t, c.ListImages(filepath.Join(t.TempDir(), "nope")))
}

func TestLoadExcludesFoldersWithoutQualifyingImages(t *testing.T) {
	root := writeFixture(t, map[string][]string{
		"A": {"left.png", "right.png"},
		"B": {"something_else.png", "readme.txt"},
	})

	c := NewCatalogService(testAllowlist)
	questions := c.Load(root)
	require.Len(t, questions, 1)
	assert.Equal(t, "A", questions[0].Folder)
	assert.Equal(t, []string{"left.png", "right.png"}, questions[0].Images)
	assert.Equal(t, filepath.Join(root, "A"), questions[0].Path)
}

func TestDefaultAllowlistUsedWhenEmpty(t *testing.T) {
	root := writeFixture(t, map[string][]string{
		"A": {"Mirror Change Top Layers _ Alpha_ 0_5.png", "left.png"},
	})

	c := NewCatalogService(nil)
	got := c.ListImages(filepath.Join(root, "A"))
	assert.Equal(t, []string{"Mirror Change Top Layers _ Alpha_ 0_5.png"}, got)
}
