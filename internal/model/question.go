package model

// Question is one folder of images presented for comparison. It is built
// once when a session starts and never mutated afterwards; only its position
// in the session's question list depends on the shuffle options.
type Question struct {
	Folder string   `json:"folder"`
	Path   string   `json:"path"`
	Images []string `json:"images"`
}

// HasImage reports whether name is one of the question's images.
func (q *Question) HasImage(name string) bool {
	for _, img := range q.Images {
		if img == name {
			return true
		}
	}
	return false
}

// ImagesExcept returns the question's images with name removed, keeping the
// session's display order.
func (q *Question) ImagesExcept(name string) []string {
	others := make([]string, 0, len(q.Images))
	for _, img := range q.Images {
		if img != name {
			others = append(others, img)
		}
	}
	return others
}
