package files

import (
	"os"
	"path/filepath"

	"rentora/pkg/platform/sentinel"
)

// TemplateDir serves agreement templates from a directory laid out as
// <dir>/residence.docx, <dir>/commercial.docx.
type TemplateDir struct {
	dir string
}

func NewTemplateDir(dir string) *TemplateDir {
	return &TemplateDir{dir: dir}
}

// Template returns the raw .docx bytes for a building category.
func (t *TemplateDir) Template(category string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(t.dir, category+".docx"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, sentinel.ErrNotFound
		}
		return nil, err
	}
	return data, nil
}
