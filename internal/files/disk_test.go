package files

import (
	"testing"

	"github.com/stretchr/testify/require"

	dErrors "rentora/pkg/domain-errors"
	"rentora/pkg/platform/sentinel"
)

func TestDiskRoundTrip(t *testing.T) {
	disk, err := NewDisk(t.TempDir())
	require.NoError(t, err)

	rel, err := disk.Save("uploads/tenant_1_aadhar.pdf", []byte("pdf bytes"))
	require.NoError(t, err)
	require.Equal(t, "uploads/tenant_1_aadhar.pdf", rel)

	data, err := disk.Open(rel)
	require.NoError(t, err)
	require.Equal(t, []byte("pdf bytes"), data)

	require.NoError(t, disk.Remove(rel))
	_, err = disk.Open(rel)
	require.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestDiskRejectsTraversal(t *testing.T) {
	disk, err := NewDisk(t.TempDir())
	require.NoError(t, err)

	for _, name := range []string{"../escape.txt", "a/../../escape.txt", "..", "/etc/passwd"} {
		_, err := disk.Open(name)
		if !dErrors.HasCode(err, dErrors.CodeBadRequest) {
			// Absolute paths are rebased under the root, so a not-found is
			// also acceptable; escaping the root never is.
			require.ErrorIs(t, err, sentinel.ErrNotFound, "path %q", name)
		}
	}
}

func TestDiskRemoveMissingIsNoop(t *testing.T) {
	disk, err := NewDisk(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, disk.Remove("never-existed.pdf"))
}

func TestTemplateDir(t *testing.T) {
	dir := t.TempDir()
	disk, err := NewDisk(dir)
	require.NoError(t, err)
	_, err = disk.Save("residence.docx", []byte("docx bytes"))
	require.NoError(t, err)

	templates := NewTemplateDir(dir)

	data, err := templates.Template("residence")
	require.NoError(t, err)
	require.Equal(t, []byte("docx bytes"), data)

	_, err = templates.Template("commercial")
	require.ErrorIs(t, err, sentinel.ErrNotFound)
}
