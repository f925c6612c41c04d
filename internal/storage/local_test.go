package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSave_WritesAndOverwrites(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	l, err := NewLocal(dir)
	require.NoError(t, err)

	route, err := l.Save(PhotoName(7, "a.jpg"), strings.NewReader("first"))
	require.NoError(t, err)
	assert.Equal(t, filepath.ToSlash(dir)+"/user_7_a.jpg", route)

	_, err = l.Save(PhotoName(7, "a.jpg"), strings.NewReader("second"))
	require.NoError(t, err)

	b, err := os.ReadFile(filepath.Join(dir, "user_7_a.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(b))
}

func TestSave_MissingDir(t *testing.T) {
	l := &Local{Dir: filepath.Join(t.TempDir(), "gone")}
	_, err := l.Save("x.jpg", strings.NewReader("x"))
	assert.Error(t, err)
}

func TestNames(t *testing.T) {
	assert.Equal(t, "user_3_photo.png", PhotoName(3, "photo.png"))
	assert.Equal(t, "delivery_2_proof.jpg", DeliveryPhotoName(2, "proof.jpg"))
	assert.Equal(t, "user_1_passwd", PhotoName(1, "../../etc/passwd"))
	assert.Equal(t, "delivery_1_upload", DeliveryPhotoName(1, ".."))
}
