package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
)

// Local writes uploads into a directory that is also served as static files.
// Names are derived from ids and client file names, so a repeated name overwrites the earlier file.
type Local struct {
	Dir string
}

// NewLocal creates dir if needed
func NewLocal(dir string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Local{Dir: dir}, nil
}

// Save copies src into Dir/name and returns the stored route, "<dir>/<name>"
func (l *Local) Save(name string, src io.Reader) (string, error) {
	dst, err := os.Create(filepath.Join(l.Dir, name))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return "", err
	}
	if err := dst.Close(); err != nil {
		return "", err
	}
	return path.Join(filepath.ToSlash(l.Dir), name), nil
}

// PhotoName is the gallery file name for an upload by userID
func PhotoName(userID uint, filename string) string {
	return fmt.Sprintf("user_%d_%s", userID, cleanBase(filename))
}

// DeliveryPhotoName is the proof-of-delivery file name for packageID
func DeliveryPhotoName(packageID uint, filename string) string {
	return fmt.Sprintf("delivery_%d_%s", packageID, cleanBase(filename))
}

// cleanBase strips any directory part so a client name cannot escape Dir
func cleanBase(filename string) string {
	base := filepath.Base(filepath.FromSlash(filename))
	if base == "." || base == string(filepath.Separator) || base == ".." {
		return "upload"
	}
	return base
}
