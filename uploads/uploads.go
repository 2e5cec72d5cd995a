// Package uploads stores multipart image files under the uploads directory
// with collision-resistant names and serves them back under /uploads/.
package uploads

import (
	"fmt"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// MaxFileSize caps a single upload at 50 MB.
const MaxFileSize = 50 << 20

// URLPrefix is the public path uploaded files are served under.
const URLPrefix = "/uploads/"

var (
	ErrNoFile   = errors.New("no image uploaded")
	ErrNotImage = errors.New("only image files allowed")
	ErrTooLarge = errors.New("file too large")
)

var allowedExt = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// SaveFunc writes a multipart file to disk; gin's Context.SaveUploadedFile
// satisfies it.
type SaveFunc func(file *multipart.FileHeader, dst string) error

// Save validates the uploaded image and writes it into dir, returning the
// public path. The generated name is "img-<unixms>-<rand><ext>".
func Save(file *multipart.FileHeader, dir string, save SaveFunc) (string, error) {
	if file == nil {
		return "", ErrNoFile
	}
	if file.Size > MaxFileSize {
		return "", ErrTooLarge
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExt[ext] {
		return "", ErrNotImage
	}
	if ct := file.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") {
		return "", ErrNotImage
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(err, "create uploads dir")
	}
	name := fmt.Sprintf("img-%d-%d%s", time.Now().UnixMilli(), rand.Int63n(1_000_000_000), ext)
	if err := save(file, filepath.Join(dir, name)); err != nil {
		return "", errors.Wrap(err, "save upload")
	}
	return URLPrefix + name, nil
}
