package uploads

import (
	"errors"
	"mime/multipart"
	"net/textproto"
	"path/filepath"
	"regexp"
	"testing"
)

func header(name, contentType string, size int64) *multipart.FileHeader {
	h := &multipart.FileHeader{
		Filename: name,
		Size:     size,
		Header:   textproto.MIMEHeader{},
	}
	if contentType != "" {
		h.Header.Set("Content-Type", contentType)
	}
	return h
}

func noopSave(*multipart.FileHeader, string) error { return nil }

func TestSave_GeneratesCollisionResistantName(t *testing.T) {
	var savedTo string
	save := func(_ *multipart.FileHeader, dst string) error {
		savedTo = dst
		return nil
	}

	path, err := Save(header("photo.PNG", "image/png", 100), t.TempDir(), save)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	pattern := regexp.MustCompile(`^/uploads/img-\d+-\d+\.png$`)
	if !pattern.MatchString(path) {
		t.Fatalf("unexpected public path %q", path)
	}
	if filepath.Base(savedTo) != path[len(URLPrefix):] {
		t.Fatalf("disk name %q does not match public path %q", savedTo, path)
	}
}

func TestSave_RejectsNonImage(t *testing.T) {
	cases := []*multipart.FileHeader{
		header("script.exe", "application/octet-stream", 10),
		header("notes.txt", "text/plain", 10),
		header("photo.png", "text/html", 10),
	}
	for _, h := range cases {
		if _, err := Save(h, t.TempDir(), noopSave); !errors.Is(err, ErrNotImage) {
			t.Errorf("Save(%s, %s): got %v, want ErrNotImage", h.Filename, h.Header.Get("Content-Type"), err)
		}
	}
}

func TestSave_RejectsMissingAndOversizedFiles(t *testing.T) {
	if _, err := Save(nil, t.TempDir(), noopSave); !errors.Is(err, ErrNoFile) {
		t.Fatalf("nil file: got %v, want ErrNoFile", err)
	}
	big := header("photo.png", "image/png", MaxFileSize+1)
	if _, err := Save(big, t.TempDir(), noopSave); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("oversized file: got %v, want ErrTooLarge", err)
	}
}
