package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

const (
	thumbnailWidth  = 250
	thumbnailHeight = 250
)

// Storage handles files under a single root directory.
type Storage struct {
	root     string
	maxBytes int
}

func New(root string, maxBytes int) (*Storage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage root: %w", err)
	}

	return &Storage{root: root, maxBytes: maxBytes}, nil
}

// Resolve returns the absolute path of a stored file.
func (s *Storage) Resolve(filename string) string {
	return filepath.Join(s.root, filename)
}

// Exists reports whether a stored file is present on disk.
func (s *Storage) Exists(filename string) bool {
	if filename == "" {
		return false
	}

	_, err := os.Stat(s.Resolve(filename))

	return err == nil
}

func (s *Storage) MaxBytes() int {
	return s.maxBytes
}

// Thumbnail scales the source image to a 250x250 PNG at dest, cropping to
// fill the frame.
func (s *Storage) Thumbnail(src, dest string) error {
	img, err := imaging.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open upload: %w", err)
	}

	thumb := imaging.Fill(img, thumbnailWidth, thumbnailHeight, imaging.Center, imaging.Lanczos)

	if err := imaging.Save(thumb, dest); err != nil {
		return fmt.Errorf("failed to save thumbnail: %w", err)
	}

	return nil
}
