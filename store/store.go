// Package store reads page images from the backing file that holds the
// full contents of the simulated logical address space.
package store

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrShortRead reports a page read that could not be satisfied in full,
// which means the backing file is truncated or undersized.
var ErrShortRead = errors.New("Short read from backing store")

// Store is read-only access to the backing image. Page p occupies the
// byte range [p*pageSize, (p+1)*pageSize).
type Store interface {
	ReadPage(page uint8) ([]byte, error)
	Size() (int64, error)
	Name() string
	Close() error
}

type backingstore struct {
	name     string
	pageSize int
	fd       *os.File
}

// Open opens the backing image for reading. The file is not required to
// cover the whole address space up front; an undersized file surfaces
// as ErrShortRead when the missing page is fetched.
func Open(path string, pageSize int) (Store, error) {
	f, err := os.OpenFile(path, os.O_RDONLY, 0665)
	if err != nil {
		return nil, fmt.Errorf("Could not open backing store %s: %w", path, err)
	}
	return &backingstore{
		name:     path,
		pageSize: pageSize,
		fd:       f,
	}, nil
}

func (s *backingstore) Name() string {
	return s.name
}

// ReadPage fetches one full page image. The buffer is fresh on every
// call; the caller owns it.
func (s *backingstore) ReadPage(page uint8) ([]byte, error) {
	buf := make([]byte, s.pageSize)
	n, err := s.fd.ReadAt(buf, int64(page)*int64(s.pageSize))
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: page %d, got %d of %d bytes", ErrShortRead, page, n, s.pageSize)
		}
		return nil, fmt.Errorf("Could not read page %d: %w", page, err)
	}
	return buf, nil
}

func (s *backingstore) Size() (int64, error) {
	info, err := s.fd.Stat()
	if err != nil {
		return 0, errors.New("Could not stat backing store file descriptor")
	}
	return info.Size(), nil
}

func (s *backingstore) Close() error {
	return s.fd.Close()
}
