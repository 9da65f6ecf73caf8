package afs

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

const GZIP_EXTENSION = ".gz"

var gzipMagic = []byte{0x1f, 0x8b}

// OpenReader opens the file at path for reading, gzip-compressed files (.gz extension or gzip
// magic number) are transparently decompressed.
func OpenReader(fls Filesystem, path string) (io.ReadCloser, error) {
	f, err := fls.Open(path)
	if err != nil {
		return nil, err
	}

	buffered := bufio.NewReader(f)
	header, _ := buffered.Peek(len(gzipMagic))

	if !strings.HasSuffix(path, GZIP_EXTENSION) && !bytes.Equal(header, gzipMagic) {
		return &readCloser{Reader: buffered, closers: []io.Closer{f}}, nil
	}

	gzipReader, err := gzip.NewReader(buffered)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &readCloser{Reader: gzipReader, closers: []io.Closer{gzipReader, f}}, nil
}

// WriteFile creates or truncates the file at path and writes content to it.
func WriteFile(fls Filesystem, path string, content []byte) error {
	f, err := fls.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	_, err = f.Write(content)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return err
}

type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error {
	var firstErr error
	for _, c := range r.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
