package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type FileOperations struct {
	bufferSize int
}

func NewFileOperations(bufferSize int) *FileOperations {
	if bufferSize <= 0 {
		bufferSize = 64 * 1024 // Default 64KB
	}
	return &FileOperations{
		bufferSize: bufferSize,
	}
}

// ReadRaw reads the entire file as raw bytes, before any decompression or
// decoding. Encoding detection needs the full content, so the whole file is
// loaded up front; the transform pipeline afterwards streams from memory.
func (fo *FileOperations) ReadRaw(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file %s: %w", path, err)
	}

	size := stat.Size()
	if size == 0 {
		return []byte{}, nil
	}

	// For small files, read all at once
	if size < int64(fo.bufferSize) {
		data := make([]byte, size)
		if _, err := io.ReadFull(file, data); err != nil {
			return nil, fmt.Errorf("failed to read small file %s: %w", path, err)
		}
		return data, nil
	}

	// For larger files, use buffered reading
	result := make([]byte, 0, size)
	buffer := make([]byte, fo.bufferSize)
	for {
		n, err := file.Read(buffer)
		if n > 0 {
			result = append(result, buffer[:n]...)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", path, err)
		}
	}

	return result, nil
}

// FindFiles walks rootDir and collects every regular file accepted by
// includeFunc. Unreadable entries are skipped rather than failing the walk.
func FindFiles(rootDir string, includeFunc func(string, os.FileInfo) bool) ([]string, error) {
	var files []string

	err := filepath.Walk(rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// Skip files/directories we can't access
			return nil
		}

		if info.IsDir() {
			return nil
		}

		if includeFunc(path, info) {
			files = append(files, path)
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to walk directory %s: %w", rootDir, err)
	}

	return files, nil
}

// IsLZ4Path reports whether the path names an LZ4 frame, handled
// transparently on both the read and write side.
func IsLZ4Path(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".lz4")
}

// RelSlash returns path relative to root in slash form. Batch mode uses it
// both for mirrored output paths and as the stable per-file stream name.
func RelSlash(root, path string) (string, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", fmt.Errorf("failed to relativize %s against %s: %w", path, root, err)
	}
	return filepath.ToSlash(rel), nil
}

// MirrorPath maps an input file under inputRoot to its counterpart under
// outputRoot, preserving the relative directory layout.
func MirrorPath(inputRoot, path, outputRoot string) (string, error) {
	rel, err := filepath.Rel(inputRoot, path)
	if err != nil {
		return "", fmt.Errorf("failed to relativize %s against %s: %w", path, inputRoot, err)
	}
	return filepath.Join(outputRoot, rel), nil
}

func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func GetFileSize(path string) (int64, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return stat.Size(), nil
}
