package gen

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files beside their sources.
// Files whose content is unchanged are left untouched.
func WriteFiles(files []GeneratedFile) error {
	for _, file := range files {
		if err := os.MkdirAll(file.Dir, dirPerm); err != nil {
			return fmt.Errorf("creating directory %s: %w", file.Dir, err)
		}

		existing, err := os.ReadFile(file.Path())
		if err == nil && bytes.Equal(existing, file.Content) {
			continue
		}

		if err := os.WriteFile(file.Path(), file.Content, filePerm); err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}

// Staleness describes why a file on disk differs from generated output.
type Staleness string

const (
	StaleMissing  Staleness = "missing"
	StaleOutdated Staleness = "outdated"
)

// StaleFile is a generated file that does not match the file on disk.
type StaleFile struct {
	Path   string
	Reason Staleness
}

// Check compares generated files with the files on disk and returns those
// that are missing or differ.
func Check(files []GeneratedFile) ([]StaleFile, error) {
	var stale []StaleFile

	for _, file := range files {
		existing, err := os.ReadFile(file.Path())

		switch {
		case errors.Is(err, fs.ErrNotExist):
			stale = append(stale, StaleFile{Path: file.Path(), Reason: StaleMissing})
		case err != nil:
			return nil, fmt.Errorf("reading %s: %w", file.Path(), err)
		case !bytes.Equal(existing, file.Content):
			stale = append(stale, StaleFile{Path: file.Path(), Reason: StaleOutdated})
		}
	}

	return stale, nil
}
