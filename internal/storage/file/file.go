package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bietkhonhungvandi212/pagesim/internal/storage/page"
	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

/**
* This module reads the access sequence from disk and writes the report
* next to it.
**/
type FileManager struct {
	Perm fs.FileMode
}

func NewFileManager() *FileManager {
	return &FileManager{Perm: 0o644}
}

// CheckPath resolves path and verifies it names a regular file.
func CheckPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", path, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("input file %q: %w", absPath, util.ErrFileNotFound)
		}
		return "", fmt.Errorf("stat %q: %w", absPath, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("input file %q: %w", absPath, util.ErrIsDirectory)
	}
	return absPath, nil
}

// OutputPath derives <dir>/<name>.<code><ext> from the input path.
func OutputPath(inputPath, code string) string {
	dir := filepath.Dir(inputPath)
	base := filepath.Base(inputPath)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	return filepath.Join(dir, name+"."+code+ext)
}

/* READ FILE */
func (fm *FileManager) ReadAccesses(path string) (page.Sequence, error) {
	absPath, err := CheckPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("[ReadAccesses] cannot open the file %q: %w", absPath, err)
	}

	seq, err := page.Deserialize(data)
	if err != nil {
		return nil, fmt.Errorf("[ReadAccesses] %s: %w", absPath, err)
	}
	return seq, nil
}

/* WRITE FILE */
func (fm *FileManager) WriteReport(path string, report string) error {
	if err := os.WriteFile(path, []byte(report), fm.Perm); err != nil {
		return fmt.Errorf("[WriteReport] cannot write output to file %q: %w", path, err)
	}
	return nil
}
