package validation

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"offerfeat/internal/errors"
)

// FileValidator checks the input datasets and the output location of a run
// before any data is read
type FileValidator struct {
	logger *slog.Logger
}

// NewFileValidator creates a new file validator
func NewFileValidator(logger *slog.Logger) *FileValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileValidator{
		logger: logger,
	}
}

// ValidateInputs checks every dataset file, reporting the first failure
func (v *FileValidator) ValidateInputs(paths ...string) error {
	for _, path := range paths {
		if err := v.ValidateFile(path); err != nil {
			return err
		}
	}
	return nil
}

// ValidateFile checks that path exists, is a regular file and is readable
func (v *FileValidator) ValidateFile(path string) error {
	if path == "" {
		return errors.NewAppValidationError("empty input path", nil)
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		v.logger.Error("Input file does not exist",
			slog.String("file", path))
		return errors.NewNotFoundError(path)
	}
	if err != nil {
		v.logger.Error("Failed to stat input file",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return errors.NewAppValidationError(fmt.Sprintf("stat %s", path), err)
	}
	if !info.Mode().IsRegular() {
		v.logger.Error("Input path is not a regular file",
			slog.String("path", path))
		return errors.NewAppValidationError(fmt.Sprintf("%s is not a regular file", path), nil)
	}

	file, err := os.Open(path)
	if err != nil {
		v.logger.Error("Input file is not readable",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return errors.NewAppValidationError(fmt.Sprintf("%s is not readable", path), err)
	}
	file.Close()

	v.logger.Debug("Input file validated",
		slog.String("file", path),
		slog.Int64("size", info.Size()))
	return nil
}

// ValidateOutputPath ensures the directory that will hold path exists and is
// writable, creating it when missing. path itself must not be a directory.
func (v *FileValidator) ValidateOutputPath(path string) error {
	if path == "" {
		return errors.NewAppValidationError("empty output path", nil)
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		v.logger.Error("Output path is a directory",
			slog.String("path", path))
		return errors.NewAppValidationError(fmt.Sprintf("%s is a directory", path), nil)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		v.logger.Error("Failed to create output directory",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return errors.NewStorageError(fmt.Sprintf("create output directory %s", dir), err)
	}

	// Verify it's writable by creating a probe file
	probe, err := os.CreateTemp(dir, ".write_test")
	if err != nil {
		v.logger.Error("Output directory is not writable",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return errors.NewStorageError(fmt.Sprintf("output directory %s is not writable", dir), err)
	}
	name := probe.Name()
	probe.Close()
	os.Remove(name)

	v.logger.Debug("Output path validated",
		slog.String("path", path))
	return nil
}
