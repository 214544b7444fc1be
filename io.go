package cliconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// LoadOrCreateDefault loads the configuration from configFilePath or creates
// the file (with the schema's default values and the given documentation) if
// it doesn't exist yet, returning the default in that case. Any I/O or format
// failure during either step propagates, annotated with the path.
func LoadOrCreateDefault[C RootConfig[C]](configFilePath string, tailComments string) (C, error) {
	config, found, err := Load[C](configFilePath)
	if err != nil {
		return config, err
	}
	if found {
		return config, nil
	}
	var zero C
	defaultConfig := zero.Default()
	if err := Save(defaultConfig, tailComments, configFilePath); err != nil {
		return zero, err
	}
	return defaultConfig, nil
}

// Load reads and deserializes the configuration at configFilePath, resolving
// the codec from the path's extension. A missing file is not an error: it is
// reported as found == false with a zero config. Any other read failure, and
// any deserialization failure, is wrapped with ErrLoadingConfig and the path.
func Load[C RootConfig[C]](configFilePath string) (config C, found bool, err error) {
	serde, err := serdeForPath(configFilePath)
	if err != nil {
		return config, false, fmt.Errorf("%w from '%s': %w", ErrLoadingConfig, configFilePath, err)
	}
	text, err := os.ReadFile(configFilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config, false, nil
		}
		return config, false, fmt.Errorf("%w from '%s': %w", ErrLoadingConfig, configFilePath, err)
	}
	if err := serde.DeserializeConfig(string(text), &config); err != nil {
		return config, false, fmt.Errorf("%w from '%s': %w", ErrLoadingConfig, configFilePath, err)
	}
	return config, true, nil
}

// Save serializes config -- with tailComment appended as a documentation
// block -- and writes it to configFilePath, replacing any existing content.
// The codec is resolved from the path's extension. The write is atomic
// (temp file in the same directory, fsync, rename), so a failure never
// leaves a partially written file behind. Failures are wrapped with
// ErrSavingConfig and the path.
func Save(config any, tailComment string, configFilePath string) error {
	serde, err := serdeForPath(configFilePath)
	if err != nil {
		return fmt.Errorf("%w into '%s': %w", ErrSavingConfig, configFilePath, err)
	}
	text, err := serde.SerializeConfig(config, tailComment)
	if err != nil {
		return fmt.Errorf("%w into '%s': %w", ErrSavingConfig, configFilePath, err)
	}
	if err := atomicWriteFile(configFilePath, []byte(text)); err != nil {
		return fmt.Errorf("%w into '%s': %w", ErrSavingConfig, configFilePath, err)
	}
	return nil
}

// PathExtension returns the file name's last dot-delimited suffix, including
// the dot ("app.config.ron" yields ".ron"). ok is false when the file name
// has no extension at all.
func PathExtension(path string) (ext string, ok bool) {
	ext = filepath.Ext(filepath.Base(path))
	return ext, ext != ""
}

// serdeForPath resolves the codec for a config file path, treating a missing
// extension as an unsupported format.
func serdeForPath(configFilePath string) (Serde, error) {
	ext, ok := PathExtension(configFilePath)
	if !ok {
		return nil, fmt.Errorf("%w: config file without an extension is not supported", ErrUnsupportedConfigFileFormat)
	}
	return SerdeForFileExtension(ext)
}

// atomicWriteFile writes data to path via a temp file in the same directory,
// synced and renamed over the destination.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	tempPath := tempFile.Name()
	defer os.Remove(tempPath) // no-op once renamed

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}
