package fs

import (
	"fmt"
	"os"

	"github.com/akeil/roleicon/internal/logging"
)

// EnsureDir creates the given directory and any missing parents.
func EnsureDir(path string) error {
	err := os.MkdirAll(path, 0755)
	if err != nil {
		return fmt.Errorf("cannot create directory %q: %v", path, err)
	}
	return nil
}

// WriteFile writes data to path, replacing any existing file.
func WriteFile(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	_, err = f.Write(data)

	// Report the close error only if the write itself succeeded.
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	} else if closeErr != nil {
		logging.Error("Failed to close %v: %v", path, closeErr)
	}

	return err
}
