package utils

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"
)

// ResolveSource turns a command line argument into SGF text: "-" reads
// stdin, an existing path is read from disk, anything else is the text.
func ResolveSource(arg string, stdin io.Reader) (string, error) {
	if arg == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	info, err := os.Stat(arg)
	if errors.Is(err, os.ErrNotExist) || errors.Is(err, syscall.ENAMETOOLONG) {
		// Not a path. Long SGF text fails Stat with ENAMETOOLONG.
		return arg, nil
	}
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", arg, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory", arg)
	}
	data, err := os.ReadFile(arg)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", arg, err)
	}
	return string(data), nil
}
