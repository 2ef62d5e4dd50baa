package img

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
)

// Read expands a leading ~ in path and returns the file contents.
func Read(path string) ([]byte, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if stat.IsDir() {
		return nil, fmt.Errorf("'%s' is a directory", path)
	}

	return os.ReadFile(path)
}
