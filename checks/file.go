package checks

import (
	"context"
	"fmt"
	"os"

	"github.com/jonwraymond/healthops/health"
)

// File verifies that a file or directory exists.
type File struct {
	path    string
	wantDir bool
}

// NewFile creates a checker for a regular file path.
func NewFile(path string) *File {
	return &File{path: path}
}

// NewDir creates a checker for a directory path.
func NewDir(path string) *File {
	return &File{path: path, wantDir: true}
}

// Check implements health.Checker.
func (f *File) Check(ctx context.Context) health.Result {
	if f.path == "" {
		return health.Unhealthy("path not configured", fmt.Errorf("empty path"))
	}

	info, err := os.Stat(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return health.Unhealthy(fmt.Sprintf("%s does not exist", f.path), err)
		}
		return health.Unhealthy(fmt.Sprintf("cannot stat %s", f.path), err)
	}

	if f.wantDir != info.IsDir() {
		kind := "file"
		if f.wantDir {
			kind = "directory"
		}
		return health.Unhealthy(
			fmt.Sprintf("%s is not a %s", f.path, kind),
			fmt.Errorf("unexpected file mode %v", info.Mode()),
		)
	}

	return health.Healthy(fmt.Sprintf("%s present", f.path)).WithDetails(map[string]any{
		"size_bytes": info.Size(),
		"mode":       info.Mode().String(),
	})
}
