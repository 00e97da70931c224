package preflight

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"clausecheck/internal/config"
	"clausecheck/internal/requirements"
)

// minFreeDiskBytes is the floor below which the data directory is considered
// too full to accept new review jobs.
const minFreeDiskBytes = 256 << 20

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes all preflight checks for the given config.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckDirectoryAccess("Data directory", cfg.Paths.DataDir),
		CheckDirectoryAccess("Inbox directory", cfg.Paths.InboxDir),
		CheckDirectoryAccess("Log directory", cfg.Paths.LogDir),
		CheckFreeDiskSpace("Data disk space", cfg.Paths.DataDir),
		CheckRequirements("Requirements file", cfg.Review.RequirementsPath),
	}
	return results
}

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckFreeDiskSpace verifies the filesystem holding path has room for new
// job artifacts.
func CheckFreeDiskSpace(name, path string) Result {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: statfs: %v)", path, err)}
	}
	free := stat.Bavail * uint64(stat.Bsize)
	if free < minFreeDiskBytes {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: only %d MiB free)", path, free>>20)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%d MiB free)", path, free>>20)}
}

// CheckRequirements verifies the clause requirements file parses and its
// locators compile.
func CheckRequirements(name, path string) Result {
	reqs, err := requirements.Load(path)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}
	if _, err := requirements.CompilePatterns(reqs); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%d clauses)", path, len(reqs.Clauses))}
}
