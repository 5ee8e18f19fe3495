package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

type memoryEntry struct {
	content []byte
	readErr error
	info    *memoryFileInfo
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// Safe for concurrent use by multiple goroutines.
type MemoryFileSystem struct {
	mu    sync.RWMutex
	files map[string]*memoryEntry // map of absolute path -> entry
	root  string                  // root directory path
	reads int
}

// NewMemoryFileSystem creates a new in-memory filesystem.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		files: make(map[string]*memoryEntry),
		root:  root,
	}
	mfs.files[root] = &memoryEntry{
		info: &memoryFileInfo{name: path.Base(root), mode: 0755 | fs.ModeDir, modTime: time.Now(), isDir: true},
	}
	return mfs
}

// AddFile adds a file to the in-memory filesystem
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.resolve(filePath)
	mfs.files[absPath] = &memoryEntry{
		content: []byte(content),
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(content)),
			mode:    0644,
			modTime: time.Now(),
		},
	}
	mfs.ensureDirectoriesExist(absPath)
}

// AddDir adds an empty directory entry.
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.resolve(dirPath)
	mfs.files[absPath] = &memoryEntry{
		info: &memoryFileInfo{name: path.Base(absPath), mode: 0755 | fs.ModeDir, modTime: time.Now(), isDir: true},
	}
	mfs.ensureDirectoriesExist(absPath)
}

// AddUnreadableFile adds a file that exists but fails every read with err.
// Useful for simulating permission problems.
func (mfs *MemoryFileSystem) AddUnreadableFile(filePath string, err error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.resolve(filePath)
	mfs.files[absPath] = &memoryEntry{
		readErr: err,
		info:    &memoryFileInfo{name: path.Base(absPath), mode: 0000, modTime: time.Now()},
	}
	mfs.ensureDirectoriesExist(absPath)
}

// Reads returns how many ReadFile calls reached an existing entry.
func (mfs *MemoryFileSystem) Reads() int {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()
	return mfs.reads
}

// resolve maps a path onto the virtual tree. Callers hold mu.
func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if strings.HasPrefix(p, "/") || path.IsAbs(p) {
		return path.Clean(p)
	}
	return path.Clean(path.Join(mfs.root, p))
}

// ensureDirectoriesExist creates directory entries for all parent directories
func (mfs *MemoryFileSystem) ensureDirectoriesExist(filePath string) {
	dir := path.Dir(filePath)
	if dir == "." || dir == "/" || dir == mfs.root {
		return
	}
	if _, exists := mfs.files[dir]; exists {
		return
	}
	mfs.files[dir] = &memoryEntry{
		info: &memoryFileInfo{name: path.Base(dir), mode: 0755 | fs.ModeDir, modTime: time.Now(), isDir: true},
	}
	mfs.ensureDirectoriesExist(dir)
}

// ReadFile implements FileSystemProvider.ReadFile.
// Missing files return an error wrapping fs.ErrNotExist.
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	entry, exists := mfs.files[mfs.resolve(filePath)]
	if !exists {
		return nil, fmt.Errorf("file not found: %s: %w", filePath, fs.ErrNotExist)
	}
	mfs.reads++

	if entry.info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}
	if entry.readErr != nil {
		return nil, entry.readErr
	}

	out := make([]byte, len(entry.content))
	copy(out, entry.content)
	return out, nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	entry, exists := mfs.files[mfs.resolve(statPath)]
	if !exists {
		return nil, fmt.Errorf("path not found: %s: %w", statPath, fs.ErrNotExist)
	}
	return entry.info, nil
}

var _ FileSystemProvider = (*MemoryFileSystem)(nil)
