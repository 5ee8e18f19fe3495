package loader

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vvka-141/linkaudit/internal/files/filesystem"
	"github.com/vvka-141/linkaudit/pkg/linkaudit"
)

// Loader reads data files through a filesystem provider.
// Loader is safe for concurrent use by multiple goroutines as long as the
// provided fsProvider is also thread-safe.
type Loader struct {
	fsProvider filesystem.FileSystemProvider
}

// NewLoader creates a loader backed by the OS filesystem.
func NewLoader() *Loader {
	return &Loader{fsProvider: filesystem.NewOSFileSystem()}
}

// NewLoaderWithFS creates a loader with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider is nil.
func NewLoaderWithFS(fsProvider filesystem.FileSystemProvider) *Loader {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Loader{fsProvider: fsProvider}
}

// Load reads the file at path and splits it into lines.
func (l *Loader) Load(path string) (linkaudit.Source, error) {
	if strings.TrimSpace(path) == "" {
		return linkaudit.Source{}, fmt.Errorf("empty path: %w", linkaudit.ErrUnreadableInput)
	}

	info, err := l.fsProvider.Stat(path)
	if err != nil {
		return linkaudit.Source{}, fmt.Errorf("%w: %s: %w", linkaudit.ErrUnreadableInput, path, err)
	}
	if info.IsDir() {
		return linkaudit.Source{}, fmt.Errorf("%w: %s: is a directory", linkaudit.ErrUnreadableInput, path)
	}

	content, err := l.fsProvider.ReadFile(path)
	if err != nil {
		return linkaudit.Source{}, fmt.Errorf("%w: %s: %w", linkaudit.ErrUnreadableInput, path, err)
	}

	if !utf8.Valid(content) {
		line := firstInvalidLine(content)
		return linkaudit.Source{}, fmt.Errorf("%w: %s: invalid UTF-8 on line %d", linkaudit.ErrUnreadableInput, path, line)
	}

	return linkaudit.Source{
		Path:    path,
		Content: content,
		Lines:   SplitLines(string(content)),
	}, nil
}

// newlines maps CRLF and lone CR line endings to LF.
var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// NormalizeNewlines converts CRLF and lone CR line endings to LF.
func NormalizeNewlines(content string) string {
	return newlines.Replace(content)
}

// SplitLines splits content into 1-based numbered lines. LF, CRLF and a
// lone CR all end a line, and a final line ending does not produce an
// extra empty line.
func SplitLines(content string) []linkaudit.Line {
	if content == "" {
		return nil
	}

	raw := strings.Split(NormalizeNewlines(content), "\n")
	if raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
	}

	lines := make([]linkaudit.Line, len(raw))
	for i, text := range raw {
		lines[i] = linkaudit.Line{
			Number: i + 1,
			Text:   text,
		}
	}
	return lines
}

// firstInvalidLine returns the 1-based line holding the first invalid UTF-8 sequence.
func firstInvalidLine(content []byte) int {
	for i := 0; i < len(content); {
		r, size := utf8.DecodeRune(content[i:])
		if r == utf8.RuneError && size <= 1 {
			return strings.Count(NormalizeNewlines(string(content[:i])), "\n") + 1
		}
		i += size
	}
	return 0
}

// Verify Loader implements the interface at compile time
var _ linkaudit.SourceLoader = (*Loader)(nil)
