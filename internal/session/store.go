package session

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gofrs/flock"

	"github.com/vidnote/audiofetch/internal/model"
)

const (
	dirPermissions = 0o755

	// LockFileName is the advisory lock file inside each session
	// directory. The aggregator skips it when listing assets.
	LockFileName = ".audiofetch.lock"
)

// Store allocates session directories under a single work root. Sessions
// are never deleted by the store; artifact lifetime belongs to the caller.
type Store struct {
	workRoot string

	mu     sync.Mutex
	titles map[string]*sync.Mutex
}

// NewStore creates a Store rooted at workRoot. The root itself is created
// lazily on first allocation.
func NewStore(workRoot string) *Store {
	return &Store{
		workRoot: workRoot,
		titles:   make(map[string]*sync.Mutex),
	}
}

// WorkRoot returns the configured work root directory.
func (s *Store) WorkRoot() string {
	return s.workRoot
}

// Session is a filesystem scope exclusively owned by one invocation
// between Lock and Unlock.
type Session struct {
	rootPath string

	titleMu *sync.Mutex
	fileLk  *flock.Flock
}

// RootPath returns the session directory path.
func (sn *Session) RootPath() string {
	return sn.rootPath
}

// Allocate derives the session directory for title and creates it if
// absent. Derivation is deterministic: the same title always yields the
// same path, and creating an existing directory is not an error.
func (s *Store) Allocate(title string) (*Session, error) {
	name := SanitizeTitle(title)
	if name == "" {
		return nil, model.NewError(model.ErrStorage,
			"title %q is empty after sanitation", title)
	}

	rootPath := filepath.Join(s.workRoot, name)
	if err := os.MkdirAll(rootPath, dirPermissions); err != nil {
		return nil, model.NewError(model.ErrStorage,
			"create session directory %s: %v", rootPath, err)
	}

	return &Session{
		rootPath: rootPath,
		titleMu:  s.titleMutex(name),
		fileLk:   flock.New(filepath.Join(rootPath, LockFileName)),
	}, nil
}

// Lock acquires exclusive ownership of the session directory for the
// duration of extraction: an in-process mutex keyed by title, then an OS
// advisory lock so writers in other processes also serialize.
func (sn *Session) Lock() error {
	sn.titleMu.Lock()
	if err := sn.fileLk.Lock(); err != nil {
		sn.titleMu.Unlock()
		return model.NewError(model.ErrStorage,
			"lock session directory %s: %v", sn.rootPath, err)
	}
	return nil
}

// Unlock releases session ownership. Safe to call after a failed Lock
// only if Lock returned nil.
func (sn *Session) Unlock() {
	_ = sn.fileLk.Unlock()
	sn.titleMu.Unlock()
}

func (s *Store) titleMutex(name string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	mu, ok := s.titles[name]
	if !ok {
		mu = &sync.Mutex{}
		s.titles[name] = mu
	}
	return mu
}

// SanitizeTitle makes a platform title safe to use as a directory name:
// path separators and control bytes are replaced, surrounding whitespace
// and dots are trimmed. Deterministic, so path derivation stays stable.
func SanitizeTitle(title string) string {
	sanitized := strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\' || r == os.PathSeparator:
			return '_'
		case r < 0x20 || r == 0x7f:
			return -1
		default:
			return r
		}
	}, title)
	return strings.Trim(sanitized, " .")
}
