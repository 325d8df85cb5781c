package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/ahmadalarjah/crypto-admin/internal/domain"
)

// FileStore keeps the session in a single JSON file, written via a
// temp-file rename so token and identity land together or not at all.
type FileStore struct {
	Path string
	Role string
	Now  func() time.Time
}

type fileRecord struct {
	Token string          `json:"token"`
	User  domain.Identity `json:"user"`
}

func NewFileStore(path, role string) *FileStore {
	return &FileStore{Path: path, Role: role, Now: time.Now}
}

func (s *FileStore) Load(ctx context.Context) (domain.Session, error) {
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Session{}, domain.ErrNoSession
		}
		return domain.Session{}, fmt.Errorf("read session file: %w", err)
	}
	var record fileRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		_ = s.Clear(ctx)
		return domain.Session{}, domain.ErrNoSession
	}
	sess := domain.Session{Identity: record.User, Token: record.Token}
	if !validate(sess, s.Role, s.now()) {
		_ = s.Clear(ctx)
		return domain.Session{}, domain.ErrNoSession
	}
	return sess, nil
}

func (s *FileStore) Save(ctx context.Context, sess domain.Session) error {
	record := fileRecord{Token: sess.Token, User: sess.Identity}
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("create session temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write session: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("chmod session: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close session temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.Path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}

func (s *FileStore) Clear(ctx context.Context) error {
	if err := os.Remove(s.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

func (s *FileStore) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
