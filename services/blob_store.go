package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/l3montree-dev/incidentguard/shared"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

var defaultAllowedExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".pdf", ".txt", ".log", ".csv", ".json", ".md", ".zip"}

const defaultAttachmentMaxBytes int64 = 10 << 20

type AttachmentConfig struct {
	Dir               string
	MaxBytes          int64
	AllowedExtensions []string
}

// AttachmentConfigFromEnv reads ATTACHMENT_DIR, ATTACHMENT_MAX_BYTES and
// ATTACHMENT_ALLOWED_EXTENSIONS (comma separated, with or without dot).
func AttachmentConfigFromEnv() AttachmentConfig {
	cfg := AttachmentConfig{
		Dir:               shared.GetEnvOrDefault("ATTACHMENT_DIR", "./attachments"),
		MaxBytes:          defaultAttachmentMaxBytes,
		AllowedExtensions: defaultAllowedExtensions,
	}

	if raw := os.Getenv("ATTACHMENT_MAX_BYTES"); raw != "" {
		maxBytes, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || maxBytes <= 0 {
			slog.Warn("invalid ATTACHMENT_MAX_BYTES, using default", "value", raw)
		} else {
			cfg.MaxBytes = maxBytes
		}
	}

	if raw := os.Getenv("ATTACHMENT_ALLOWED_EXTENSIONS"); raw != "" {
		var exts []string
		for _, ext := range strings.Split(raw, ",") {
			ext = strings.ToLower(strings.TrimSpace(ext))
			if ext == "" {
				continue
			}
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			exts = append(exts, ext)
		}
		cfg.AllowedExtensions = exts
	}
	return cfg
}

// fsBlobStore keeps blobs as files below the root of an afero filesystem.
type fsBlobStore struct {
	fs afero.Fs
}

var _ shared.BlobStore = (*fsBlobStore)(nil)

func NewFSBlobStore(fs afero.Fs) *fsBlobStore {
	return &fsBlobStore{fs: fs}
}

// NewLocalBlobStore stores blobs on disk below cfg.Dir.
func NewLocalBlobStore(cfg AttachmentConfig) (*fsBlobStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0o750); err != nil {
		return nil, errors.Wrap(err, "could not create attachment directory")
	}
	return NewFSBlobStore(afero.NewBasePathFs(afero.NewOsFs(), cfg.Dir)), nil
}

func cleanKey(key string) (string, error) {
	cleaned := path.Clean("/" + key)
	if cleaned == "/" || strings.Contains(key, "..") {
		return "", shared.Invalid(fmt.Sprintf("invalid storage key %q", key))
	}
	return cleaned, nil
}

// Put copies at most maxBytes from r. Larger contents are rejected and
// nothing is kept.
func (s *fsBlobStore) Put(ctx context.Context, key string, r io.Reader, maxBytes int64) (int64, error) {
	name, err := cleanKey(key)
	if err != nil {
		return 0, err
	}
	if err := s.fs.MkdirAll(path.Dir(name), 0o750); err != nil {
		return 0, shared.Transient(err, "could not create blob directory")
	}

	f, err := s.fs.OpenFile(name, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o640)
	if err != nil {
		return 0, shared.Transient(err, "could not create blob")
	}

	n, err := io.Copy(f, io.LimitReader(r, maxBytes+1))
	closeErr := f.Close()
	switch {
	case err != nil:
		_ = s.fs.Remove(name)
		return 0, shared.Transient(err, "could not write blob")
	case n > maxBytes:
		_ = s.fs.Remove(name)
		return 0, shared.Invalid(fmt.Sprintf("file exceeds the maximum size of %d bytes", maxBytes))
	case closeErr != nil:
		_ = s.fs.Remove(name)
		return 0, shared.Transient(closeErr, "could not write blob")
	}
	return n, nil
}

func (s *fsBlobStore) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	name, err := cleanKey(key)
	if err != nil {
		return nil, err
	}
	f, err := s.fs.Open(name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, shared.NotFound("attachment content not found")
		}
		return nil, shared.Transient(err, "could not open blob")
	}
	return f, nil
}

func (s *fsBlobStore) Delete(ctx context.Context, key string) error {
	name, err := cleanKey(key)
	if err != nil {
		return err
	}
	if err := s.fs.Remove(name); err != nil && !os.IsNotExist(err) {
		return shared.Transient(err, "could not delete blob")
	}
	return nil
}
