package filestore

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"github.com/rs/zerolog/log"
	"github.com/rowanvale/templateboard/internal/storage"
)

// FileStore keeps one file per key under Root. Writes replace the whole file
// atomically, so a crashed write never leaves a half-serialized slot behind.
type FileStore struct {
	Root string
}

func New(root string) (st storage.Storage, err error) {
	st = &FileStore{
		Root: root,
	}

	info, err := os.Stat(root)
	if err == nil {
		if !info.IsDir() {
			log.Error().Msg("not a directory")
			err = storage.ErrNotDir
		}
		return
	}

	if errors.Is(err, os.ErrNotExist) {
		err = os.MkdirAll(root, os.ModePerm)
	}

	if err != nil {
		log.Error().Err(err).Msg("internal error when setting up storage")
		err = storage.ErrInternal
	}

	return
}

func (s *FileStore) Get(ctx context.Context, key string) (value []byte, err error) {
	path := filepath.Join(s.Root, key)
	value, err = os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			err = storage.ErrNotExist
		} else {
			log.Error().Err(err).Msg("failed to read key at path " + path)
			err = storage.ErrInternal
		}
	}
	return
}

func (s *FileStore) Set(ctx context.Context, key string, value []byte) error {
	path := filepath.Join(s.Root, key)
	if err := atomic.WriteFile(path, bytes.NewReader(value)); err != nil {
		log.Error().Err(err).Msg("failed to write key at path " + path)
		return storage.ErrInternal
	}
	return nil
}

func (s *FileStore) Remove(ctx context.Context, key string) error {
	path := filepath.Join(s.Root, key)
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return storage.ErrNotExist
		}
		log.Error().Err(err).Msg("key removal error")
		return storage.ErrInternal
	}

	return nil
}
