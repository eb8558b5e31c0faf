// seehuhn.de/go/svgicons - icon sets from SVG fonts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/coyove/bbolt"
)

// MemoryStore keeps the settings in memory.
// The zero value is an empty store.
type MemoryStore struct {
	mu    sync.Mutex
	data  []byte
	Saves int
}

// Load implements the [Store] interface.
func (m *MemoryStore) Load(ctx context.Context) (*Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return nil, nil
	}
	return decode(m.data)
}

// Save implements the [Store] interface.
func (m *MemoryStore) Save(ctx context.Context, s Settings) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = data
	m.Saves++
	return nil
}

// FileStore keeps the settings in a JSON file.
type FileStore struct {
	Path string
}

// Load implements the [Store] interface.
func (f *FileStore) Load(ctx context.Context) (*Settings, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	s, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Path, err)
	}
	return s, nil
}

// Save implements the [Store] interface.
// The file is replaced atomically.
func (f *FileStore) Save(ctx context.Context, s Settings) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.Path), ".settings-*")
	if err != nil {
		return err
	}
	_, err = tmp.Write(append(data, '\n'))
	if err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	err = tmp.Close()
	if err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), f.Path)
}

var (
	boltBucket = []byte("svgicons")
	boltKey    = []byte("settings")
)

// BoltStore keeps the settings in a bbolt database.  This allows a host to
// share one database file between several plugins.
type BoltStore struct {
	db *bbolt.DB
}

// OpenBolt opens (or creates) the database file at path.
func OpenBolt(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0644, &bbolt.Options{
		Timeout:      time.Second,
		FreelistType: bbolt.FreelistMapType,
	})
	if err != nil {
		return nil, fmt.Errorf("open settings database: %w", err)
	}
	return &BoltStore{db: db}, nil
}

// Close closes the database.
func (b *BoltStore) Close() error {
	return b.db.Close()
}

// Load implements the [Store] interface.
func (b *BoltStore) Load(ctx context.Context) (*Settings, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var data []byte
	err := b.db.View(func(tx *bbolt.Tx) error {
		bk := tx.Bucket(boltBucket)
		if bk == nil {
			return nil
		}
		if v := bk.Get(boltKey); v != nil {
			// v is only valid during the transaction
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil || data == nil {
		return nil, err
	}
	return decode(data)
}

// Save implements the [Store] interface.
func (b *BoltStore) Save(ctx context.Context, s Settings) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return b.db.Update(func(tx *bbolt.Tx) error {
		bk, err := tx.CreateBucketIfNotExists(boltBucket)
		if err != nil {
			return err
		}
		return bk.Put(boltKey, data)
	})
}

func decode(data []byte) (*Settings, error) {
	s := &Settings{}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("malformed settings: %w", err)
	}
	return s, nil
}
