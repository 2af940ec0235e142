/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package store persists named configuration records to a single flat JSON
// document, keyed by display name, so a CLI or TUI can recall a benchmark
// setup by name instead of re-typing its flags.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/sabouaram/loadprobe/config"
	liberr "github.com/sabouaram/loadprobe/errors"
)

// Store is a handle on one configs.json document on disk.
type Store struct {
	path string
}

// DefaultPath returns os.UserConfigDir()/loadprobe/configs.json.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "loadprobe", "configs.json"), nil
}

// Open returns a Store bound to path. An empty path resolves to
// DefaultPath(). The backing file need not exist yet — it is created by
// the first Put or Delete.
func Open(path string) (*Store, liberr.Error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, ErrorIO.Error(err)
		}
		path = p
	}
	return &Store{path: path}, nil
}

// Load reads every saved configuration. A missing file is not an error —
// it behaves like an empty store.
func (s *Store) Load() (map[string]config.Config, liberr.Error) {
	doc, e := s.readDocument()
	if e != nil {
		return nil, e
	}

	out := make(map[string]config.Config, len(doc.Configs))
	for name, ent := range doc.Configs {
		cfg, e := toConfig(ent)
		if e != nil {
			return nil, e
		}
		out[name] = cfg
	}
	return out, nil
}

// Get loads the single named configuration.
func (s *Store) Get(name string) (config.Config, liberr.Error) {
	doc, e := s.readDocument()
	if e != nil {
		return nil, e
	}

	ent, ok := doc.Configs[name]
	if !ok {
		return nil, ErrorUnknownName.Error(nil)
	}
	return toConfig(ent)
}

// Put saves cfg under name, overwriting any prior entry of that name.
func (s *Store) Put(name string, cfg config.Config) liberr.Error {
	doc, e := s.readDocument()
	if e != nil {
		return e
	}

	if doc.Configs == nil {
		doc.Configs = make(map[string]entry)
	}
	doc.Configs[name] = toEntry(cfg)

	return s.writeDocument(doc)
}

// Delete removes a named configuration. Deleting an unknown name is a
// no-op, matching the idempotence expected of a config-management surface.
func (s *Store) Delete(name string) liberr.Error {
	doc, e := s.readDocument()
	if e != nil {
		return e
	}

	delete(doc.Configs, name)
	return s.writeDocument(doc)
}

func (s *Store) readDocument() (document, liberr.Error) {
	b, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return document{Configs: make(map[string]entry)}, nil
	}
	if err != nil {
		return document{}, ErrorIO.Error(err)
	}

	var doc document
	if err := json.Unmarshal(b, &doc); err != nil {
		return document{}, ErrorDecode.Error(err)
	}
	if doc.Configs == nil {
		doc.Configs = make(map[string]entry)
	}
	return doc, nil
}

func (s *Store) writeDocument(doc document) liberr.Error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return ErrorIO.Error(err)
	}

	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return ErrorIO.Error(err)
	}

	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return ErrorIO.Error(err)
	}
	return nil
}
