// Package storage resolves scheme://target URIs to configured backends.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/gabriel-vasile/mimetype"

	"github.com/joshuarp/image-derivative-api/internal/domain"
)

var (
	ErrNotFound      = errors.New("storage: not found")
	ErrInvalidTarget = errors.New("storage: invalid target")
	ErrUnknownScheme = errors.New("storage: unknown scheme")
)

const sniffLen = 3072

// Backend stores objects addressed by slash-separated target paths.
// Write must be atomic: readers see the old object or the new one, never a prefix.
type Backend interface {
	Exists(ctx context.Context, target string) (bool, error)
	Open(ctx context.Context, target string) (io.ReadCloser, int64, error)
	Write(ctx context.Context, target string, data []byte) error
	Delete(ctx context.Context, target string) error
	DeletePrefix(ctx context.Context, prefix string) (int, error)
}

// Object is an opened file. The caller closes Body.
type Object struct {
	Body        io.ReadCloser
	Size        int64
	ContentType string
}

type scheme struct {
	backend Backend
	public  bool
}

// Manager maps scheme names (public, private, s3, ...) to backends.
type Manager struct {
	mu      sync.RWMutex
	schemes map[string]scheme
}

func NewManager() *Manager {
	return &Manager{schemes: make(map[string]scheme)}
}

// Register binds name to backend. The private scheme is never public.
func (m *Manager) Register(name string, backend Backend, public bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.schemes[name] = scheme{backend: backend, public: public && name != "private"}
}

func (m *Manager) ValidScheme(name string) bool {
	_, ok := m.lookup(name)
	return ok
}

func (m *Manager) IsPublic(name string) bool {
	s, ok := m.lookup(name)
	return ok && s.public
}

func (m *Manager) Schemes() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.schemes))
	for name := range m.schemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (m *Manager) Exists(ctx context.Context, uri string) (bool, error) {
	b, target, err := m.resolve(uri)
	if err != nil {
		return false, err
	}
	return b.Exists(ctx, target)
}

func (m *Manager) Read(ctx context.Context, uri string) ([]byte, error) {
	b, target, err := m.resolve(uri)
	if err != nil {
		return nil, err
	}
	body, _, err := b.Open(ctx, target)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", uri, err)
	}
	return data, nil
}

// Open returns the object with its MIME type sniffed from the leading bytes.
func (m *Manager) Open(ctx context.Context, uri string) (Object, error) {
	b, target, err := m.resolve(uri)
	if err != nil {
		return Object{}, err
	}
	body, size, err := b.Open(ctx, target)
	if err != nil {
		return Object{}, err
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(body, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		_ = body.Close()
		return Object{}, fmt.Errorf("storage: sniff %s: %w", uri, err)
	}
	head = head[:n]

	return Object{
		Body:        readCloser{Reader: io.MultiReader(bytes.NewReader(head), body), Closer: body},
		Size:        size,
		ContentType: mimetype.Detect(head).String(),
	}, nil
}

func (m *Manager) Write(ctx context.Context, uri string, data []byte) error {
	b, target, err := m.resolve(uri)
	if err != nil {
		return err
	}
	return b.Write(ctx, target, data)
}

func (m *Manager) Delete(ctx context.Context, uri string) error {
	b, target, err := m.resolve(uri)
	if err != nil {
		return err
	}
	return b.Delete(ctx, target)
}

// DeletePrefix removes every object below uri and returns how many went away.
func (m *Manager) DeletePrefix(ctx context.Context, uri string) (int, error) {
	b, target, err := m.resolve(uri)
	if err != nil {
		return 0, err
	}
	return b.DeletePrefix(ctx, target)
}

func (m *Manager) lookup(name string) (scheme, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.schemes[name]
	return s, ok
}

func (m *Manager) resolve(uri string) (Backend, string, error) {
	name, target, ok := domain.SplitURI(uri)
	if !ok {
		return nil, "", fmt.Errorf("%w: %q", ErrInvalidTarget, uri)
	}
	s, ok := m.lookup(name)
	if !ok {
		return nil, "", fmt.Errorf("%w: %q", ErrUnknownScheme, name)
	}
	return s.backend, target, nil
}

type readCloser struct {
	io.Reader
	io.Closer
}
