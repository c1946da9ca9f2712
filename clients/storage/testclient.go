package storage

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/techdigest/api/errors"
)

// TestClient is an in-memory Client for tests. It records every GetObject
// call so fallback behavior can be asserted without a network dependency.
type TestClient struct {
	mu      sync.Mutex
	objects map[string][]byte
	getErr  error
	gets    []string
}

var _ Client = (*TestClient)(nil)

func NewTestClient() *TestClient {
	return &TestClient{objects: map[string][]byte{}}
}

// Put seeds an object. Not part of the Client interface; the real bucket is
// written by the out-of-band ingestion job.
func (c *TestClient) Put(key string, payload []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.objects[key] = payload
}

// Delete removes a seeded object.
func (c *TestClient) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.objects, key)
}

// FailGetsWith makes every subsequent GetObject return err. Pass nil to
// restore normal behavior.
func (c *TestClient) FailGetsWith(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.getErr = err
}

// Gets returns the keys requested so far, in order.
func (c *TestClient) Gets() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]string, len(c.gets))
	copy(out, c.gets)

	return out
}

// Reset clears recorded calls, seeded objects, and any forced error.
func (c *TestClient) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.objects = map[string][]byte{}
	c.gets = nil
	c.getErr = nil
}

func (c *TestClient) GetObject(ctx context.Context, key string) ([]byte, error) {
	op := errors.Opf("storage.TestClient.GetObject(%q)", key)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.gets = append(c.gets, key)

	if c.getErr != nil {
		return nil, errors.E(op, errors.StoreUnavailable, c.getErr)
	}

	payload, ok := c.objects[key]
	if !ok {
		return nil, errors.E(op, errors.NotFound, errors.Str("no such key"))
	}

	out := make([]byte, len(payload))
	copy(out, payload)

	return out, nil
}

func (c *TestClient) ListPrefixes(ctx context.Context) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	seen := map[string]bool{}

	var prefixes []string

	for key := range c.objects {
		i := strings.Index(key, "/")
		if i < 0 {
			continue
		}

		if p := key[:i]; !seen[p] {
			seen[p] = true

			prefixes = append(prefixes, p)
		}
	}

	sort.Strings(prefixes)

	return prefixes, nil
}
