// Package secrets provides a file-backed store of CHAP peer credentials,
// in the spirit of pppd's chap-secrets file but as YAML.
package secrets

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/vitalvas/gochap/pkg/digest"
	"github.com/vitalvas/gochap/pkg/log"
)

var (
	// ErrEmptyPeerName indicates a peer entry without a name.
	ErrEmptyPeerName = errors.New("secrets: peer name must not be empty")
	// ErrEmptyPeerSecret indicates a peer entry without a secret.
	ErrEmptyPeerSecret = errors.New("secrets: peer secret must not be empty")
	// ErrDuplicatePeer indicates two entries sharing a name.
	ErrDuplicatePeer = errors.New("secrets: duplicate peer")
)

// Peer holds the CHAP credentials for one peer.
type Peer struct {
	// Name identifies the peer (the CHAP Name field of its responses).
	Name string `yaml:"name"`
	// Secret is the shared secret.
	Secret string `yaml:"secret"`
	// Digest optionally names the digest algorithm for this peer,
	// overriding the authenticator default. Must be a registered
	// algorithm name when set.
	Digest string `yaml:"digest,omitempty"`
}

type secretsFile struct {
	Peers []Peer `yaml:"peers"`
}

// Store is a set of peer credentials, safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	peers map[string]Peer
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		peers: make(map[string]Peer),
	}
}

// Load reads and parses a YAML secrets file.
func Load(path string, logger log.Logger) (*Store, error) {
	if logger == nil {
		logger = log.NewNopLogger()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("secrets: failed to read %s: %w", path, err)
	}

	store, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("secrets: %s: %w", path, err)
	}

	logger.Infof("secrets: loaded %d peers from %s", store.Len(), path)
	return store, nil
}

// Parse builds a store from YAML of the form:
//
//	peers:
//	  - name: client.example
//	    secret: s3cret
//	    digest: md5
func Parse(data []byte) (*Store, error) {
	var file secretsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("secrets: failed to parse: %w", err)
	}

	store := NewStore()
	for _, peer := range file.Peers {
		if err := store.Add(peer); err != nil {
			return nil, err
		}
	}

	return store, nil
}

// Add validates peer and inserts it into the store.
func (s *Store) Add(peer Peer) error {
	if err := validatePeer(peer); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.peers[peer.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicatePeer, peer.Name)
	}

	s.peers[peer.Name] = peer
	return nil
}

// Lookup returns the stored credentials for name.
func (s *Store) Lookup(name string) (Peer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	peer, ok := s.peers[name]
	return peer, ok
}

// Len returns the number of stored peers.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.peers)
}

func validatePeer(peer Peer) error {
	if peer.Name == "" {
		return ErrEmptyPeerName
	}

	if peer.Secret == "" {
		return fmt.Errorf("%w: peer %s", ErrEmptyPeerSecret, peer.Name)
	}

	if peer.Digest != "" {
		if _, err := digest.Lookup(peer.Digest); err != nil {
			return fmt.Errorf("secrets: peer %s: %w", peer.Name, err)
		}
	}

	return nil
}
