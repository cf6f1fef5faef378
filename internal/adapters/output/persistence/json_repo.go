package persistence

import (
	"context"
	"encoding/json"
	"hue-controller/internal/domain/model"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

type JSONCredentialRepository struct {
	filepath string
	mu       sync.RWMutex
}

// Legacy layout written by the python hue client: one object per bridge host.
type legacyCredentials map[string]*legacyBridgeEntry

type legacyBridgeEntry struct {
	Username string `json:"username"`
}

func NewJSONCredentialRepository(filepath string) *JSONCredentialRepository {
	return &JSONCredentialRepository{filepath: filepath}
}

func (r *JSONCredentialRepository) Get(ctx context.Context) (*model.Credentials, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, err := os.ReadFile(r.filepath)
	if err != nil {
		if os.IsNotExist(err) {
			return &model.Credentials{Bridges: []*model.BridgeCredential{}}, nil
		}
		return nil, err
	}

	// Try to decode into new structure
	var creds model.Credentials
	if err := json.Unmarshal(data, &creds); err == nil && len(creds.Bridges) > 0 {
		return &creds, nil
	}

	return r.migrate(data)
}

func (r *JSONCredentialRepository) migrate(data []byte) (*model.Credentials, error) {
	var legacy legacyCredentials
	if err := json.Unmarshal(data, &legacy); err != nil {
		return &model.Credentials{Bridges: []*model.BridgeCredential{}}, nil
	}

	hosts := make([]string, 0, len(legacy))
	for host, entry := range legacy {
		if entry == nil || entry.Username == "" {
			continue
		}
		hosts = append(hosts, host)
	}
	sort.Strings(hosts)

	creds := &model.Credentials{Bridges: make([]*model.BridgeCredential, 0, len(hosts))}
	for _, host := range hosts {
		creds.Bridges = append(creds.Bridges, &model.BridgeCredential{
			Host:     host,
			Username: legacy[host].Username,
		})
	}
	return creds, nil
}

func (r *JSONCredentialRepository) Save(ctx context.Context, credentials *model.Credentials) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.MarshalIndent(credentials, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(r.filepath), 0700); err != nil {
		return err
	}
	return os.WriteFile(r.filepath, data, 0600)
}
