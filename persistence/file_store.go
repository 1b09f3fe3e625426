package persistence

import (
	"io/ioutil"
	"math"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// FileStore keeps its values in a single YAML document.
//
// The document is read once when the store is opened. `Commit` writes
// a temporary file next to the target and renames it into place, so a
// crash mid-write leaves the previous document intact.
type FileStore struct {
	mu        sync.Mutex
	path      string
	values    map[string]interface{}
	pending   map[string]interface{}
	logFields log.Fields
}

// OpenFileStore loads the document at path. A missing file is an empty
// store. An unreadable or malformed file is also treated as empty and
// logged, since the next commit replaces it anyway.
func OpenFileStore(path string) *FileStore {
	s := &FileStore{
		path:      path,
		values:    map[string]interface{}{},
		pending:   map[string]interface{}{},
		logFields: log.Fields{"module": "file_store", "path": path},
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.WithFields(s.logFields).WithError(err).Warn("state file unreadable, starting empty")
		}
		return s
	}

	var doc map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		log.WithFields(s.logFields).WithError(err).Warn("state file is not valid yaml, starting empty")
		return s
	}
	for k, v := range doc {
		s.values[k] = v
	}
	return s
}

func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) GetBool(key string, def bool) bool {
	if v, ok := s.get(key).(bool); ok {
		return v
	}
	return def
}

// GetLong accepts every integer shape the YAML decoder may produce.
func (s *FileStore) GetLong(key string, def int64) int64 {
	switch v := s.get(key).(type) {
	case int:
		return int64(v)
	case int64:
		return v
	case uint64:
		if v <= math.MaxInt64 {
			return int64(v)
		}
	case float64:
		if v == math.Trunc(v) && v >= math.MinInt64 && v < math.MaxInt64 {
			return int64(v)
		}
	}
	return def
}

func (s *FileStore) GetString(key string, def string) string {
	if v, ok := s.get(key).(string); ok {
		return v
	}
	return def
}

func (s *FileStore) PutBool(key string, value bool)     { s.put(key, value) }
func (s *FileStore) PutLong(key string, value int64)    { s.put(key, value) }
func (s *FileStore) PutString(key string, value string) { s.put(key, value) }

// Commit writes the staged values to disk. On failure the staged values
// are kept so the commit can be retried.
func (s *FileStore) Commit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	merged := make(map[string]interface{}, len(s.values)+len(s.pending))
	for k, v := range s.values {
		merged[k] = v
	}
	for k, v := range s.pending {
		merged[k] = v
	}

	data, err := yaml.Marshal(merged)
	if err != nil {
		return errors.Wrap(err, "marshal state document")
	}
	if err := writeFileAtomic(s.path, data); err != nil {
		return err
	}

	s.values = merged
	s.pending = map[string]interface{}{}
	log.WithFields(s.logFields).WithField("keys", len(merged)).Debug("state committed")
	return nil
}

func (s *FileStore) get(key string) interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[key]
}

func (s *FileStore) put(key string, value interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[key] = value
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "create state directory")
	}

	tmp, err := ioutil.TempFile(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.Wrap(err, "create temporary state file")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrap(err, "write temporary state file")
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrap(err, "sync temporary state file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, "close temporary state file")
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, "replace state file")
	}
	return nil
}
