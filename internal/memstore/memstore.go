// Package memstore provides an in-memory types.Store used by tests in place
// of the SQLite substrate.
package memstore

// Store is an in-memory key-value store. The zero value is not usable; call
// New. LoadErr and SaveErr, when set, are returned by every subsequent Load
// and Save, so tests can exercise substrate-failure paths.
type Store struct {
	values map[string][]byte

	LoadErr error
	SaveErr error
}

// New returns an empty in-memory store.
func New() *Store {
	return &Store{values: make(map[string][]byte)}
}

// Load returns the value stored under key.
func (s *Store) Load(key string) ([]byte, bool, error) {
	if s.LoadErr != nil {
		return nil, false, s.LoadErr
	}
	value, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}
	return value, true, nil
}

// Save stores value under key.
func (s *Store) Save(key string, value []byte) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.values[key] = append([]byte(nil), value...)
	return nil
}

// Close is a no-op.
func (s *Store) Close() error { return nil }

// Set writes a raw value directly, bypassing error injection. Test setup
// helper.
func (s *Store) Set(key, value string) {
	s.values[key] = []byte(value)
}

// Raw returns the stored bytes for key, for assertions on the persisted form.
func (s *Store) Raw(key string) (string, bool) {
	value, ok := s.values[key]
	return string(value), ok
}
