package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store файловое key/value хранилище клиентского состояния.
// Аналог browser local storage: хранит пару строк (токен и флаг роли).
// Запись атомарная - через временный файл с последующим rename.
type Store struct {
	mu   sync.Mutex
	path string
}

// New создает хранилище по указанному пути.
// Файл создается лениво при первой записи.
func New(path string) *Store {
	return &Store{path: path}
}

// Get возвращает значение по ключу.
// Если файла нет или ключ отсутствует, возвращает ErrKeyNotFound.
func (s *Store) Get(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return "", err
	}

	value, ok := data[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

// Set записывает значение по ключу
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return err
	}

	data[key] = value
	return s.write(data)
}

// Delete удаляет ключ. Отсутствие ключа не является ошибкой (идемпотентно).
func (s *Store) Delete(keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return err
	}

	for _, key := range keys {
		delete(data, key)
	}
	return s.write(data)
}

func (s *Store) read() (map[string]string, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("%w: read %s: %v", ErrInternal, s.path, err)
	}

	data := map[string]string{}
	if len(raw) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrInternal, s.path, err)
	}
	return data, nil
}

func (s *Store) write(data map[string]string) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("%w: marshal: %v", ErrInternal, err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: create dir %s: %v", ErrInternal, dir, err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrInternal, tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("%w: rename %s: %v", ErrInternal, tmp, err)
	}
	return nil
}
