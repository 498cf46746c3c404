package store

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/RedisLabsModules/RedisDoc/codec"
	"github.com/RedisLabsModules/RedisDoc/doc"
)

// Snapshot writes every key and its persisted document to w.
func (s *Store) Snapshot(w io.Writer, port codec.Port) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bw := bufio.NewWriter(w)
	var lenBuf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(lenBuf[:], uint64(len(s.keys)))
	if _, err := bw.Write(lenBuf[:n]); err != nil {
		return fmt.Errorf("%w: %v", ErrSnapshot, err)
	}
	for key, d := range s.keys {
		if err := writeKey(bw, key); err != nil {
			return fmt.Errorf("%w: %v", ErrSnapshot, err)
		}
		if err := port.Write(bw, d); err != nil {
			return fmt.Errorf("%w: key %q: %v", ErrSnapshot, key, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrSnapshot, err)
	}
	return nil
}

// Restore replaces the keyspace with the snapshot read from r. The store
// is left untouched when the snapshot cannot be fully decoded.
func (s *Store) Restore(r io.Reader, port codec.Port) error {
	br := bufio.NewReader(r)
	count, err := binary.ReadUvarint(br)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSnapshot, err)
	}
	keys := make(map[string]*doc.Document, count)
	for range count {
		key, err := readKey(br)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrSnapshot, err)
		}
		d, err := port.Read(br)
		if err != nil {
			return fmt.Errorf("%w: key %q: %v", ErrSnapshot, key, err)
		}
		keys[key] = d
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys = keys
	return nil
}

func writeKey(w *bufio.Writer, key string) error {
	var lenBuf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(lenBuf[:], uint64(len(key)))
	if _, err := w.Write(lenBuf[:n]); err != nil {
		return err
	}
	_, err := w.WriteString(key)
	return err
}

func readKey(r *bufio.Reader) (string, error) {
	n, err := binary.ReadUvarint(r)
	if err != nil {
		return "", err
	}
	data := make([]byte, n)
	if _, err := io.ReadFull(r, data); err != nil {
		return "", err
	}
	return string(data), nil
}

// SaveFile snapshots the keyspace to path, writing through a temp file so
// a crash never leaves a half-written snapshot behind.
func (s *Store) SaveFile(path string, port codec.Port) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSnapshot, err)
	}
	if err := s.Snapshot(f, port); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: %v", ErrSnapshot, err)
	}
	return os.Rename(tmp, path)
}

// LoadFile restores the keyspace from a snapshot file. A missing file
// leaves the store empty.
func (s *Store) LoadFile(path string, port codec.Port) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrSnapshot, err)
	}
	defer f.Close()
	return s.Restore(f, port)
}
