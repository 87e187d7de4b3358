package resale

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// LoadBook loads the shipment book from a file. A missing or unreadable or
// corrupt file is not fatal: the tracker starts over with an empty book and
// a warning, keeping the session usable.
func LoadBook(path string) *Book {
	f, err := os.Open(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("warning: could not open book file %q: %v, starting with an empty book", path, err)
		}
		return NewBook()
	}
	defer f.Close()

	book, err := DecodeBook(f)
	if err != nil {
		log.Printf("warning: could not decode book file %q: %v, starting with an empty book", path, err)
		return NewBook()
	}
	return book
}

// SaveBook writes the whole book to its file in canonical JSONL form. It is
// called after every mutating operation; there is no partial or incremental
// persistence.
func SaveBook(path string, b *Book) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create directory for book file %q: %w", path, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening book file %q for writing: %w", path, err)
	}
	defer f.Close()

	return EncodeBook(f, b)
}
