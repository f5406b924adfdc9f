package catalog

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"freshvegies/internal/model"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Document is the on-disk catalogue format.
type Document struct {
	Shops []model.Shop `yaml:"shops"`
}

// Decode reads a YAML catalogue document from r.
func Decode(r io.Reader) ([]model.Shop, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return []model.Shop{}, nil
		}
		return nil, fmt.Errorf("failed to decode catalogue: %w", err)
	}
	return doc.Shops, nil
}

// Encode writes shops as a YAML catalogue document to w.
func Encode(w io.Writer, shops []model.Shop) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Document{Shops: shops}); err != nil {
		return fmt.Errorf("failed to encode catalogue: %w", err)
	}
	return enc.Close()
}

// WriteFile writes shops to path as a catalogue document, gzipped when the
// name ends in .gz.
func WriteFile(path string, shops []model.Shop) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create catalogue file %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("failed to close catalogue file %s: %w", path, closeErr)
		}
	}()

	if !strings.HasSuffix(path, ".gz") {
		return Encode(f, shops)
	}

	gzipWriter := gzip.NewWriter(f)
	if err := Encode(gzipWriter, shops); err != nil {
		gzipWriter.Close()
		return err
	}
	return gzipWriter.Close()
}

// decodeMaybeGzip decodes a catalogue, gunzipping first when name ends in .gz.
func decodeMaybeGzip(r io.Reader, name string) ([]model.Shop, error) {
	if !strings.HasSuffix(name, ".gz") {
		return Decode(r)
	}

	gzipReader, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader for %s: %w", name, err)
	}
	defer gzipReader.Close()

	return Decode(gzipReader)
}

// FileSource loads the catalogue from a YAML file on the local file system.
type FileSource struct {
	path   string
	logger zerolog.Logger
}

// NewFileSource creates a file-based catalogue source. Paths ending in .gz are
// read as gzipped YAML.
func NewFileSource(path string, logger zerolog.Logger) *FileSource {
	return &FileSource{
		path:   path,
		logger: logger.With().Str("component", "catalog-file-source").Logger(),
	}
}

// Load reads and decodes the catalogue file.
func (s *FileSource) Load(ctx context.Context) ([]model.Shop, error) {
	s.logger.Info().Str("file", s.path).Msg("loading catalogue file")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(s.path)
	if err != nil {
		s.logger.Error().Err(err).Str("file", s.path).Msg("failed to open catalogue file")
		return nil, fmt.Errorf("failed to open catalogue file %s: %w", s.path, err)
	}
	defer file.Close()

	shops, err := decodeMaybeGzip(file, s.path)
	if err != nil {
		s.logger.Error().Err(err).Str("file", s.path).Msg("failed to read catalogue file")
		return nil, err
	}

	s.logger.Info().
		Str("file", s.path).
		Int("shops_loaded", len(shops)).
		Msg("catalogue file loaded successfully")

	return shops, nil
}
