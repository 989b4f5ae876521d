package importer

import (
	"bufio"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Source reads a dining export into memory. The pipeline is a whole-file
// batch parse, so sources return all lines at once.
type Source interface {
	// Lines reads the export at the given path or key.
	Lines(ctx context.Context, path string) ([]string, error)
}

// fileSource implements Source for local export files.
type fileSource struct {
	logger zerolog.Logger
}

// NewFileSource creates a file-based export source.
func NewFileSource(logger zerolog.Logger) Source {
	return &fileSource{
		logger: logger.With().Str("component", "file-source").Logger(),
	}
}

// Lines reads a local export file. Files with a .gz extension are
// decompressed transparently.
func (s *fileSource) Lines(ctx context.Context, path string) ([]string, error) {
	s.logger.Info().Str("file", path).Msg("reading export file")

	file, err := os.Open(path)
	if err != nil {
		s.logger.Error().Err(err).Str("file", path).Msg("failed to open export file")
		return nil, fmt.Errorf("failed to open export file %s: %w", path, err)
	}
	defer file.Close()

	lines, err := readLines(ctx, file, path)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("file", path).
		Int("lines_read", len(lines)).
		Msg("export file read successfully")

	return lines, nil
}

// readLines scans a reader into lines, decompressing when the path carries a
// .gz extension.
func readLines(ctx context.Context, r io.Reader, path string) ([]string, error) {
	if strings.HasSuffix(path, ".gz") {
		gzipReader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader for %s: %w", path, err)
		}
		defer gzipReader.Close()
		r = gzipReader
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading export %s: %w", path, err)
	}

	return lines, nil
}
