// Package corpus parses reference syllable corpora: tab-separated files of
// TUPA spellings and the position descriptions they decode to.
// Pure function: reader in, domain structs out. No database dependencies.
package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/tupa/internal/domain"
)

// errSkipLine signals that a line should be skipped (comment, empty).
var errSkipLine = errors.New("skip line")

// LineError describes a line that could not be turned into a RefSyllable.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// ParseResult holds the parsed corpus.
type ParseResult struct {
	Syllables []domain.RefSyllable
	Invalid   []LineError
	Stats     Stats
}

// Stats holds parser statistics for logging.
type Stats struct {
	TotalLines   int
	CommentLines int
	ParsedLines  int
	InvalidLines int
	Duplicates   int
}

// Parse reads a corpus file. Every syllable is tagged with sourceSlug.
func Parse(filePath, sourceSlug string) (ParseResult, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return ParseResult{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return ParseReader(f, sourceSlug)
}

// ParseReader parses corpus lines from r. Malformed lines are collected in
// Invalid and do not abort parsing; only read errors are returned.
func ParseReader(r io.Reader, sourceSlug string) (ParseResult, error) {
	if strings.TrimSpace(sourceSlug) == "" {
		return ParseResult{}, domain.NewValidationError("source_slug", "required")
	}

	var result ParseResult
	seen := make(map[[2]string]struct{})

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		result.Stats.TotalLines++
		line := scanner.Text()

		spelling, description, err := parseLine(line)
		if err == errSkipLine {
			if strings.HasPrefix(strings.TrimSpace(line), "#") {
				result.Stats.CommentLines++
			}
			continue
		}
		if err != nil {
			result.Stats.InvalidLines++
			result.Invalid = append(result.Invalid, LineError{Line: lineNo, Text: line, Err: err})
			continue
		}

		key := [2]string{spelling, description}
		if _, dup := seen[key]; dup {
			result.Stats.Duplicates++
			continue
		}
		seen[key] = struct{}{}

		result.Stats.ParsedLines++
		result.Syllables = append(result.Syllables, domain.RefSyllable{
			ID:          uuid.New(),
			Spelling:    spelling,
			Description: description,
			SourceSlug:  sourceSlug,
		})
	}

	if err := scanner.Err(); err != nil {
		return ParseResult{}, fmt.Errorf("scanner error: %w", err)
	}

	return result, nil
}

// parseLine parses "spelling<TAB>description". The description is
// validated against the position model and returned in canonical form.
func parseLine(line string) (string, string, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", errSkipLine
	}

	fields := strings.Split(trimmed, "\t")
	if len(fields) != 2 {
		return "", "", fmt.Errorf("expected 2 tab-separated fields, got %d", len(fields))
	}

	spelling := domain.NormalizeSyllable(fields[0])
	if spelling == "" {
		return "", "", errors.New("empty spelling")
	}

	pos, err := domain.ParseDescription(fields[1], domain.AllMarginalKinds)
	if err != nil {
		return "", "", err
	}

	return spelling, pos.Description(), nil
}
