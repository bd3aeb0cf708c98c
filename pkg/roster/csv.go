package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// Required CSV headers (matched case-insensitively, any column order).
const (
	headerEmail = "email"
	headerName  = "name"
)

type csvConfig struct {
	charset string
}

// Option configures CSV import and export.
type Option func(*csvConfig)

// WithCharset sets the file charset by IANA/WHATWG label (e.g. "gbk",
// "windows-1252"). Default is UTF-8; a UTF-8 BOM is tolerated either way.
func WithCharset(label string) Option {
	return func(c *csvConfig) {
		c.charset = label
	}
}

// ImportCSV reads a roster from CSV. The header row must contain email and
// name columns; every other column becomes a custom value keyed by its
// lowercased, trimmed header. Cells are whitespace-trimmed, fully empty
// rows are skipped, and a row with an empty email fails the import with
// its row number.
func ImportCSV(r io.Reader, opts ...Option) (*Roster, error) {
	cfg := &csvConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.charset != "" {
		enc, err := lookupCharset(cfg.charset)
		if err != nil {
			return nil, err
		}
		r = transform.NewReader(r, enc.NewDecoder())
	}

	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty file", ErrImportFailed)
		}
		return nil, errors.Join(ErrImportFailed, err)
	}

	emailIdx, nameIdx := -1, -1
	customIdx := make(map[int]string) // column index -> custom identifier
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff") // spreadsheet UTF-8 BOM
		}
		h = strings.ToLower(strings.TrimSpace(h))
		switch h {
		case headerEmail:
			emailIdx = i
		case headerName:
			nameIdx = i
		case "":
			// Unnamed columns are ignored.
		default:
			customIdx[i] = h
		}
	}
	if emailIdx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingHeader, headerEmail)
	}
	if nameIdx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingHeader, headerName)
	}

	roster := New()
	row := 1 // header was row 1
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Join(ErrImportFailed, err)
		}
		row++

		for i, cell := range record {
			record[i] = strings.TrimSpace(cell)
		}
		if blankRecord(record) {
			continue
		}

		var custom map[string]string
		if len(customIdx) > 0 {
			custom = make(map[string]string, len(customIdx))
			for i, ident := range customIdx {
				custom[ident] = record[i]
			}
		}

		if err := roster.Add(record[emailIdx], record[nameIdx], custom); err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
	}

	return roster, nil
}

// ExportCSV writes the roster as CSV: email, name, then the given custom
// columns in order. Delivery status is never exported.
func (r *Roster) ExportCSV(w io.Writer, customs []string, opts ...Option) error {
	cfg := &csvConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.charset != "" {
		enc, err := lookupCharset(cfg.charset)
		if err != nil {
			return err
		}
		w = transform.NewWriter(w, enc.NewEncoder())
	}

	cw := csv.NewWriter(w)

	header := append([]string{headerEmail, headerName}, customs...)
	if err := cw.Write(header); err != nil {
		return errors.Join(ErrExportFailed, err)
	}

	record := make([]string, len(header))
	for _, rec := range r.recipients {
		record[0] = rec.Email
		record[1] = rec.Name
		for i, ident := range customs {
			record[2+i] = rec.Custom[ident]
		}
		if err := cw.Write(record); err != nil {
			return errors.Join(ErrExportFailed, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Join(ErrExportFailed, err)
	}
	return nil
}

func lookupCharset(label string) (encoding.Encoding, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCharset, label)
	}
	return enc, nil
}

func blankRecord(record []string) bool {
	for _, cell := range record {
		if cell != "" {
			return false
		}
	}
	return true
}
