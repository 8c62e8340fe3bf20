package merger

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Ingest reads a single source into a new column.
// The first line is a '<token> <name>' header, each following non blank line an '<identifier> <tag>' pair.
// Lines end at '\n', '\r\n' or a lone '\r'.
func Ingest(r io.Reader, source string) (*Column, error) {
	lines := newLineReader(r)

	header, ok, err := lines.next()
	if err != nil {
		return nil, fmt.Errorf("failed to read %v: %w", source, err)
	}
	if !ok {
		return nil, &FormatError{Source: source}
	}
	header = trimLine(header)
	fields := strings.Fields(header)
	if len(fields) < 2 {
		return nil, &FormatError{Source: source, Line: header}
	}
	column := NewColumn(fields[1], source)

	lineNumber := 1
	for {
		text, ok, err := lines.next()
		if err != nil {
			return nil, fmt.Errorf("failed to read %v: %w", source, err)
		}
		if !ok {
			break
		}
		lineNumber++
		raw := trimLine(text)
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		id, tag, parseErr := parseRecord(line)
		if parseErr != nil {
			parseErr.Source = source
			parseErr.LineNumber = lineNumber
			parseErr.Line = raw
			return nil, parseErr
		}
		column.Set(id, tag)
	}
	return column, nil
}

type lineReader struct {
	reader  *bufio.Reader
	builder strings.Builder
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{reader: bufio.NewReader(r)}
}

// next returns the following line without its terminator, ok is false once input is exhausted
func (l *lineReader) next() (string, bool, error) {
	l.builder.Reset()
	for {
		b, err := l.reader.ReadByte()
		if err == io.EOF {
			if l.builder.Len() > 0 {
				return l.builder.String(), true, nil
			}
			return "", false, nil
		}
		if err != nil {
			return "", false, err
		}
		switch b {
		case '\n':
			return l.builder.String(), true, nil
		case '\r':
			if peek, err := l.reader.Peek(1); err == nil && peek[0] == '\n' {
				_, _ = l.reader.ReadByte()
			}
			return l.builder.String(), true, nil
		}
		l.builder.WriteByte(b)
	}
}

func parseRecord(line string) (int64, string, *ParseError) {
	fields := strings.Fields(line)
	var idToken, tag string
	if len(fields) > 0 {
		idToken = fields[0]
	}
	if len(fields) > 1 {
		tag = fields[1]
	}
	if len(fields) != 2 {
		return 0, "", &ParseError{IDToken: idToken, Tag: tag}
	}
	id, err := strconv.ParseInt(idToken, 10, 64)
	if err != nil {
		return 0, "", &ParseError{IDToken: idToken, Tag: tag, Err: err}
	}
	return id, tag, nil
}

func trimLine(line string) string {
	return strings.TrimRightFunc(line, unicode.IsSpace)
}
