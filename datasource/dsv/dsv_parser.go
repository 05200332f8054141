package dsv

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pierrec/lz4"

	"github.com/go-slate/slate"
	"github.com/go-slate/slate/errors"
	"github.com/go-slate/slate/logging"
)

// ParserConf configures a DSV Parser
type ParserConf struct {
	Delimiter  rune   // The delimiter separating columns in the input. Defaults to ,
	Comment    rune   // Lines beginning with the comment character are ignored. Cannot be equal to the Delimiter. Defaults to no comment character.
	NilValue   string // A special string which represents missing values in the input. Defaults to "" (the empty string).
	Compressed bool   // Whether the input is lz4-compressed. Defaults to false.
}

// Parser produces Tables from DSV data
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new DSV Parser
func CreateParser(conf *ParserConf) *Parser {
	if conf.Delimiter == 0 {
		conf.Delimiter = ','
	}
	return &Parser{conf: conf}
}

// Parse parses DSV data into a fresh Table. The first line defines the
// column names, in order; duplicate names are rejected. A data row short by
// exactly one trailing field is repaired with a missing cell for the last
// column; rows short by more than one field, or wider than the header, are
// rejected. Column dtypes are inferred independently once all rows are read.
func (p *Parser) Parse(r io.Reader) (*slate.Table, error) {
	if p.conf.Compressed {
		r = lz4.NewReader(r)
	}
	scanner := bufio.NewScanner(r)

	header, line, err := p.readHeader(scanner)
	if err != nil {
		return nil, err
	}
	cells := make([][]string, len(header))

	for scanner.Scan() {
		line++
		text := scanner.Text()
		if p.skippable(text) {
			continue
		}
		fields := strings.Split(text, string(p.conf.Delimiter))
		if len(fields) == len(header)-1 {
			// one trailing field missing - pad the last column
			fields = append(fields, "")
		} else if len(fields) != len(header) {
			return nil, errors.RaggedRowError{Line: line, Expected: len(header), Actual: len(fields)}
		}
		for i, field := range fields {
			if field == p.conf.NilValue {
				field = ""
			}
			cells[i] = append(cells[i], field)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	table := slate.CreateTable()
	for i, name := range header {
		if err := table.AddColumn(slate.CreateColumn(name, cells[i])); err != nil {
			return nil, err
		}
	}
	return table, nil
}

// ParseFile opens a file and parses it into a fresh Table
func (p *Parser) ParseFile(path string) (*slate.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open %s for reading: %w", path, err)
	}
	defer f.Close()
	table, err := p.Parse(f)
	if err != nil {
		return nil, err
	}
	logging.Logf(logging.InfoLevel, "Loaded %d rows x %d columns from %s into table %s", table.NumRows(), table.NumColumns(), path, table.ID())
	return table, nil
}

// readHeader scans lines until it finds the header, validates it, and
// reports how many lines it consumed so later errors carry true line numbers
func (p *Parser) readHeader(scanner *bufio.Scanner) ([]string, int, error) {
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if p.skippable(text) {
			continue
		}
		header := strings.Split(text, string(p.conf.Delimiter))
		seen := make(map[string]bool, len(header))
		for _, name := range header {
			if seen[name] {
				return nil, line, errors.DuplicateColumnError{Name: name}
			}
			seen[name] = true
		}
		return header, line, nil
	}
	if err := scanner.Err(); err != nil {
		return nil, line, err
	}
	return nil, line, io.ErrUnexpectedEOF
}

// skippable returns true for blank lines and comment lines
func (p *Parser) skippable(line string) bool {
	if len(line) == 0 {
		return true
	}
	return p.conf.Comment != 0 && []rune(line)[0] == p.conf.Comment
}
