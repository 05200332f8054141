package jsonl

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/tidwall/gjson"

	"github.com/go-slate/slate"
	"github.com/go-slate/slate/errors"
	"github.com/go-slate/slate/logging"
)

// ParserConf configures a JSONL Parser, suitable for JSON lines data
type ParserConf struct {
	Columns       []string // The columns to extract from each line. Column names are gjson paths; values which do not correspond to a configured column are ignored.
	Comment       rune     // Lines beginning with the comment character are ignored. Defaults to no comment character.
	MaxBufferSize int      // Maximum size in bytes of the buffer used to read lines from the input
}

// Parser produces Tables from JSONL data
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new JSONL Parser
func CreateParser(conf *ParserConf) *Parser {
	if conf.MaxBufferSize == 0 {
		conf.MaxBufferSize = bufio.MaxScanTokenSize
	}
	return &Parser{conf: conf}
}

// Parse parses JSONL data into a fresh Table with one column per configured
// gjson path. Paths which do not match a line produce missing cells for that
// row, and dtypes are inferred once all lines are read.
func (p *Parser) Parse(r io.Reader) (*slate.Table, error) {
	if len(p.conf.Columns) == 0 {
		return nil, fmt.Errorf("no columns configured")
	}
	seen := make(map[string]bool, len(p.conf.Columns))
	for _, name := range p.conf.Columns {
		if seen[name] {
			return nil, errors.DuplicateColumnError{Name: name}
		}
		seen[name] = true
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), p.conf.MaxBufferSize)

	cells := make([][]string, len(p.conf.Columns))
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}
		if p.conf.Comment != 0 && []rune(line)[0] == p.conf.Comment {
			continue
		}
		for i, path := range p.conf.Columns {
			result := gjson.Get(line, path)
			if !result.Exists() || result.Type == gjson.Null {
				cells[i] = append(cells[i], "")
				continue
			}
			cells[i] = append(cells[i], result.String())
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	table := slate.CreateTable()
	for i, name := range p.conf.Columns {
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
