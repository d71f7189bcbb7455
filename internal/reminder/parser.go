package reminder

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Parse reads REM lines from r and returns the entries that parse, in source
// order. Lines that do not match the grammar are dropped. An error is returned
// only when r itself fails, in which case no entries are returned.
func Parse(r io.Reader) ([]Entry, error) {
	return ParseFunc(r, nil)
}

// ParseFunc behaves like Parse and additionally hands every dropped non-blank
// line to skip. A nil skip discards them silently.
func ParseFunc(r io.Reader, skip func(*LineError)) ([]Entry, error) {
	if r == nil {
		return nil, nil
	}

	br := bufio.NewReader(r)

	var entries []Entry
	lineNum := 0
	for {
		raw, err := br.ReadBytes('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read line %d: %w", lineNum+1, err)
		}
		if len(raw) == 0 && err != nil {
			break
		}

		lineNum++
		raw = bytes.TrimSuffix(raw, []byte("\n"))
		raw = bytes.TrimSuffix(raw, []byte("\r"))
		if !utf8.Valid(raw) {
			return nil, fmt.Errorf("read line %d: %w", lineNum, ErrInvalidUTF8)
		}

		line := string(raw)
		entry, perr := ParseLine(line)
		if perr != nil {
			if skip != nil && strings.TrimSpace(line) != "" {
				skip(&LineError{Line: lineNum, Text: line, Err: perr})
			}
		} else {
			entries = append(entries, entry)
		}

		if err != nil {
			break
		}
	}
	return entries, nil
}

// ParseLine parses a single REM line.
func ParseLine(line string) (Entry, error) {
	p := newParser(line)
	return p.entry()
}

// parser walks the words of one line left to right.
type parser struct {
	words []string
	index int
}

func newParser(line string) *parser {
	return &parser{words: tokenize(line)}
}

func tokenize(line string) []string {
	return strings.Fields(line)
}

func (p *parser) nextWord() (string, bool) {
	if p.index >= len(p.words) {
		return "", false
	}
	word := p.words[p.index]
	p.index++
	return word, true
}

func (p *parser) entry() (Entry, error) {
	if err := p.ident("REM"); err != nil {
		return Entry{}, err
	}
	date, err := p.date()
	if err != nil {
		return Entry{}, err
	}
	at, err := p.time()
	if err != nil {
		return Entry{}, err
	}
	duration, err := p.duration()
	if err != nil {
		return Entry{}, err
	}
	msg, err := p.message()
	if err != nil {
		return Entry{}, err
	}

	return Entry{
		Date:     date,
		Time:     at,
		Duration: duration,
		Msg:      msg,
	}, nil
}

func (p *parser) ident(keyword string) error {
	word, ok := p.nextWord()
	if !ok || !strings.EqualFold(word, keyword) {
		return ErrKeyword
	}
	return nil
}

var monthsByAbbrev = map[string]Month{
	"jan": January,
	"feb": February,
	"mar": March,
	"apr": April,
	"may": May,
	"jun": June,
	"jul": July,
	"aug": August,
	"sep": September,
	"oct": October,
	"nov": November,
	"dec": December,
}

func (p *parser) date() (Date, error) {
	word, ok := p.nextWord()
	if !ok {
		return Date{}, ErrMissingDate
	}
	name := strings.ToLower(word)
	month, ok := monthsByAbbrev[name]
	if !ok {
		return Date{}, fmt.Errorf("%w %s", ErrInvalidMonth, name)
	}

	day, err := p.num(8)
	if err != nil {
		return Date{}, err
	}
	year, err := p.num(16)
	if err != nil {
		return Date{}, err
	}

	return Date{
		Day:   uint8(day),
		Month: month,
		Year:  uint16(year),
	}, nil
}

// num reads an unsigned base-10 integer that fits in bitSize bits.
func (p *parser) num(bitSize int) (uint64, error) {
	word, ok := p.nextWord()
	if !ok {
		return 0, ErrMissingNumber
	}
	return parseUnsigned(word, bitSize)
}

// parseUnsigned parses a base-10 unsigned integer, allowing one leading '+'.
func parseUnsigned(word string, bitSize int) (uint64, error) {
	return strconv.ParseUint(strings.TrimPrefix(word, "+"), 10, bitSize)
}

func (p *parser) time() (Time, error) {
	if err := p.ident("AT"); err != nil {
		return Time{}, err
	}
	return p.timeLiteral()
}

func (p *parser) duration() (time.Duration, error) {
	if err := p.ident("DURATION"); err != nil {
		return 0, err
	}
	t, err := p.timeLiteral()
	if err != nil {
		return 0, err
	}
	seconds := int64(t.Hour)*60*60 + int64(t.Minute)*60
	return time.Duration(seconds) * time.Second, nil
}

// timeLiteral reads hh:mm. Anything after a second colon is ignored.
func (p *parser) timeLiteral() (Time, error) {
	word, ok := p.nextWord()
	if !ok {
		return Time{}, ErrMissingTime
	}

	parts := strings.SplitN(word, ":", 3)
	hour, err := parseUnsigned(parts[0], 8)
	if err != nil {
		return Time{}, err
	}
	if len(parts) < 2 {
		return Time{}, ErrMissingHour
	}
	minute, err := parseUnsigned(parts[1], 8)
	if err != nil {
		return Time{}, err
	}

	return Time{Hour: uint8(hour), Minute: uint8(minute)}, nil
}

func (p *parser) message() (string, error) {
	if err := p.ident("MSG"); err != nil {
		return "", err
	}
	msg := strings.Join(p.words[p.index:], " ")
	p.index = len(p.words)
	return msg, nil
}
