// core/fasta/fasta.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"oligotile/core/pool"
)

// DefaultRawName names input that carries no FASTA header at all.
const DefaultRawName = "sequence1"

// ErrNoRecords is returned when the input holds no non-empty sequence.
var ErrNoRecords = errors.New("no sequences in input")

// Parse reads multi-FASTA from r into fragments.
//
// Input whose first non-blank line does not start with '>' is one raw
// sequence named rawName (DefaultRawName when empty). Sequence lines keep
// only ASCII letters, uppercased. Records whose sequence ends up empty are
// skipped; a record with a blank header is named fragment<n>, n counting the
// fragments kept so far.
func Parse(ctx context.Context, r io.Reader, rawName string) ([]pool.Fragment, error) {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		frags   []pool.Fragment
		header  string
		seq     []byte
		started bool
		raw     bool
	)
	flush := func() {
		if len(seq) == 0 {
			return
		}
		name := header
		if raw {
			name = rawName
			if name == "" {
				name = DefaultRawName
			}
		} else if name == "" {
			name = fmt.Sprintf("fragment%d", len(frags)+1)
		}
		frags = append(frags, pool.Fragment{Name: name, Seq: string(seq)})
		seq = seq[:0]
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if !started {
			started = true
			raw = line[0] != '>'
		}
		if !raw && line[0] == '>' {
			flush()
			header = strings.TrimSpace(string(line[1:]))
			continue
		}
		seq = appendLetters(seq, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fasta scan: %w", err)
	}
	flush()
	if len(frags) == 0 {
		return nil, ErrNoRecords
	}
	return frags, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(text, rawName string) ([]pool.Fragment, error) {
	return Parse(context.Background(), strings.NewReader(text), rawName)
}

// ReadPath opens path with Open and parses it.
func ReadPath(ctx context.Context, path, rawName string) ([]pool.Fragment, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	frags, err := Parse(ctx, rc, rawName)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return frags, nil
}

func appendLetters(dst, line []byte) []byte {
	for _, c := range line {
		switch {
		case c >= 'A' && c <= 'Z':
			dst = append(dst, c)
		case c >= 'a' && c <= 'z':
			dst = append(dst, c-'a'+'A')
		}
	}
	return dst
}
