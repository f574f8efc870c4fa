// Package meme serializes a motif table in MEME version 4 text format.
// Each sequence becomes a one-hot letter-probability matrix (nsites=1).
package meme

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/luxmeme/internal/motif"
)

// FileName is the name of the file written by WriteFile.
const FileName = "lux_motifs.meme"

// ErrInvalidBase is wrapped by DataError.
var ErrInvalidBase = errors.New("base outside nucleotide alphabet")

// DataError reports a sequence character with no matrix column.
type DataError struct {
	Motif    string
	Position int // 0-based
	Base     byte
}

func (e *DataError) Error() string {
	return fmt.Sprintf("motif %s: %v: %q at position %d", e.Motif, ErrInvalidBase, e.Base, e.Position+1)
}

func (e *DataError) Unwrap() error {
	return ErrInvalidBase
}

// one-hot rows indexed by column
var rows = [len(motif.Alphabet)]string{
	"1 0 0 0\n",
	"0 1 0 0\n",
	"0 0 1 0\n",
	"0 0 0 1\n",
}

// Write streams the MEME header followed by one MOTIF block per entry, in table order.
// Nothing past the offending motif is written when a DataError is returned.
func Write(w io.Writer, table motif.Table) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString("MEME version 4\n\n"); err != nil {
		return err
	}
	for _, e := range table {
		if err := writeMotif(bw, e); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeMotif(bw *bufio.Writer, e motif.Entry) error {
	if _, err := fmt.Fprintf(bw,
		"MOTIF %s\nletter-probability matrix: alength= %d w= %d nsites=1 E=0\n",
		e.Name, len(motif.Alphabet), e.Width(),
	); err != nil {
		return err
	}
	for i := 0; i < len(e.Sequence); i++ {
		col, ok := motif.Column(e.Sequence[i])
		if !ok {
			return &DataError{Motif: e.Name, Position: i, Base: e.Sequence[i]}
		}
		if _, err := bw.WriteString(rows[col]); err != nil {
			return err
		}
	}
	_, err := bw.WriteString("\n")
	return err
}
