// Command xptcat dumps a SAS XPORT (XPT) version 5 transport file's
// observations as CSV on stdout.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/go-xpt/xpt/xpt"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: xptcat [file]\n\n"+
			"Reads a SAS XPORT v5 transport file and writes its observations as\n"+
			"CSV to stdout, with a header row of declared field names.\n"+
			"Omit file, or pass -, to read from stdin.\n")
	}
	flag.Parse()

	path := "-"
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}

	if err := run(path, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(path string, out io.Writer) error {
	src, closeSrc, err := openSource(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer closeSrc()

	r, err := xpt.Open(src)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	w := csv.NewWriter(out)
	if err := w.Write(r.Fields()); err != nil {
		return err
	}

	for {
		row, ok, err := r.Next()
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		if !ok {
			break
		}
		if err := w.Write(csvRecord(row)); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func csvRecord(row xpt.Row) []string {
	record := make([]string, row.Len())
	for i := range record {
		if v, ok := row.Value(i); ok {
			record[i] = strconv.FormatFloat(v, 'g', -1, 64)
			continue
		}
		s, _ := row.Text(i)
		record[i] = s
	}
	return record
}

func openSource(path string) (io.Reader, func() error, error) {
	if path == "-" {
		return os.Stdin, func() error { return nil }, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
