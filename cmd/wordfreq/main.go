// The wordfreq command prints the most frequent words in its input.
//
// Usage:
//
//	wordfreq [-n count] [-v] [file...]
//
// With no file arguments it reads standard input. Words are separated
// by white space, have leading and trailing punctuation removed, and
// are compared case-insensitively.
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"iter"
	"os"
	"unicode"

	"go.uber.org/zap"

	"github.com/rogpeppe/chainmap/hashmap"
	"github.com/rogpeppe/chainmap/internal/rank"
)

var (
	topN    = flag.Int("n", 10, "number of words to print")
	verbose = flag.Bool("v", false, "log progress and map resizes to stderr")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: wordfreq [-n count] [-v] [file...]\n")
		flag.PrintDefaults()
		os.Exit(2)
	}
	flag.Parse()
	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "wordfreq: %v\n", err)
			os.Exit(1)
		}
		logger = l
	}
	defer logger.Sync()
	if err := run(flag.Args(), *topN, os.Stdin, os.Stdout, logger); err != nil {
		fmt.Fprintf(os.Stderr, "wordfreq: %v\n", err)
		os.Exit(1)
	}
}

func run(files []string, n int, stdin io.Reader, stdout io.Writer, logger *zap.Logger) error {
	c := newCounter(logger)
	if len(files) == 0 {
		if err := c.count(stdin); err != nil {
			return fmt.Errorf("reading standard input: %w", err)
		}
	}
	for _, name := range files {
		if err := c.countFile(name); err != nil {
			return err
		}
	}
	logger.Info("counted words",
		zap.Int("distinct", c.words.Len()),
		zap.Int("total", c.total),
	)
	for _, e := range rank.Top(c.all(), n) {
		if _, err := fmt.Fprintf(stdout, "%7d %s\n", e.Value, e.Key); err != nil {
			return err
		}
	}
	return nil
}

// counter accumulates word counts. Counts are stored by pointer so
// that a word already seen can be counted through a byte-slice view
// without allocating a string for it.
type counter struct {
	words  *hashmap.Map[string, *int]
	total  int
	logger *zap.Logger
}

func newCounter(logger *zap.Logger) *counter {
	return &counter{
		words:  hashmap.New[string, *int](hashmap.WithLogger(logger)),
		logger: logger,
	}
}

func (c *counter) countFile(name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	c.logger.Debug("reading file", zap.String("name", name))
	if err := c.count(f); err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	return nil
}

func (c *counter) count(r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		c.add(sc.Bytes())
	}
	return sc.Err()
}

func (c *counter) add(word []byte) {
	word = bytes.TrimFunc(word, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	if len(word) == 0 {
		return
	}
	word = toLower(word)
	c.total++
	if p, ok := hashmap.GetView(c.words, hashmap.Bytes(word)); ok {
		*p++
		return
	}
	one := 1
	c.words.Insert(string(word), &one)
}

// toLower lower-cases ASCII letters in place and falls back to
// bytes.ToLower for anything else.
func toLower(b []byte) []byte {
	for i, x := range b {
		switch {
		case x >= 0x80:
			return bytes.ToLower(b)
		case 'A' <= x && x <= 'Z':
			b[i] = x + 'a' - 'A'
		}
	}
	return b
}

// all returns the counts as plain values.
func (c *counter) all() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		for k, p := range c.words.All() {
			if !yield(k, *p) {
				return
			}
		}
	}
}
