// Command kstemfilter reads lines from stdin and writes the stem of
// every word on each line, space-joined, to stdout — one output line
// per input line.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/go-kstem/kstem"
	"github.com/go-kstem/kstem/internal/kstemcfg"
)

func isFieldSep(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

func main() {
	configPath := flag.String("config", "kstem.toml", "path to optional TOML config")
	flag.Parse()

	cfg, err := kstemcfg.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	dir := cfg.LexiconDirOr(os.Getenv("STEM_DIR"))
	st, err := kstem.New(dir)
	if err != nil {
		log.Fatalf("initializing stemmer: %v", err)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		words := strings.FieldsFunc(sc.Text(), isFieldSep)
		stems := make([]string, len(words))
		for i, word := range words {
			stems[i] = st.Stem(word)
		}
		fmt.Fprintln(out, strings.Join(stems, " "))
	}
	if err := sc.Err(); err != nil {
		log.Fatalf("reading stdin: %v", err)
	}
}
