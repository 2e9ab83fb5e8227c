// Command kstem batch-stems the whitespace-separated words in a file,
// printing one stem per line.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-kstem/kstem"
	"github.com/go-kstem/kstem/internal/kstemcfg"
)

func main() {
	configPath := flag.String("config", "kstem.toml", "path to optional TOML config")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("usage: kstem <file>")
	}

	cfg, err := kstemcfg.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	dir := cfg.LexiconDirOr(os.Getenv("STEM_DIR"))
	st, err := kstem.New(dir)
	if err != nil {
		log.Fatalf("initializing stemmer: %v", err)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatalf("opening %s: %v", flag.Arg(0), err)
	}
	defer f.Close()

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	sc := bufio.NewScanner(f)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		fmt.Fprintln(w, st.Stem(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		log.Fatalf("reading %s: %v", flag.Arg(0), err)
	}
}
