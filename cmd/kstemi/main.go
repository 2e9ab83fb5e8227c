// Command kstemi is an interactive prompt: it reads one word per line
// and prints its stem, exiting cleanly on an empty line or EOF.
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

	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !in.Scan() {
			break
		}
		line := strings.TrimSpace(in.Text())
		if line == "" {
			break
		}
		fmt.Printf("The stem was: %s\n", st.Stem(line))
	}
	if err := in.Err(); err != nil {
		log.Fatalf("reading stdin: %v", err)
	}
}
