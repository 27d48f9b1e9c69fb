package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/brunokim/nd-checker/errors"
	"github.com/brunokim/nd-checker/parser"
)

var (
	inputFilename = flag.String("input", "", "Input file with one formula per line (required)")
)

func main() {
	flag.Parse()
	if *inputFilename == "" {
		log.Fatalf("-input is required")
	}
	input, err := os.Open(*inputFilename)
	if err != nil {
		log.Fatalf("open input: %v", err)
	}
	defer input.Close()

	numErrors := 0
	scanner := bufio.NewScanner(input)
	for lineno := 1; scanner.Scan(); lineno++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		x, err := parser.ParseExpr(text)
		if err != nil {
			numErrors++
			log.Printf("%s:%d: %v", *inputFilename, lineno, err)
			var perr *parser.ParseError
			if errors.As(err, &perr) {
				fmt.Fprintln(os.Stderr, perr.Highlight(text))
			}
			continue
		}
		fmt.Println(x)
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("input: %v", err)
	}
	if numErrors > 0 {
		os.Exit(1)
	}
}
