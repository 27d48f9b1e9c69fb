package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/brunokim/nd-checker/errors"
	"github.com/brunokim/nd-checker/logic"
	"github.com/brunokim/nd-checker/parser"

	"github.com/chzyer/readline"
)

var (
	historyFile = flag.String("history", "/tmp/nd-checker-history", "File to store the formula history")
	expr        = flag.String("expr", "", "Initial formula to explore")
	interactive = flag.Bool("interactive", true, "Whether the REPL is interactive")
)

type ctx struct {
	interrupt chan os.Signal
	readline  *readline.Instance
}

func main() {
	flag.Parse()
	if !*interactive && len(*expr) == 0 {
		log.Fatal("No formula provided for non-interactive REPL")
	}
	if len(*expr) > 0 {
		explore(*expr)
	}
	if !*interactive {
		return
	}

	ctx := ctx{}
	ctx.interrupt = make(chan os.Signal, 1)
	signal.Notify(ctx.interrupt, syscall.SIGINT)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:                 "> ",
		HistoryFile:            *historyFile,
		DisableAutoSaveHistory: true,
		InterruptPrompt:        "^C",
	})
	if err != nil {
		log.Fatal(err)
	}
	defer rl.Close()
	ctx.readline = rl

	ctx.mainLoop()
}

func (ctx ctx) mainLoop() {
	for {
		select {
		case <-ctx.interrupt:
			return
		default:
		}
		text, isClose := ctx.readFormula()
		if isClose {
			return
		}
		explore(text)
	}
}

// readFormula reads lines until a non-empty one, continuing on lines ending
// with a backslash.
func (ctx ctx) readFormula() (string, bool) {
	ctx.readline.SetPrompt("> ")
	var lines []string
	for {
		line, err := ctx.readline.Readline()
		if err == readline.ErrInterrupt {
			if len(lines) == 0 {
				return "", true
			}
			lines = nil
			ctx.readline.SetPrompt("> ")
			continue
		}
		if err != nil {
			return "", true
		}
		line = strings.TrimSpace(line)
		if len(line) == 0 && len(lines) == 0 {
			continue
		}
		if strings.HasSuffix(line, `\`) {
			lines = append(lines, strings.TrimSuffix(line, `\`))
			ctx.readline.SetPrompt("| ")
			continue
		}
		lines = append(lines, line)
		break
	}
	text := strings.Join(lines, " ")
	ctx.readline.SaveHistory(text)
	return text, false
}

func explore(text string) {
	x, err := parser.ParseExpr(text)
	if err != nil {
		log.Print(err)
		var perr *parser.ParseError
		if errors.As(err, &perr) {
			fmt.Println(perr.Highlight(text))
		}
		return
	}
	prefix, err := parser.Prefix(text)
	if err != nil {
		log.Print(err)
		return
	}
	atoms := logic.Atoms(x)
	names := make([]string, len(atoms))
	for i, atom := range atoms {
		names[i] = atom.String()
	}
	fmt.Println(x)
	fmt.Printf("  prefix: %s\n", prefix)
	fmt.Printf("  atoms:  {%s}\n", strings.Join(names, ", "))
}
