// Package repl implements an interactive shell for exploring how a handful
// of sample lines cluster before committing to a full file-based mining
// run (SPEC_FULL §4.N).
package repl

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/chzyer/readline"

	"github.com/n0madic/logtemplate/engine"
)

const prompt = "logtemplate> "

// Run starts the interactive loop, reading lines from the terminal via
// readline and writing output to out, until the user quits or input is
// exhausted. Typed lines accumulate into a batch; ":mine" re-runs the
// engine over the whole accumulated batch and prints the resulting
// templates; ":reset" clears it; ":quit" exits.
func Run(cfg engine.Config, out io.Writer) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      prompt,
		HistoryFile: "",
		Stdout:      out,
	})
	if err != nil {
		return fmt.Errorf("repl: start readline: %w", err)
	}
	defer rl.Close()

	var batch []string

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("repl: read line: %w", err)
		}

		switch strings.TrimSpace(line) {
		case ":quit", ":exit":
			return nil
		case ":reset":
			batch = nil
			continue
		case ":mine":
			if err := mineAndPrint(out, batch, cfg); err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
			}
			continue
		case "":
			continue
		}

		batch = append(batch, line)
	}
}

func mineAndPrint(out io.Writer, batch []string, cfg engine.Config) error {
	results, err := engine.Mine(batch, cfg)
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(results))
	for k := range results {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		r := results[k]
		fmt.Fprintf(out, "%-60s count=%d\n", k, len(r.LineIDs))
	}
	return nil
}
