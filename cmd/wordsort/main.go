// Command wordsort reads one text argument, keeps every distinct
// alphabetic word and prints them, one per line, in sorted order.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/brownthomasp/xord/word"
	"github.com/brownthomasp/xord/xlog"
)

func usage(errOut io.Writer, fs *pflag.FlagSet) {
	fmt.Fprintln(errOut, "usage: wordsort [flags] <text>")
	fmt.Fprintln(errOut, fs.FlagUsages())
}

func run(args []string, out, errOut io.Writer) int {
	fs := pflag.NewFlagSet("wordsort", pflag.ContinueOnError)
	fs.SetOutput(errOut)
	isDesc := fs.Bool("desc", false, "print words in descending order")
	isVerbose := fs.BoolP("verbose", "v", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		usage(errOut, fs)
		return 1
	}
	if fs.NArg() != 1 {
		usage(errOut, fs)
		return 1
	}

	lvl := xlog.LogLevelWarn
	if *isVerbose {
		lvl = xlog.LogLevelDebug
	}
	logger := xlog.NewXLogger("wordsort", xlog.WithXLoggerLevel(lvl))
	defer func() {
		_ = logger.Sync()
	}()

	var sorter *word.Sorter
	if *isDesc {
		sorter = word.NewSorter(word.WithSorterDesc())
	} else {
		sorter = word.NewSorter()
	}
	defer sorter.Release()

	inserted, dups := sorter.InsertText(fs.Arg(0))
	logger.Debug("tokens inserted",
		zap.Int("distinct", inserted),
		zap.Int("duplicates", dups),
	)

	w := bufio.NewWriter(out)
	sorter.Foreach(func(idx int64, token string) bool {
		_, _ = w.WriteString(token)
		_ = w.WriteByte('\n')
		return true
	})
	if err := w.Flush(); err != nil {
		logger.Error(err, "flush output")
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
