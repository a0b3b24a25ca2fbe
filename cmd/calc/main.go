package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/germanogmn1/calc"
)

func main() {
	var (
		trace   bool
		catfile string
		depth   int
		verb    string
	)
	flag.BoolVar(&trace, "trace", false, "print converter and evaluator steps")
	flag.StringVar(&catfile, "catalog", "", "YAML catalog configuration file")
	flag.IntVar(&depth, "depth", calc.DefaultMaxDepth, "maximum stack depth")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.Parse()

	log := newLogger()
	defer log.Sync()

	opts := []calc.Option{calc.WithMaxDepth(depth)}
	if catfile != "" {
		cat, err := calc.LoadCatalogFile(catfile)
		if err != nil {
			log.Fatal(err)
		}
		opts = append(opts, calc.WithCatalog(cat))
	}
	if trace {
		opts = append(opts, calc.WithTracer(&logTracer{log}))
	}
	verb += "\n"

	if flag.NArg() > 0 {
		src := strings.Join(flag.Args(), " ")
		p, err := calc.Parse(src, opts...)
		if err != nil {
			log.Fatal(err)
		}
		if trace {
			log.Infof("RPN: %v", p)
		}
		r, err := p.Eval(opts...)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf(verb, r)
		return
	}
	repl(log, verb, opts)
}

func repl(log *zap.SugaredLogger, verb string, opts []calc.Option) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	for {
		src, err := ln.Prompt("calc> ")
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
				fmt.Println()
				return
			}
			log.Fatal(err)
		}
		if strings.TrimSpace(src) == "" {
			continue
		}
		ln.AppendHistory(src)
		r, err := calc.EvalString(src, opts...)
		if err != nil {
			log.Error(err)
			continue
		}
		fmt.Printf(verb, r)
	}
}

func newLogger() *zap.SugaredLogger {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableCaller = true
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("04:05.000")
	log, err := cfg.Build(zap.AddStacktrace(zapcore.FatalLevel))
	if err != nil {
		panic(err)
	}
	return log.Sugar()
}

// logTracer prints one line per pipeline step, the way the conversion and
// evaluation stacks are usually eyeballed: the dispatched token, then the
// pending operators and RPN output (or the value stack during evaluation).
type logTracer struct {
	log *zap.SugaredLogger
}

func (t *logTracer) ConvertStep(tok calc.Token, pending, output []calc.Token, calls []int) {
	t.log.Infof("%s\toperators [%s] output [%s] calls %v", tok, joinTokens(pending), joinTokens(output), calls)
}

func (t *logTracer) EvalStep(tok calc.Token, values []float64) {
	t.log.Infof("%s\tstack %v", tok, values)
}

func joinTokens(toks []calc.Token) string {
	var b strings.Builder
	for i, tok := range toks {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.String())
	}
	return b.String()
}
