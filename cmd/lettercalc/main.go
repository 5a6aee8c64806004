package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/jessevdk/go-flags"
	"github.com/karupanerura/lettercalc/internal/expression"
	"github.com/karupanerura/lettercalc/internal/server"
	"github.com/karupanerura/lettercalc/internal/suite"
	"github.com/karupanerura/lettercalc/internal/types"
	"github.com/mattn/go-isatty"
	"github.com/samber/lo"
)

type Option struct {
	Expr   string `short:"e" long:"expr" description:"[OPTIONAL] Expression to evaluate" required:"false"`
	File   string `short:"f" long:"file" description:"[OPTIONAL] Suite file to run (JSON or YAML)" required:"false"`
	Listen string `short:"l" long:"listen" description:"[OPTIONAL] Listen host and port to serve the evaluation API" required:"false"`
	Jobs   int    `short:"j" long:"jobs" description:"[OPTIONAL] Concurrency for suite evaluation (0 = suite's own setting)" required:"false"`
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var opt Option
	parser := flags.NewParser(&opt, flags.Default)
	_, err := parser.ParseArgs(args)
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return 0
		} else {
			parser.WriteHelp(os.Stdout)
			return 1
		}
	}
	if lo.Count([]bool{opt.Expr != "", opt.File != "", opt.Listen != ""}, true) != 1 {
		parser.WriteHelp(os.Stdout)
		return 1
	}

	// server mode
	if opt.Listen != "" {
		if err = serveAPI(opt.Listen); err != nil {
			log.Printf("failed to serve evaluation API: %v", err)
			return 1
		}
		return 0
	}

	// suite mode
	if opt.File != "" {
		s, err := loadSuite(opt.File)
		if err != nil {
			log.Printf("failed to load suite: %v", err)
			return 1
		}

		report := s.Run(opt.Jobs)
		if err = dumpJSON(os.Stdout, report); err != nil {
			log.Printf("failed to dump suite report: %v", err)
		}
		if !report.OK() {
			return 1
		}
		return 0
	}

	ret, err := expression.EvaluateExpr(opt.Expr)
	if err != nil {
		var exception types.Exception
		if errors.As(err, &exception) {
			if _, err = fmt.Fprintln(os.Stderr, exception.Error()); err != nil {
				log.Printf("failed to dump evaluation error: %v", err)
			}
			if err = dumpJSON(os.Stderr, exception.Exception()); err != nil {
				log.Printf("failed to dump evaluation error as JSON: %v", err)
			}
			return 1
		} else {
			log.Printf("failed to evaluate expression: %v", err)
			return 1
		}
	}

	if err = dumpJSON(os.Stdout, evaluationResult{Expression: opt.Expr, Result: ret}); err != nil {
		log.Printf("failed to dump evaluation result: %v", err)
	}
	return 0
}

type evaluationResult struct {
	Expression string `json:"expression"`
	Result     int64  `json:"result"`
}

func loadSuite(filePath string) (*suite.Suite, error) {
	var parseSuite func(io.Reader) (*suite.Suite, error)
	switch filepath.Ext(filePath) {
	case ".json":
		parseSuite = suite.ParseSuiteJSON
	case ".yaml", ".yml":
		parseSuite = suite.ParseSuiteYAML
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", filePath)
	}

	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("os.Open(%q): %w", filePath, err)
	}
	defer f.Close()

	s, err := parseSuite(f)
	if err != nil {
		return nil, fmt.Errorf("suite.ParseSuite: %w", err)
	}
	return s, nil
}

func serveAPI(listen string) error {
	srv := http.Server{
		Handler: server.NewHTTPHandler(),
		Addr:    listen,
	}

	log.Printf("Listen HTTP on %s", listen)
	if err := srv.ListenAndServe(); errors.Is(err, http.ErrServerClosed) {
		return nil
	} else if err != nil {
		return err
	}
	return nil
}

func dumpJSON(w io.Writer, v any) error {
	opts := []json.EncodeOptionFunc{json.DisableHTMLEscape()}
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		if isatty.IsTerminal(f.Fd()) {
			opts = append(opts, json.Colorize(json.DefaultColorScheme))
		}
	}

	b, err := json.MarshalIndentWithOption(v, "", "\t", opts...)
	if err != nil {
		return fmt.Errorf("json.MarshalIndentWithOption: %w", err)
	}

	if _, err = w.Write(b); err != nil {
		return fmt.Errorf("w.Write: %w", err)
	}
	if _, err = io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("io.WriteString: %w", err)
	}
	return nil
}
