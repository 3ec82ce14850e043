package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-advisor-api/internal/domain"
	"github.com/vfg2006/sales-advisor-api/internal/usecases/advising"
	"github.com/vfg2006/sales-advisor-api/pkg/log"
	"github.com/vfg2006/sales-advisor-api/pkg/utils"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run imprime o grafo do pipeline e o estado final em JSON. Sem -input usa o registro de exemplo.
func run(ctx context.Context, args []string, out io.Writer) error {
	flags := flag.NewFlagSet("advisor", flag.ContinueOnError)
	inputPath := flags.String("input", "", "arquivo .json, .yaml ou .yml com o registro diário")
	dot := flags.Bool("dot", false, "imprime o grafo no formato DOT em vez de ASCII")
	logLevel := flags.String("log-level", "warn", "nível de log")

	if err := flags.Parse(args); err != nil {
		return err
	}

	log.Configure(*logLevel)

	advisor := advising.NewService()
	graph := advisor.Topology()

	if *dot {
		fmt.Fprintln(out, graph.DOT())
	} else {
		fmt.Fprint(out, graph.ASCII())
	}

	if *inputPath == "" {
		return printState(out, advisor.Run(ctx, domain.SampleDailyRecord()))
	}

	raw, err := readInput(*inputPath)
	if err != nil {
		return err
	}

	state, err := advisor.RunRaw(ctx, raw)
	if err != nil {
		return err
	}

	return printState(out, state)
}

func readInput(path string) (map[string]any, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "advisor: read input %s", path)
	}

	raw := map[string]any{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(content, &raw)
	case ".json":
		err = json.Unmarshal(content, &raw)
	default:
		return nil, errors.Errorf("advisor: unsupported input extension %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, errors.Wrapf(err, "advisor: parse input %s", path)
	}

	return raw, nil
}

func printState(out io.Writer, state domain.PipelineState) error {
	pretty, err := utils.PrettyJson(state)
	if err != nil {
		return errors.Wrap(err, "advisor: encode state")
	}

	_, err = fmt.Fprintln(out, pretty)
	return err
}
