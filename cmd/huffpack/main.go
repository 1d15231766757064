package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"sync"

	_ "go.uber.org/automaxprocs"

	huffman "github.com/chronos-tachyon/huffpack"
	"github.com/chronos-tachyon/huffpack/internal/config"
	"github.com/chronos-tachyon/huffpack/internal/fileops"
	"github.com/chronos-tachyon/huffpack/internal/logger"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const usage = `usage: huffpack [-config file.yaml] <command> [-o output] [-f] [-j workers] file...

commands:
  compress     write <file><output.suffix> for each file
  decompress   restore each container
  verify       compress, restore and compare each file
  stats        print the codes each file would be given
`

var errMismatch = errors.New("restored output differs from the original")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

type app struct {
	conf      *config.Conf
	log       zerolog.Logger
	codec     *huffman.Codec
	overwrite bool

	mu     sync.Mutex
	stdout io.Writer
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	global := flag.NewFlagSet("huffpack", flag.ContinueOnError)
	global.SetOutput(stderr)
	global.Usage = func() { fmt.Fprint(stderr, usage) }
	configPath := global.String("config", os.Getenv(config.EnvConfigFile), "YAML config file")
	if err := global.Parse(args); err != nil {
		return 2
	}
	if global.NArg() == 0 {
		global.Usage()
		return 2
	}

	conf, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "huffpack: %v\n", err)
		return 1
	}
	log, err := logger.New(conf, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "huffpack: %v\n", err)
		return 1
	}

	cmd := global.Arg(0)
	fs := flag.NewFlagSet("huffpack "+cmd, flag.ContinueOnError)
	fs.SetOutput(stderr)
	output := fs.String("o", "", "output path, only with a single input")
	overwrite := fs.Bool("f", conf.Bool("output.overwrite"), "overwrite existing outputs")
	workers := fs.Int("j", conf.Int("workers"), "files processed at once, 0 for GOMAXPROCS")
	if err := fs.Parse(global.Args()[1:]); err != nil {
		return 2
	}
	files := fs.Args()
	if len(files) == 0 {
		fmt.Fprintf(stderr, "huffpack %s: no input files\n", cmd)
		return 2
	}
	if *output != "" && len(files) > 1 {
		fmt.Fprintf(stderr, "huffpack %s: -o needs exactly one input\n", cmd)
		return 2
	}

	a := &app{
		conf:      conf,
		log:       log,
		codec:     huffman.NewCodec(huffman.WithLogger(log)),
		overwrite: *overwrite,
		stdout:    stdout,
	}

	suffix := conf.String("output.suffix", ".huf")
	restoreSuffix := conf.String("output.restore-suffix", ".out")
	pick := func(def string) string {
		if *output != "" {
			return *output
		}
		return def
	}

	var job func(src string) error
	switch cmd {
	case "compress":
		job = func(src string) error {
			return a.compress(src, pick(src+suffix))
		}
	case "decompress":
		job = func(src string) error {
			dst := src + restoreSuffix
			if trimmed := strings.TrimSuffix(src, suffix); trimmed != src && trimmed != "" {
				dst = trimmed
			}
			return a.decompress(src, pick(dst))
		}
	case "verify":
		job = func(src string) error {
			return a.verify(src, pick(src+suffix), src+restoreSuffix)
		}
	case "stats":
		job = a.stats
	default:
		fmt.Fprintf(stderr, "huffpack: unknown command %q\n", cmd)
		global.Usage()
		return 2
	}

	if err := a.each(ctx, files, *workers, job); err != nil {
		log.Error().Err(err).Str("command", cmd).Msg("failed")
		return 1
	}
	return 0
}

// each runs job once per file, at most workers at a time.  Every job gets
// its own codec state; nothing is shared between them but the logger.
func (a *app) each(ctx context.Context, files []string, workers int, job func(string) error) error {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return job(file)
		})
	}
	return g.Wait()
}

func (a *app) compress(src, dst string) error {
	res, err := fileops.CompressFile(a.codec, src, dst, a.overwrite)
	if err != nil {
		return err
	}
	a.log.Info().
		Str("source", res.Source).
		Str("dest", res.Dest).
		Int64("original_bytes", res.SourceSize).
		Int64("container_bytes", res.DestSize).
		Float64("ratio_pct", res.Ratio()).
		Msg("compressed")

	if a.conf.Bool("verify") {
		ok, err := fileops.CheckContainer(a.codec, src, dst)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%s: %w", dst, errMismatch)
		}
		a.log.Debug().Str("dest", dst).Msg("container verified")
	}
	return nil
}

func (a *app) decompress(src, dst string) error {
	res, err := fileops.DecompressFile(a.codec, src, dst, a.overwrite)
	if err != nil {
		return err
	}
	a.log.Info().
		Str("source", res.Source).
		Str("dest", res.Dest).
		Int64("container_bytes", res.SourceSize).
		Int64("restored_bytes", res.DestSize).
		Msg("decompressed")
	return nil
}

func (a *app) verify(src, dst, restored string) error {
	v, err := fileops.Verify(a.codec, src, dst, restored, a.overwrite)
	if err != nil {
		return err
	}
	a.log.Info().
		Str("source", src).
		Int64("original_bytes", v.Compressed.SourceSize).
		Int64("container_bytes", v.Compressed.DestSize).
		Float64("ratio_pct", v.Compressed.Ratio()).
		Bool("identical", v.Identical).
		Msg("verified")
	if !v.Identical {
		return fmt.Errorf("%s: %w", restored, errMismatch)
	}
	return nil
}

func (a *app) stats(src string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return &huffman.IOError{Op: "read input", Err: err}
	}
	st, e, err := a.codec.Analyze(data)
	if err != nil {
		return fmt.Errorf("%s: %w", src, err)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s: %d bytes, %d distinct, codes of %d..%d bits, container %d bytes (%.2f%% saved)\n",
		src, st.OriginalSize, st.Distinct, st.MinCodeSize, st.MaxCodeSize, st.ContainerSize, fileops.Ratio(int64(st.OriginalSize), int64(st.ContainerSize)))
	_, _ = e.Dump(&buf)

	a.mu.Lock()
	defer a.mu.Unlock()
	_, err = buf.WriteTo(a.stdout)
	return err
}
