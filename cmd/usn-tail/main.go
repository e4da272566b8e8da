// Command usn-tail consumes the NDJSON event stream of a USN file-change
// watcher and prints file saves as they happen.
//
// By default it reads pre-split lines from stdin:
//
//	usn-watcher C --format json | usn-tail
//
// With --pipe it attaches to the watcher's named pipe instead and performs
// its own newline framing over the raw byte stream.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"usn_tail/internal/config"
	"usn_tail/internal/eventstream"
	"usn_tail/internal/filter"
	"usn_tail/internal/otel"
	"usn_tail/internal/output"
	"usn_tail/internal/pipefs"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	opts, err := config.ParseArgs(os.Args)
	if err != nil {
		return err
	}

	settings, err := config.Resolve(opts)
	if err != nil {
		return err
	}

	// Handler chain, innermost first: print <- filter <- trace.
	var handler eventstream.Handler = output.NewPrintHandler(os.Stdout)

	if settings.Filter != "" {
		f, err := filter.Compile(settings.Filter)
		if err != nil {
			return err
		}
		handler = f.Wrap(handler)
	}

	if settings.Trace {
		otelCfg, err := config.ParseOTELConfig()
		if err != nil {
			return err
		}
		tp, err := otel.InitProvider(otelCfg)
		if err != nil {
			return err
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := otel.ShutdownProvider(shutdownCtx, tp); err != nil {
				log.Printf("Error shutting down tracer provider: %v", err)
			}
		}()
		handler = output.NewTraceHandler(tp.Tracer("usn-tail"), handler)
	}

	var source eventstream.Source
	if settings.UsePipe {
		if err := pipefs.Ensure(settings.PipePath); err != nil {
			return err
		}
		log.Printf("connecting to %s...", settings.PipePath)
		source = eventstream.NewPipeSource(settings.PipePath, settings.ReadSize)
	} else {
		source = eventstream.NewStdinSource()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Closing the source unblocks the pending read so a signal ends the
	// session instead of leaving the loop stuck.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
		_ = source.Close()
	}()

	stream := eventstream.New(source, handler,
		eventstream.WithMaxFrameSize(settings.MaxFrame))

	return stream.Run(ctx)
}
