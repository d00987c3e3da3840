// Command aisdecode reads AIVDM/AIVDO sentences from a file, stdin, or a
// serial-attached AIS receiver and prints the decoded messages.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/vesseltrack/ais"
	"github.com/vesseltrack/ais/aissource"
	"github.com/vesseltrack/ais/internal/utils"
)

func main() {
	inputPath := pflag.String("input", "", "path to a file of AIVDM/AIVDO sentences, or - for stdin")
	serialDevice := pflag.String("serial", "", "serial device path to read sentences from, e.g. /dev/ttyUSB0")
	baud := pflag.Int("baud", 38400, "serial device baud rate")
	strictArmor := pflag.Bool("strict-armor", true, "reject out-of-range armor characters instead of zero-substituting them")
	ttl := pflag.Duration("ttl", ais.DefaultFragmentTTL, "how long an incomplete multi-fragment message may wait before being dropped")
	typeFilter := pflag.String("type-filter", "", "comma separated list of message types to print, e.g. 1,2,3,5")
	mmsiFilter := pflag.String("mmsi-filter", "", "comma separated list of MMSIs to print")
	outputFormat := pflag.String("output", "json", "output format: json or text")
	quiet := pflag.Bool("quiet", false, "suppress warning logs")
	pflag.Parse()

	logger := charmlog.New(os.Stderr)
	if *quiet {
		logger.SetLevel(charmlog.FatalLevel)
	}

	if *inputPath == "" && *serialDevice == "" {
		logger.Fatal("either --input or --serial must be given")
	}
	if *inputPath != "" && *serialDevice != "" {
		logger.Fatal("--input and --serial are mutually exclusive")
	}

	types, err := parseUintFilter(*typeFilter)
	if err != nil {
		logger.Fatal("invalid --type-filter", "err", err)
	}
	mmsis, err := parseUintFilter(*mmsiFilter)
	if err != nil {
		logger.Fatal("invalid --mmsi-filter", "err", err)
	}
	switch *outputFormat {
	case "json", "text":
	default:
		logger.Fatal("unknown --output format", "format", *outputFormat)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	source, err := openSource(*inputPath, *serialDevice, *baud)
	if err != nil {
		logger.Fatal("failed to open source", "err", err)
	}
	defer source.Close()

	decoder := ais.NewDecoder(ais.Config{
		FragmentTTL: *ttl,
		StrictArmor: *strictArmor,
		Logger:      logger,
	})

	go runGC(ctx, decoder, *ttl)

	msgCount := uint64(0)
	errCount := uint64(0)
	for {
		line, err := source.ReadLine(ctx)
		if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
			break
		}
		if err != nil {
			logger.Error("read failed", "err", err)
			errCount++
			if errCount > 20 {
				break
			}
			continue
		}

		result := decoder.Parse(line)
		switch result.Outcome {
		case ais.OutcomeIgnored, ais.OutcomePending:
			continue
		case ais.OutcomeError:
			logger.Warn("decode failed", "err", result.Err, "line", utils.FormatSpaces([]byte(line)))
			continue
		case ais.OutcomeComplete:
			msgCount++
			msg := result.Message
			if len(types) > 0 && !containsUint(types, uint64(msg.Type)) {
				continue
			}
			if len(mmsis) > 0 && !containsUint(mmsis, uint64(msg.MMSI)) {
				continue
			}
			printMessage(msg, *outputFormat)
		}
	}
	logger.Infof("finished, decoded %d messages, %d read errors", msgCount, errCount)
}

func openSource(inputPath, serialDevice string, baud int) (aissource.LineSource, error) {
	if serialDevice != "" {
		return aissource.OpenSerialSource(aissource.SerialConfig{
			Device:      serialDevice,
			Baud:        baud,
			ReadTimeout: 100 * time.Millisecond,
		})
	}
	if inputPath == "-" {
		return aissource.NewFileSource(os.Stdin), nil
	}
	f, err := os.Open(inputPath)
	if err != nil {
		return nil, err
	}
	return aissource.NewFileSource(f), nil
}

func runGC(ctx context.Context, d *ais.Decoder, ttl time.Duration) {
	interval := ttl / 2
	if interval <= 0 {
		interval = ais.DefaultFragmentTTL / 2
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			d.GC(now)
		}
	}
}

func printMessage(msg *ais.Message, format string) {
	switch format {
	case "json":
		b, err := json.Marshal(msg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "# marshal error: %v\n", err)
			return
		}
		fmt.Println(string(b))
	case "text":
		fmt.Printf("type=%d mmsi=%d repeat=%d channel=%s fields=%+v\n",
			msg.Type, msg.MMSI, msg.Repeat, msg.RawChannel, msg.Fields)
	}
}

func parseUintFilter(s string) ([]uint64, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	result := make([]uint64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", p, err)
		}
		result = append(result, n)
	}
	return result, nil
}

func containsUint(list []uint64, v uint64) bool {
	for _, n := range list {
		if n == v {
			return true
		}
	}
	return false
}
