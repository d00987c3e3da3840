// Package aissource provides line-oriented sources of raw NMEA sentences,
// the input side of spec.md's §2 "read a line of text" model.
package aissource

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/tarm/serial"
)

// LineSource reads successive raw NMEA sentence lines.
type LineSource interface {
	// ReadLine blocks until a line is available, ctx is done, or the
	// underlying stream ends (io.EOF).
	ReadLine(ctx context.Context) (string, error)
	Close() error
}

// FileSource reads lines from any io.Reader: a plain file, a TCP socket
// feed, or an in-memory buffer in tests.
type FileSource struct {
	scanner *bufio.Scanner
	closer  io.Closer
}

// NewFileSource wraps r. If r also implements io.Closer, Close releases it.
func NewFileSource(r io.Reader) *FileSource {
	s := &FileSource{scanner: bufio.NewScanner(r)}
	if c, ok := r.(io.Closer); ok {
		s.closer = c
	}
	return s
}

// ReadLine returns the next line, or io.EOF once the reader is exhausted.
// ctx is checked before each read so a canceled context stops promptly
// even mid-stream.
func (s *FileSource) ReadLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}
	if s.scanner.Scan() {
		return s.scanner.Text(), nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// Close releases the underlying reader, if closable.
func (s *FileSource) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// SerialConfig configures a serial AIS receiver connection.
type SerialConfig struct {
	Device      string
	Baud        int
	ReadTimeout time.Duration
}

// SerialSource reads NMEA sentences from a serial-attached AIS receiver.
type SerialSource struct {
	port    *serial.Port
	scanner *bufio.Scanner
}

// OpenSerialSource opens cfg.Device at cfg.Baud and returns a SerialSource
// reading newline-delimited sentences from it.
func OpenSerialSource(cfg SerialConfig) (*SerialSource, error) {
	if cfg.Baud <= 0 {
		cfg.Baud = 38400
	}
	port, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: cfg.ReadTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("aissource: open serial port %s: %w", cfg.Device, err)
	}
	return &SerialSource{port: port, scanner: bufio.NewScanner(port)}, nil
}

// ReadLine returns the next sentence read from the serial port.
func (s *SerialSource) ReadLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}
	if s.scanner.Scan() {
		return s.scanner.Text(), nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// Close closes the underlying serial port.
func (s *SerialSource) Close() error {
	return s.port.Close()
}
