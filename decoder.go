package ais

import (
	"sync"
	"time"

	charmlog "github.com/charmbracelet/log"
)

// Outcome is the result of one call to Decoder.Parse, per spec.md §5: a
// single call returns Pending, Complete, Ignored, or Error deterministically.
type Outcome uint8

const (
	// OutcomeIgnored: the line was not an AIS sentence.
	OutcomeIgnored Outcome = iota
	// OutcomePending: the sentence was buffered, awaiting more fragments.
	OutcomePending
	// OutcomeComplete: a full message was assembled and decoded.
	OutcomeComplete
	// OutcomeError: the sentence or message failed to decode; see Result.Err.
	OutcomeError
)

// Result is returned by Decoder.Parse.
type Result struct {
	Outcome Outcome
	Message *Message
	Err     error
}

// Config holds the tunables enumerated in spec.md §6.
type Config struct {
	// FragmentTTL is how long a pending multi-fragment group may sit
	// without a new fragment before gc(now) evicts it. Default 60s.
	FragmentTTL time.Duration
	// StrictArmor rejects armor characters outside [48,119]; when false
	// such characters are substituted with six zero bits. Default true.
	StrictArmor bool
	// MaxPendingEntries bounds the reassembler's pending table. Default 256.
	MaxPendingEntries int
	// Logger receives optional warnings on invalid armor characters or
	// unknown message types. A nil Logger disables warnings.
	Logger *charmlog.Logger
}

// DefaultConfig returns the spec.md §6 defaults.
func DefaultConfig() Config {
	return Config{
		FragmentTTL:       DefaultFragmentTTL,
		StrictArmor:       true,
		MaxPendingEntries: DefaultMaxPendingEntries,
	}
}

// Decoder is one synchronous, single-threaded (per spec.md §5) AIS decoder
// instance: envelope parsing, fragment reassembly, and message dispatch.
// Parse, GC and PendingCount guard the pending-fragment table with an
// internal mutex, so GC may run on another goroutine while Parse is called.
type Decoder struct {
	cfg         Config
	reassembler *Reassembler
	mu          sync.Mutex
}

// NewDecoder builds a Decoder from cfg, filling in any zero-valued field
// with its spec.md §6 default.
func NewDecoder(cfg Config) *Decoder {
	if cfg.FragmentTTL <= 0 {
		cfg.FragmentTTL = DefaultFragmentTTL
	}
	if cfg.MaxPendingEntries <= 0 {
		cfg.MaxPendingEntries = DefaultMaxPendingEntries
	}
	r := NewReassembler(cfg.FragmentTTL)
	r.SetMaxEntries(cfg.MaxPendingEntries)
	return &Decoder{cfg: cfg, reassembler: r}
}

// Parse implements spec.md §4.5/§4.6 end to end: envelope parse, optional
// reassembly, armor decode, and type dispatch.
func (d *Decoder) Parse(line string) Result {
	env, err := parseEnvelope(line)
	if err != nil {
		if err == ErrIgnored {
			return Result{Outcome: OutcomeIgnored, Err: err}
		}
		return Result{Outcome: OutcomeError, Err: err}
	}

	if env.total == 1 {
		msg, err := d.decodeComplete(env.payload, env.fillBits, env.channel)
		if err != nil {
			return Result{Outcome: OutcomeError, Err: err}
		}
		return Result{Outcome: OutcomeComplete, Message: msg}
	}

	d.mu.Lock()
	oc, payload, fill, err := d.reassembler.feed(env)
	d.mu.Unlock()
	if err != nil {
		return Result{Outcome: OutcomeError, Err: err}
	}
	if oc == outcomePending {
		return Result{Outcome: OutcomePending}
	}

	msg, err := d.decodeComplete(payload, fill, env.channel)
	if err != nil {
		return Result{Outcome: OutcomeError, Err: err}
	}
	return Result{Outcome: OutcomeComplete, Message: msg}
}

func (d *Decoder) decodeComplete(payload string, fillBits int, channel string) (*Message, error) {
	b, err := armorToBits(payload, fillBits, d.cfg.StrictArmor)
	if err != nil {
		d.warnf("invalid armor character in payload %q", payload)
		return nil, err
	}
	h, err := decodeHeader(b)
	if err != nil {
		return nil, err
	}
	fields, err := decodeBody(b, h)
	if err != nil {
		if de, ok := err.(*DecodeError); ok && de.Kind == KindUnknownType {
			d.warnf("unknown message type %d from MMSI %d", h.Type, h.MMSI)
		}
		return nil, err
	}
	return &Message{
		Type:       h.Type,
		Repeat:     h.Repeat,
		MMSI:       h.MMSI,
		RawChannel: channel,
		DecodedAt:  time.Now(),
		Fields:     fields,
	}, nil
}

func (d *Decoder) warnf(format string, args ...any) {
	if d.cfg.Logger == nil {
		return
	}
	d.cfg.Logger.Warnf(format, args...)
}

// GC runs the reassembler's TTL sweep (spec.md §4.5/§6), serialized against
// Parse.
func (d *Decoder) GC(now time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.reassembler.gc(now)
}

// PendingCount reports how many fragment groups are currently buffered.
func (d *Decoder) PendingCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.reassembler.PendingCount()
}
