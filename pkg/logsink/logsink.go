/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/skywcs
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

// Package logsink implements the injected-logger design note (spec.md §9):
// the core never calls a global logger, it writes advisory messages
// (non-fatal per-point warnings such as an assumed FK4 epoch of
// observation) through an optional LogSink supplied by the caller.
package logsink

/*****************************************************************************************************************/

import (
	"crypto/rand"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/oklog/ulid"
)

/*****************************************************************************************************************/

// Level is the severity of an advisory message.
type Level int

/*****************************************************************************************************************/

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
)

/*****************************************************************************************************************/

func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

/*****************************************************************************************************************/

// LogSink is the sink the core writes advisory messages to. It is an
// interface, not a global, so callers can correlate, suppress, or route
// messages however they like.
type LogSink interface {
	Log(level Level, recordID string, message string)
}

/*****************************************************************************************************************/

// NoopSink discards every message. It is the zero value default used
// whenever a caller doesn't supply a LogSink.
type NoopSink struct{}

/*****************************************************************************************************************/

func (NoopSink) Log(level Level, recordID string, message string) {}

/*****************************************************************************************************************/

// StdSink wraps the standard log package, tagging each message with a
// ULID so that a batch of per-point warnings (pkg/batch) can be
// correlated back to the call that produced them.
type StdSink struct {
	logger  *log.Logger
	mu      sync.Mutex
	entropy io.Reader
}

/*****************************************************************************************************************/

// NewStdSink returns a StdSink writing to os.Stderr with a monotonic ULID
// entropy source.
func NewStdSink() *StdSink {
	return &StdSink{
		logger:  log.New(os.Stderr, "", log.LstdFlags),
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

/*****************************************************************************************************************/

func (s *StdSink) Log(level Level, recordID string, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if recordID == "" {
		recordID = s.newULID()
	}

	s.logger.Printf("[%s] %s %s", level, recordID, message)
}

/*****************************************************************************************************************/

func (s *StdSink) newULID() string {
	id, err := ulid.New(ulid.Timestamp(time.Now()), s.entropy)
	if err != nil {
		return fmt.Sprintf("ulid-error:%v", err)
	}
	return id.String()
}

/*****************************************************************************************************************/

// Advisory is a convenience wrapper: if sink is nil it's a no-op,
// otherwise it logs at WARN with a sink-generated record ID.
func Advisory(sink LogSink, message string) {
	if sink == nil {
		return
	}
	sink.Log(LevelWarn, "", message)
}

/*****************************************************************************************************************/
