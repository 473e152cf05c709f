// Package logger is a standardized event logging framework for the shell.
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"time"
)

// Entry is one logged event. Exactly one of the event fields is set.
type Entry struct {
	TimestampMicros int64  `json:"timestamp_micros"`
	SessionID       string `json:"session_id"`

	SessionStart      *SessionStart      `json:"session_start,omitempty"`
	SessionEnd        *SessionEnd        `json:"session_end,omitempty"`
	LoginAttempt      *LoginAttempt      `json:"login_attempt,omitempty"`
	PipelineRun       *PipelineRun       `json:"pipeline_run,omitempty"`
	InvalidInvocation *InvalidInvocation `json:"invalid_invocation,omitempty"`
}

// SessionStart marks the beginning of an interactive session.
type SessionStart struct {
	Username   string `json:"username"`
	RemoteAddr string `json:"remote_addr,omitempty"`
}

// SessionEnd marks the end of an interactive session.
type SessionEnd struct{}

// LoginAttempt records one authentication attempt on the SSH front end.
type LoginAttempt struct {
	Username   string `json:"username"`
	RemoteAddr string `json:"remote_addr"`
	Success    bool   `json:"success"`
}

// PipelineRun records one executed pipeline, successful or not.
type PipelineRun struct {
	Line   string   `json:"line"`
	Stages []string `json:"stages"`
	Error  string   `json:"error,omitempty"`
}

// InvalidInvocation records a command line the shell could not act on.
type InvalidInvocation struct {
	Reason string `json:"reason"`
}

// Recorder stores entries in an external datastore.
type Recorder func(e *Entry) error

// Logger captures shell interaction events.
type Logger struct {
	Record Recorder
}

// NewJSONLinesLogger creates a Logger that exports entries in newline
// delimited JSON object format.
func NewJSONLinesLogger(w io.Writer) *Logger {
	return &Logger{
		Record: func(e *Entry) error {
			line, err := json.Marshal(e)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, string(line))
			return err
		},
	}
}

// NewNopLogger creates a Logger that discards everything.
func NewNopLogger() *Logger {
	return &Logger{Record: func(*Entry) error { return nil }}
}

// NewSession creates a logger with an attached random session ID.
func (l *Logger) NewSession() *SessionLogger {
	return &SessionLogger{logger: l, sessionID: fmt.Sprintf("%d", rand.Uint64())}
}

// SessionLogger stamps every entry with its session ID.
type SessionLogger struct {
	logger    *Logger
	sessionID string
}

// SessionID returns the attached session ID.
func (s *SessionLogger) SessionID() string {
	return s.sessionID
}

func (s *SessionLogger) record(e *Entry) error {
	e.TimestampMicros = time.Now().UnixNano() / int64(time.Microsecond/time.Nanosecond)
	e.SessionID = s.sessionID
	return s.logger.Record(e)
}

// RecordSessionStart logs the start of a session.
func (s *SessionLogger) RecordSessionStart(username, remoteAddr string) error {
	return s.record(&Entry{SessionStart: &SessionStart{Username: username, RemoteAddr: remoteAddr}})
}

// RecordSessionEnd logs the end of a session.
func (s *SessionLogger) RecordSessionEnd() error {
	return s.record(&Entry{SessionEnd: &SessionEnd{}})
}

// RecordLoginAttempt logs one authentication attempt.
func (s *SessionLogger) RecordLoginAttempt(username, remoteAddr string, success bool) error {
	return s.record(&Entry{LoginAttempt: &LoginAttempt{
		Username:   username,
		RemoteAddr: remoteAddr,
		Success:    success,
	}})
}

// RecordPipelineRun logs one executed pipeline.
func (s *SessionLogger) RecordPipelineRun(line string, stages []string, runErr error) error {
	e := &PipelineRun{Line: line, Stages: stages}
	if runErr != nil {
		e.Error = runErr.Error()
	}
	return s.record(&Entry{PipelineRun: e})
}

// RecordInvalidInvocation logs a line the shell rejected.
func (s *SessionLogger) RecordInvalidInvocation(reason string) error {
	return s.record(&Entry{InvalidInvocation: &InvalidInvocation{Reason: reason}})
}
