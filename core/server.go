// Package core wires the shell to its front ends.
package core

import (
	"context"
	"crypto/subtle"
	"fmt"
	"io"
	"log"
	"os"
	"sync/atomic"

	"github.com/abiosoft/readline"
	"github.com/gliderlabs/ssh"
	"github.com/juju/ratelimit"
	"github.com/spf13/afero"
	gossh "golang.org/x/crypto/ssh"

	"github.com/tablesh/tablesh/core/config"
	"github.com/tablesh/tablesh/core/logger"
	"github.com/tablesh/tablesh/core/shell"
)

// Server exposes the structured shell over SSH.
type Server struct {
	configuration *config.Configuration
	logger        *logger.Logger
	sshServer     *ssh.Server
}

// NewServer builds the SSH server from configuration. The host key must
// already exist (see config.Initialize).
func NewServer(configuration *config.Configuration, l *logger.Logger) (*Server, error) {
	keyPem, err := configuration.PrivateKeyPem()
	if err != nil {
		return nil, fmt.Errorf("reading host key: %w", err)
	}
	signer, err := gossh.ParsePrivateKey(keyPem)
	if err != nil {
		return nil, fmt.Errorf("parsing host key: %w", err)
	}

	server := &Server{
		configuration: configuration,
		logger:        l,
	}

	server.sshServer = &ssh.Server{
		Addr: fmt.Sprintf(":%d", configuration.SSHPort),
		Handler: func(s ssh.Session) {
			server.handleSession(s)
		},
		PasswordHandler: func(ctx ssh.Context, password string) bool {
			ok := server.checkPassword(ctx.User(), password)
			server.logger.NewSession().RecordLoginAttempt(ctx.User(), ctx.RemoteAddr().String(), ok)
			return ok
		},
	}
	server.sshServer.AddHostKey(signer)
	if configuration.SSHBanner != "" {
		server.sshServer.Version = configuration.SSHBanner
	}

	return server, nil
}

func (s *Server) checkPassword(username, password string) bool {
	if s.configuration.AllowAnyPassword {
		return true
	}

	ok := false
	for _, candidate := range s.configuration.GetPasswords(username) {
		// Check every candidate to keep timing independent of match position.
		if subtle.ConstantTimeCompare([]byte(password), []byte(candidate)) == 1 {
			ok = true
		}
	}
	return ok
}

// termWidth tracks the terminal width of a session. The SSH window-change
// goroutine writes it while the shell's readline loop reads it, so access
// goes through sync/atomic.
type termWidth struct {
	v int64
}

func (w *termWidth) set(width int) {
	atomic.StoreInt64(&w.v, int64(width))
}

func (w *termWidth) get() int {
	return int(atomic.LoadInt64(&w.v))
}

func (s *Server) handleSession(sess ssh.Session) {
	sessionLogger := s.logger.NewSession()
	sessionLogger.RecordSessionStart(sess.User(), sess.RemoteAddr().String())
	defer sessionLogger.RecordSessionEnd()

	var out io.Writer = sess
	if rate := s.configuration.SessionBytesPerSecond; rate > 0 {
		bucket := ratelimit.NewBucketWithRate(float64(rate), rate)
		out = ratelimit.Writer(sess, bucket)
	}

	ptyInfo, winch, isPTY := sess.Pty()
	width := &termWidth{}
	width.set(ptyInfo.Window.Width)
	go func() {
		for window := range winch {
			width.set(window.Width)
		}
	}()

	fs := afero.NewOsFs()
	home := "/home/" + sess.User()
	if info, err := fs.Stat(home); err != nil || !info.IsDir() {
		home = "/"
	}

	sh, err := shell.New(shell.Options{
		Config: s.configuration,
		FS:     fs,
		Dir:    home,
		User:   sess.User(),
		Stdin:  io.NopCloser(sess),
		Stdout: out,
		Stderr: out,
		IsPTY:  isPTY,
		Width:  width.get,
		Log:    sessionLogger,
	})
	if err != nil {
		sess.Exit(1)
		return
	}
	defer sh.Close()

	sh.Run()
	sess.Exit(0)
}

// ListenAndServe starts accepting connections.
func (s *Server) ListenAndServe() error {
	log.Printf("starting SSH server on %s", s.sshServer.Addr)
	return s.sshServer.ListenAndServe()
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.sshServer.Shutdown(ctx)
}

// RunLocal starts an interactive shell on the current terminal.
func RunLocal(configuration *config.Configuration, l *logger.Logger) error {
	sessionLogger := l.NewSession()

	username := os.Getenv("USER")
	if username == "" {
		username = "user"
	}
	dir, err := os.Getwd()
	if err != nil {
		dir = "/"
	}

	sessionLogger.RecordSessionStart(username, "")
	defer sessionLogger.RecordSessionEnd()

	sh, err := shell.New(shell.Options{
		Config: configuration,
		FS:     afero.NewOsFs(),
		Dir:    dir,
		User:   username,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		IsPTY:  readline.DefaultIsTerminal(),
		Log:    sessionLogger,
	})
	if err != nil {
		return err
	}
	defer sh.Close()

	sh.Run()
	return nil
}
