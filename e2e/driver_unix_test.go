//go:build e2e && unix

package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
)

// scrollback keeps the tail of the terminal output; older frames are dropped
const scrollback = 1 << 20

const (
	keyEnter  = "\r"
	keyEsc    = "\x1b"
	keyCtrlC  = "\x03"
	keyDown   = "j"
	keyNext   = "l"
	keyQuit   = "q"
	keyDrawer = "f"
	keySearch = "/"
	keySort   = "s"
	keyHelp   = "?"
	keyPager  = "P"
)

// escapes matches the CSI, OSC, charset and keypad sequences bubbletea emits
var escapes = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]|\x1b\][^\x07]*\x07|\x1b[()][A-Za-z]|\x1b[=>]|\r`)

// session runs filmlog in a pseudo terminal inside a throwaway workspace
type session struct {
	t         *testing.T
	cmd       *exec.Cmd
	term      *os.File
	workspace string
	exited    chan error

	mu  sync.Mutex
	out []byte
}

func newSession(t *testing.T) *session {
	s := &session{t: t}
	t.Cleanup(s.close)
	return s
}

// start launches filmlog with the workspace config in a 40x120 terminal
func (s *session) start(args ...string) error {
	if s.workspace != "" {
		args = append(args, "--config", s.configPath())
	}
	s.cmd = exec.Command(binPath, args...)
	s.cmd.Dir = s.workspace
	s.cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"LC_ALL=C",
		"HOME="+s.workspace,
		"XDG_CONFIG_HOME="+filepath.Join(s.workspace, ".config"),
	)
	term, err := pty.StartWithSize(s.cmd, &pty.Winsize{Rows: 40, Cols: 120})
	if err != nil {
		return err
	}
	s.term = term
	s.exited = make(chan error, 1)
	go s.capture()
	return nil
}

func (s *session) capture() {
	buf := make([]byte, 8192)
	for {
		n, err := s.term.Read(buf)
		if n > 0 {
			s.mu.Lock()
			s.out = append(s.out, buf[:n]...)
			if over := len(s.out) - scrollback; over > 0 {
				s.out = s.out[over:]
			}
			s.mu.Unlock()
		}
		if err != nil {
			s.exited <- s.cmd.Wait()
			return
		}
	}
}

// press writes raw keys to the terminal
func (s *session) press(keys ...string) {
	s.t.Helper()
	for _, k := range keys {
		if _, err := s.term.Write([]byte(k)); err != nil {
			s.t.Fatalf("writing %q: %v", k, err)
		}
	}
}

// typeText sends text one key at a time so each keystroke renders
func (s *session) typeText(text string) {
	s.t.Helper()
	for _, r := range text {
		s.press(string(r))
		time.Sleep(30 * time.Millisecond)
	}
}

// plain returns everything captured so far with escapes stripped
func (s *session) plain() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return escapes.ReplaceAllString(string(s.out), "")
}

// seeWithin polls the output until text shows up or the timeout passes
func (s *session) seeWithin(text string, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for {
		if strings.Contains(s.plain(), text) {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(25 * time.Millisecond)
	}
}

func (s *session) see(text string) bool {
	return s.seeWithin(text, 3*time.Second)
}

// ready waits for the browser's first frame
func (s *session) ready() bool {
	return s.seeWithin("Press ? for help", 5*time.Second)
}

// waitExit reports whether filmlog exited within timeout, and with what
func (s *session) waitExit(timeout time.Duration) (bool, error) {
	select {
	case err := <-s.exited:
		return true, err
	case <-time.After(timeout):
		return false, nil
	}
}

// dumpTail logs the last n bytes of plain output
func (s *session) dumpTail(n int) {
	out := s.plain()
	if len(out) > n {
		out = out[len(out)-n:]
	}
	s.t.Logf("terminal tail:\n%s", out)
}

func (s *session) close() {
	if s.term != nil {
		_ = s.term.Close()
	}
	if s.cmd != nil && s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
	}
}
