// mentionbox-demo hosts a mention input in the terminal: type "@" to look up
// members, Enter to send, alt+enter or ctrl+j for a new line. Sent messages
// are listed above the input.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/iw2rmb/mentionbox"
	"github.com/iw2rmb/mentionbox/config"
	"github.com/iw2rmb/mentionbox/editor"
	"github.com/iw2rmb/mentionbox/mention"
	"github.com/iw2rmb/mentionbox/paste"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var configPath, membersPath, logPath string
	var latency time.Duration
	var showVersion bool

	flags := pflag.NewFlagSet("mentionbox-demo", pflag.ContinueOnError)
	flags.StringVarP(&configPath, "config", "c", "", "YAML or JSONC config file")
	flags.StringVar(&membersPath, "members", "", "YAML member list (default: built-in sample)")
	flags.StringVar(&logPath, "log-file", "", "write logs to this file (the terminal is owned by the UI)")
	flags.DurationVar(&latency, "latency", 250*time.Millisecond, "simulated member lookup latency")
	flags.BoolVar(&showVersion, "version", false, "print the version and exit")
	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}
	if showVersion {
		fmt.Println(mentionbox.VersionTag())
		return nil
	}

	cfg := editor.DefaultConfig()
	cfg.ShowCancel = true
	cfg.AutoFocus = true
	cfg.ExtraCheckContent = "Also send to channel"
	cfg.Clipboard = paste.SystemClipboard{}
	cfg.DetachedPopup = true

	level := slog.LevelInfo
	if configPath != "" {
		f, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if cfg, err = f.Apply(cfg); err != nil {
			return fmt.Errorf("%s: %w", configPath, err)
		}
		if level, err = f.LogLevel(); err != nil {
			return fmt.Errorf("%s: %w", configPath, err)
		}
		if logPath == "" {
			logPath = f.Log.Path
		}
	}

	logger, closeLog, err := openLogger(logPath, level)
	if err != nil {
		return err
	}
	defer closeLog()
	cfg.Logger = logger

	members := sampleMembers
	if membersPath != "" {
		if members, err = loadMembers(membersPath); err != nil {
			return err
		}
	}
	cfg.Provider = slowProvider{next: mention.NewDirectory(members, 0), delay: latency}

	logger.Info("starting", "version", mentionbox.Version(), "members", len(members))
	p := tea.NewProgram(newModel(cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

func openLogger(path string, level slog.Level) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { _ = f.Close() }, nil
}

// slowProvider delays lookups so the loading state is visible.
type slowProvider struct {
	next  mention.Provider
	delay time.Duration
}

func (p slowProvider) QueryMembers(ctx context.Context, q mention.Query) ([]mention.Candidate, error) {
	if p.delay > 0 {
		t := time.NewTimer(p.delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-t.C:
		}
	}
	return p.next.QueryMembers(ctx, q)
}

const historyRows = 6

type model struct {
	editor editor.Model
	sent   []string
	width  int
	height int
}

func newModel(cfg editor.Config) model {
	return model{editor: editor.New(cfg)}
}

func (m model) Init() tea.Cmd { return m.editor.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.editor = m.editor.SetSize(msg.Width, max(msg.Height-historyRows-1, 3)).SetPosition(0, historyRows+1)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if !m.editor.Focused() && msg.String() == "i" {
			m.editor = m.editor.Focus()
			return m, nil
		}
	case editor.SubmitMsg:
		m.sent = append(m.sent, msg.Value)
		m.editor = m.editor.SetValue("").Focus()
		return m, nil
	case editor.CancelMsg:
		m.editor = m.editor.SetValue("")
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string {
	var b strings.Builder
	start := max(len(m.sent)-historyRows, 0)
	for _, s := range m.sent[start:] {
		b.WriteString(oneLine(s, m.width))
		b.WriteByte('\n')
	}
	for i := len(m.sent) - start; i < historyRows; i++ {
		b.WriteByte('\n')
	}
	status := "enter: send · alt+enter: new line · @: mention · esc: clear · ctrl+c: quit"
	if !m.editor.Focused() {
		status = "press i to edit · ctrl+c: quit"
	}
	b.WriteString(status)
	b.WriteByte('\n')
	b.WriteString(m.editor.View())
	return m.editor.Overlay(b.String())
}

func oneLine(s string, width int) string {
	s = strings.ReplaceAll(s, "\n", " ⏎ ")
	if width > 1 && len([]rune(s)) > width {
		s = string([]rune(s)[:width-1]) + "…"
	}
	return s
}
