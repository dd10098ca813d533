package mention

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/mentionbox/placement"
)

type Phase uint8

const (
	Closed Phase = iota
	Tracking
	Open
)

func (p Phase) String() string {
	switch p {
	case Tracking:
		return "tracking"
	case Open:
		return "open"
	default:
		return "closed"
	}
}

// State is a read-only snapshot of the popup.
type State struct {
	Phase          Phase
	SearchKey      string
	Candidates     []Candidate
	Highlighted    int
	Offset         placement.Offset
	OffsetResolved bool
	Loading        bool
}

type PopupConfig struct {
	Provider  Provider
	Timing    Timing
	Placement placement.Policy
	Size      placement.Size
	Style     *Style // nil means DefaultStyle()
	Logger    *slog.Logger
}

var lastPopupID int64

func nextPopupID() int64 { return atomic.AddInt64(&lastPopupID, 1) }

// Popup is the mention candidate popup.
type Popup struct {
	id     int64
	cfg    PopupConfig
	style  Style
	log    *slog.Logger
	spin   spinner.Model
	state  State
	armed  bool
	stale  bool // offset belongs to a previous session
	// dismissed is set between a pick and the delayed close. The popup is
	// still drawn but takes no keys and has no selection.
	dismissed bool
	geom   placement.Input
	cancel context.CancelFunc

	fetchSeq uint64
	placeSeq uint64
	closeSeq uint64
}

type fetchTickMsg struct {
	id  int64
	seq uint64
	key string
}

type candidatesMsg struct {
	id    int64
	seq   uint64
	key   string
	items []Candidate
	err   error
}

type placeTickMsg struct {
	id  int64
	seq uint64
}

type closeGraceMsg struct {
	id  int64
	seq uint64
}

type selectCloseMsg struct {
	id  int64
	seq uint64
}

func NewPopup(cfg PopupConfig) Popup {
	cfg.Timing = cfg.Timing.Normalize()
	if cfg.Placement == (placement.Policy{}) {
		cfg.Placement = placement.CellPolicy()
	}
	if cfg.Size.Width < 3 || cfg.Size.Height < 3 {
		cfg.Size = placement.Size{Width: 28, Height: 8}
	}
	st := DefaultStyle()
	if cfg.Style != nil {
		st = *cfg.Style
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	return Popup{
		id:    nextPopupID(),
		cfg:   cfg,
		style: st,
		log:   log.With("component", "mention.popup"),
		spin:  spinner.New(spinner.WithSpinner(spinner.MiniDot), spinner.WithStyle(st.Spinner)),
	}
}

func (p Popup) State() State {
	s := p.state
	s.Candidates = append([]Candidate(nil), p.state.Candidates...)
	return s
}

// Active reports whether keys should be routed to the popup.
func (p Popup) Active() bool { return p.state.Phase != Closed && !p.dismissed }

// Visible reports whether the popup should be drawn.
func (p Popup) Visible() bool { return p.state.Phase != Closed && p.state.OffsetResolved }

// Armed reports whether an "@" was typed since the last close.
func (p Popup) Armed() bool { return p.armed }

func (p Popup) Size() placement.Size { return p.cfg.Size }

// Arm starts evaluating triggers on subsequent key releases.
func (p *Popup) Arm() { p.armed = true }

// Track moves the popup into (or keeps it in) a tracking session for key.
// geom is the latest caret geometry; the debounced placement uses whichever
// geometry was passed last.
func (p *Popup) Track(key string, geom placement.Input) tea.Cmd {
	var cmds []tea.Cmd
	fresh := p.state.Phase == Closed || p.dismissed
	if fresh {
		p.dismissed = false
		p.state.Phase = Tracking
		p.state.Candidates = nil
		p.state.Highlighted = 0
		p.stale = p.state.OffsetResolved
		p.closeSeq++
	}
	p.geom = geom
	p.armed = true

	if fresh || key != p.state.SearchKey {
		p.state.SearchKey = key
		p.state.Loading = true
		p.fetchSeq++
		cmds = append(cmds, p.tick(p.cfg.Timing.FetchDebounce, fetchTickMsg{id: p.id, seq: p.fetchSeq, key: key}))
	}
	if !p.state.OffsetResolved || p.stale {
		p.placeSeq++
		cmds = append(cmds, p.tick(p.cfg.Timing.PlaceDebounce, placeTickMsg{id: p.id, seq: p.placeSeq}))
	}
	return tea.Batch(cmds...)
}

// Next and Prev move the highlight, clamped to the candidate list.
func (p *Popup) Next() {
	if p.state.Highlighted < len(p.state.Candidates)-1 {
		p.state.Highlighted++
	}
}

func (p *Popup) Prev() {
	if p.state.Highlighted > 0 {
		p.state.Highlighted--
	}
}

// Highlight moves the highlight to candidate i, if it exists.
func (p *Popup) Highlight(i int) {
	if i >= 0 && i < len(p.state.Candidates) {
		p.state.Highlighted = i
	}
}

func (p Popup) Selected() (Candidate, bool) {
	if p.state.Phase != Open || p.dismissed || len(p.state.Candidates) == 0 {
		return Candidate{}, false
	}
	i := p.state.Highlighted
	if i < 0 || i >= len(p.state.Candidates) {
		return Candidate{}, false
	}
	return p.state.Candidates[i], true
}

// Close closes the popup now. The offset is released after the close grace
// period unless a new session starts first.
func (p *Popup) Close() tea.Cmd {
	if p.state.Phase == Closed && !p.armed {
		return nil
	}
	p.armed = false
	p.dismissed = false
	p.state.Phase = Closed
	p.state.SearchKey = ""
	p.state.Candidates = nil
	p.state.Highlighted = 0
	p.state.Loading = false
	p.abortFetch()
	p.placeSeq++
	p.closeSeq++
	return p.tick(p.cfg.Timing.CloseGrace, closeGraceMsg{id: p.id, seq: p.closeSeq})
}

// Dismiss stops tracking and closes the popup after SelectCloseDelay. Until
// then the popup stays on screen but no longer routes keys, and an "@" typed
// in the meantime starts a new session.
func (p *Popup) Dismiss() tea.Cmd {
	p.armed = false
	p.dismissed = true
	p.abortFetch()
	p.closeSeq++
	return p.tick(p.cfg.Timing.SelectCloseDelay, selectCloseMsg{id: p.id, seq: p.closeSeq})
}

func (p *Popup) abortFetch() {
	p.fetchSeq++
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

func (p Popup) Update(msg tea.Msg) (Popup, tea.Cmd) {
	switch msg := msg.(type) {
	case fetchTickMsg:
		if msg.id != p.id || msg.seq != p.fetchSeq || p.state.Phase == Closed {
			return p, nil
		}
		return p, tea.Batch(p.fetch(msg.seq, msg.key), p.spin.Tick)

	case candidatesMsg:
		if msg.id != p.id {
			return p, nil
		}
		if msg.seq != p.fetchSeq || p.state.Phase == Closed {
			p.log.Debug("stale candidates dropped", "key", msg.key, "seq", msg.seq)
			return p, nil
		}
		p.cancel = nil
		p.state.Phase = Open
		p.state.Loading = false
		p.state.Highlighted = 0
		if msg.err != nil {
			p.state.Candidates = nil
			p.log.Warn("member query failed", "key", msg.key, "err", msg.err)
			n := Notice{Level: slog.LevelWarn, Message: "could not load members", Err: msg.err}
			return p, func() tea.Msg { return NoticeMsg{Notice: n} }
		}
		p.state.Candidates = msg.items
		return p, nil

	case placeTickMsg:
		if msg.id != p.id || msg.seq != p.placeSeq || p.state.Phase == Closed {
			return p, nil
		}
		if p.state.OffsetResolved && !p.stale {
			return p, nil
		}
		in := p.geom
		in.Overlay = p.cfg.Size
		p.state.Offset = placement.ComputeOffset(in, p.cfg.Placement)
		p.state.OffsetResolved = true
		p.stale = false
		return p, nil

	case closeGraceMsg:
		if msg.id != p.id || msg.seq != p.closeSeq || p.state.Phase != Closed {
			return p, nil
		}
		p.state.Offset = placement.Offset{}
		p.state.OffsetResolved = false
		p.stale = false
		return p, nil

	case selectCloseMsg:
		if msg.id != p.id || msg.seq != p.closeSeq {
			return p, nil
		}
		return p, p.Close()

	case spinner.TickMsg:
		if !p.state.Loading {
			return p, nil
		}
		var cmd tea.Cmd
		p.spin, cmd = p.spin.Update(msg)
		return p, cmd
	}
	return p, nil
}

func (p *Popup) fetch(seq uint64, key string) tea.Cmd {
	if p.cancel != nil {
		p.cancel()
	}
	prov := p.cfg.Provider
	if prov == nil {
		id := p.id
		return func() tea.Msg { return candidatesMsg{id: id, seq: seq, key: key} }
	}
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	id := p.id
	return func() tea.Msg {
		items, err := prov.QueryMembers(ctx, Query{SearchKey: key})
		if ctx.Err() != nil {
			// Cancelled on close; the seq check drops it anyway.
			err = ctx.Err()
		}
		return candidatesMsg{id: id, seq: seq, key: key, items: items, err: err}
	}
}

func (p Popup) tick(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}
