package tui

import (
	"bytes"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"nfa-ca/internal/sims/nfaca"
	"nfa-ca/internal/stats"
)

type keyBinding struct {
	key     interface{}
	name    string
	descr   string
	handler func() error
}

// ConsoleUI is a terminal front end for the automaton: a colored field
// pane, configuration and census panes, and key bindings that adjust the
// knobs while the simulation runs.
type ConsoleUI struct {
	a   *nfaca.Automaton
	g   *gocui.Gui
	k   []keyBinding
	rec *stats.Recorder

	mu       sync.Mutex
	running  bool
	stop     chan struct{}
	interval time.Duration
	seed     int64

	fillers [nfaca.NumStates]string
}

// New constructs a terminal UI bound to the provided automaton.
func New(a *nfaca.Automaton, seed int64, interval time.Duration) *ConsoleUI {
	if interval <= 0 {
		interval = 150 * time.Millisecond
	}
	t := &ConsoleUI{
		a:        a,
		rec:      stats.NewRecorder(),
		interval: interval,
		seed:     seed,
	}
	t.fillers = [nfaca.NumStates]string{
		nfaca.StateAlive:   aurora.Green("█").String(),
		nfaca.StateDying:   aurora.Red("▓").String(),
		nfaca.StateStable:  aurora.Magenta("▒").String(),
		nfaca.StateChaotic: "░",
	}

	var err error
	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}

	t.k = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Quit", t.cmdQuit},
		{'n', "N", "Step", t.cmdStep},
		{'r', "R", "Run", t.cmdRun},
		{'s', "S", "Stop", t.cmdStop},
		{'w', "W", "Reseed", t.cmdReseed},
		{'b', "B/g", "Branch prob -/+", t.adjustFloat("branch_prob", -0.05)},
		{'g', "", "", t.adjustFloat("branch_prob", 0.05)},
		{'c', "C/v", "Chaos bias -/+", t.adjustFloat("chaos_bias", -0.05)},
		{'v', "", "", t.adjustFloat("chaos_bias", 0.05)},
		{'d', "D", "Toggle chaotic", t.cmdToggleChaotic},
	}
	t.g.SetManagerFunc(t.layout)
	t.initKeyBindings()
	return t
}

func (t *ConsoleUI) initKeyBindings() {
	for _, kb := range t.k {
		h := kb.handler
		if err := t.g.SetKeybinding("", kb.key, gocui.ModNone, func(*gocui.Gui, *gocui.View) error { return h() }); err != nil {
			log.Panicln(err)
		}
	}
}

// Start runs the UI main loop until quit.
func (t *ConsoleUI) Start() {
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
	t.g.Close()
}

// step samples the census and advances one generation.
func (t *ConsoleUI) step() {
	t.mu.Lock()
	t.rec.Record(stats.TakeCensus(t.a))
	t.a.Step()
	t.mu.Unlock()
	t.refresh()
}

func (t *ConsoleUI) refresh() {
	t.renderField()
	t.renderConfiguration()
	t.renderStatus()
}

func (t *ConsoleUI) renderField() {
	// Snapshot the grid under the lock; the queued closure runs later on
	// the UI thread and must not race a concurrent step.
	t.mu.Lock()
	size := t.a.Size()
	field := make([]uint8, len(t.a.Cells()))
	copy(field, t.a.Cells())
	t.mu.Unlock()

	t.g.Update(func(g *gocui.Gui) error {
		v, err := g.View("field")
		if err != nil {
			return err
		}
		v.Clear()

		maxW, maxH := v.Size()
		var b bytes.Buffer
		for y := 0; y < size.H && y < maxH; y++ {
			if y != 0 {
				b.WriteByte('\n')
			}
			for x := 0; x < size.W && x < maxW; x++ {
				b.WriteString(t.fillers[nfaca.State(field[y*size.W+x])])
			}
		}
		if size.W > maxW || size.H > maxH {
			b.WriteByte('\n')
			b.WriteString(aurora.Red("The grid is larger than the viewing area").String())
		}
		_, _ = fmt.Fprint(v, b.String())
		return nil
	})
}

func (t *ConsoleUI) renderConfiguration() {
	t.mu.Lock()
	cfg := t.a.Config()
	t.mu.Unlock()

	t.g.Update(func(g *gocui.Gui) error {
		v, err := g.View("configuration")
		if err != nil {
			return nil
		}
		v.Clear()
		_, _ = fmt.Fprintln(v, t.prop("Dimension", "%v x %v", cfg.Width, cfg.Height))
		_, _ = fmt.Fprintln(v, t.prop("Interval", "%v", t.interval))
		_, _ = fmt.Fprintln(v, t.prop("Initial alive", "%.2f", cfg.Params.InitialAlive))
		_, _ = fmt.Fprintln(v, t.prop("Branch prob", "%.2f", cfg.Params.BranchProb))
		_, _ = fmt.Fprintln(v, t.prop("Chaos bias", "%.2f", cfg.Params.ChaosBias))
		_, _ = fmt.Fprintln(v, t.prop("Chaotic off", "%v", cfg.Params.DisableChaotic))
		return nil
	})
}

func (t *ConsoleUI) renderStatus() {
	t.mu.Lock()
	counts := t.a.Counts()
	gen := t.a.Generation()
	prev := t.rec.Last()
	hasPrev := t.rec.Len() > 0
	running := t.running
	t.mu.Unlock()

	t.g.Update(func(g *gocui.Gui) error {
		v, err := g.View("status")
		if err != nil {
			return nil
		}
		v.Clear()
		_, _ = fmt.Fprintln(v, t.prop("Generation", "%v", gen))
		for s := nfaca.State(0); s < nfaca.NumStates; s++ {
			if hasPrev {
				_, _ = fmt.Fprintln(v, t.prop(s.String(), "%s %v (%+d)", t.fillers[s], counts[s], counts[s]-prev[s]))
			} else {
				_, _ = fmt.Fprintln(v, t.prop(s.String(), "%s %v", t.fillers[s], counts[s]))
			}
		}
		mode := aurora.Blue("paused").String()
		if running {
			mode = aurora.Cyan("running").String()
		}
		_, _ = fmt.Fprintln(v, t.prop("Mode", "%v", mode))
		return nil
	})
}

func (t *ConsoleUI) prop(name, format string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Green(name).String()+": "+format, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	leftColumnWidth := 26

	if v, err := g.SetView("configuration", 0, 0, leftColumnWidth, (maxY-3)/2); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Configuration"
		v.Frame = true
		t.renderConfiguration()
	}

	if v, err := g.SetView("status", 0, (maxY-3)/2+1, leftColumnWidth, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Census"
		v.Frame = true
		t.renderStatus()
	}

	if v, err := g.SetView("field", leftColumnWidth+1, 0, maxX-1, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Automaton"
		v.Frame = true
	}
	t.renderField()

	if v, err := g.SetView("help", -1, maxY-3, maxX, maxY-1); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		var b bytes.Buffer
		b.WriteString("KEYS: ")
		first := true
		for _, k := range t.k {
			if k.name == "" {
				continue
			}
			if !first {
				b.WriteString(", ")
			}
			first = false
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}

	return nil
}

func (t *ConsoleUI) isRunning() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

func (t *ConsoleUI) cmdQuit() error {
	t.stopRunLoop()
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdStep() error {
	if !t.isRunning() {
		t.step()
	}
	return nil
}

func (t *ConsoleUI) cmdRun() error {
	t.mu.Lock()
	if t.running {
		t.mu.Unlock()
		return nil
	}
	t.running = true
	t.stop = make(chan struct{})
	stop := t.stop
	t.mu.Unlock()

	go func() {
		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				t.step()
			}
		}
	}()
	t.renderStatus()
	return nil
}

func (t *ConsoleUI) cmdStop() error {
	t.stopRunLoop()
	t.renderStatus()
	return nil
}

func (t *ConsoleUI) stopRunLoop() {
	t.mu.Lock()
	if t.running {
		close(t.stop)
		t.running = false
	}
	t.mu.Unlock()
}

func (t *ConsoleUI) cmdReseed() error {
	t.mu.Lock()
	t.seed = time.Now().UnixNano()
	t.a.Reset(t.seed)
	t.rec.Reset()
	t.mu.Unlock()
	t.refresh()
	return nil
}

func (t *ConsoleUI) cmdToggleChaotic() error {
	t.mu.Lock()
	disabled := t.a.Config().Params.DisableChaotic
	value := 1
	if disabled {
		value = 0
	}
	t.a.SetIntParameter("disable_chaotic", value)
	t.mu.Unlock()
	t.renderConfiguration()
	return nil
}

func (t *ConsoleUI) adjustFloat(key string, delta float64) func() error {
	return func() error {
		t.mu.Lock()
		cfg := t.a.Config()
		var current float64
		switch key {
		case "branch_prob":
			current = cfg.Params.BranchProb
		case "chaos_bias":
			current = cfg.Params.ChaosBias
		}
		t.a.SetFloatParameter(key, current+delta)
		t.mu.Unlock()
		t.renderConfiguration()
		return nil
	}
}
