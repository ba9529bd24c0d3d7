package app

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/stepviz/internal/clock"
	"github.com/llehouerou/stepviz/internal/config"
	"github.com/llehouerou/stepviz/internal/i18n"
	"github.com/llehouerou/stepviz/internal/keymap"
	"github.com/llehouerou/stepviz/internal/lesson"
	"github.com/llehouerou/stepviz/internal/playback"
	"github.com/llehouerou/stepviz/internal/ui/styles"
)

type screen int

const (
	screenInput screen = iota
	screenPlayer
)

// Options configures a Model.
type Options struct {
	Config *config.Config
	Kind   lesson.Kind

	// Session, when set, opens the player on it instead of the input form.
	Session  *lesson.Session
	Autoplay bool

	Scheduler clock.Scheduler // default clock.Real()
	Rand      *rand.Rand      // default seeded from the time
	Logger    *slog.Logger    // default slog.Default()
}

// Model is the bubbletea model of the visualizer.
type Model struct {
	cfg     *config.Config
	log     *slog.Logger
	rng     *rand.Rand
	printer *i18n.Printer

	screen screen
	form   form

	session    *lesson.Session
	controller *playback.Controller
	sub        *playback.Subscription

	inputKeys  *keymap.Resolver
	playerKeys *keymap.Resolver

	query    textinput.Model
	querying bool
	queryOut string
	queryBad bool

	showHelp bool
	status   string

	width, height int
}

// New creates the model and its playback controller.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = &config.Config{}
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	rng := opts.Rand
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	kind := opts.Kind
	if kind == "" {
		kind = lesson.KindPrefix
	}

	c := playback.New(playback.Options{
		Interval:  cfg.GetInterval(),
		Scheduler: opts.Scheduler,
		Logger:    log,
	})

	q := textinput.New()
	q.Prompt = "> "
	q.PromptStyle = styles.T().S().Key
	q.CharLimit = 32

	m := Model{
		cfg:        cfg,
		log:        log,
		rng:        rng,
		printer:    i18n.NewPrinter(cfg.GetLanguage()),
		screen:     screenInput,
		form:       newForm(cfg, lesson.FromConfig(cfg, kind)),
		controller: c,
		sub:        c.Subscribe(),
		inputKeys:  keymap.NewResolver(keymap.ContextInput),
		playerKeys: keymap.NewResolver(keymap.ContextPlayer),
		query:      q,
	}
	m.query.Placeholder = m.printer.Sprintf("query.prompt")

	if opts.Session != nil {
		m.form = newForm(cfg, opts.Session.Request)
		m.open(opts.Session, opts.Autoplay)
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.WatchPlayback(), textinput.Blink)
}

// Controller returns the playback controller driving the player screen.
func (m Model) Controller() *playback.Controller {
	return m.controller
}

// Close stops playback and releases the controller.
func (m Model) Close() error {
	return m.controller.Close()
}

// open loads session into the controller and switches to the player.
func (m *Model) open(s *lesson.Session, play bool) {
	m.session = s
	m.screen = screenPlayer
	m.querying = false
	m.queryOut = ""
	m.status = ""
	m.controller.Load(s.Trace)
	if play {
		m.controller.Play()
	}
	m.log.Debug("visualization opened",
		slog.String("kind", string(s.Request.Kind)),
		slog.Int("steps", s.Trace.Len()))
}
