package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"timekeeper/internal/domain"
	"timekeeper/internal/logging"
	"timekeeper/internal/services"
)

// tickInterval is how often the dashboard reloads
const tickInterval = time.Second

type viewKind int

const (
	viewToday viewKind = iota
	viewWeek
)

type modeKind int

const (
	modeDashboard modeKind = iota
	modePickTag
	modeNewTag
)

// DisplayConfig holds presentation settings
type DisplayConfig struct {
	DateFormat string
	InMemory   bool
	TimeFormat string
}

// Model is the dashboard
type Model struct {
	blockService     *services.BlockService
	config           DisplayConfig
	err              error
	help             help.Model
	historyService   *services.HistoryService
	keys             KeyMap
	loadErr          error
	mode             modeKind
	newTagForm       *NewTagForm
	now              func() time.Time
	overview         *services.Overview
	progress         progress.Model
	refreshing       *singleflight.Group
	status           string
	stopwatchService *services.StopwatchService
	tagPicker        *TagPickerForm
	tagService       *services.TagService
	tags             []domain.Tag
	view             viewKind
	width            int
}

// NewModel creates the dashboard model
func NewModel(
	stopwatchService *services.StopwatchService,
	historyService *services.HistoryService,
	tagService *services.TagService,
	blockService *services.BlockService,
	config DisplayConfig,
) Model {
	return Model{
		blockService:     blockService,
		config:           config,
		help:             help.New(),
		historyService:   historyService,
		keys:             DefaultKeyMap(),
		now:              time.Now,
		progress:         progress.New(progress.WithDefaultGradient(), progress.WithWidth(30), progress.WithoutPercentage()),
		refreshing:       &singleflight.Group{},
		stopwatchService: stopwatchService,
		tagService:       tagService,
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.refreshCmd(), tickCmd())
}

// refreshCmd reloads the snapshot. Overlapping refreshes share one load.
func (m Model) refreshCmd() tea.Cmd {
	group := m.refreshing
	return func() tea.Msg {
		v, _, _ := group.Do("refresh", func() (any, error) {
			return m.load(context.Background()), nil
		})
		return v.(refreshedMsg)
	}
}

func (m Model) load(ctx context.Context) refreshedMsg {
	msg := refreshedMsg{loadedAt: m.now()}

	if err := m.stopwatchService.Tick(ctx); err != nil {
		msg.err = err
		return msg
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		overview, err := m.historyService.Overview(ctx, msg.loadedAt)
		if err != nil {
			return err
		}
		msg.overview = overview
		return nil
	})
	g.Go(func() error {
		tags, err := m.tagService.List(ctx)
		if err != nil {
			return err
		}
		msg.tags = tags
		return nil
	})

	if err := g.Wait(); err != nil {
		logging.Logger.Warn("Dashboard refresh failed", "error", err)
		msg.err = err
	}
	return msg
}

// actionCmd runs a store command off the UI goroutine
func actionCmd(fn func(ctx context.Context) (string, error)) tea.Cmd {
	return func() tea.Msg {
		status, err := fn(context.Background())
		return actionDoneMsg{err: err, status: status}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		return m, tea.Batch(m.refreshCmd(), tickCmd())

	case refreshedMsg:
		m.loadErr = msg.err
		if msg.err == nil {
			m.overview = msg.overview
			m.tags = msg.tags
		}
		return m, nil

	case actionDoneMsg:
		m.err = msg.err
		m.status = msg.status
		if msg.err != nil {
			m.status = ""
		}
		return m, m.refreshCmd()
	}

	switch m.mode {
	case modePickTag:
		return m.updateTagPicker(msg)
	case modeNewTag:
		return m.updateNewTagForm(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(keyMsg)
	}
	return m, nil
}

func (m Model) running() bool {
	return m.overview != nil && m.overview.Current != nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.SwitchView):
		if m.view == viewToday {
			m.view = viewWeek
		} else {
			m.view = viewToday
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		stopwatch := m.stopwatchService
		return m, actionCmd(func(ctx context.Context) (string, error) {
			block, err := stopwatch.Toggle(ctx, nil)
			if err != nil {
				return "", err
			}
			if block.Running {
				return "Started", nil
			}
			return "Stopped after " + domain.FormatDuration(block.Duration()), nil
		})

	case key.Matches(msg, m.keys.Tag):
		title := "Start with tag"
		var current *domain.Tag
		if m.running() {
			title = "Tag running block"
			current = m.overview.Current.Tag
		}
		m.tagPicker = NewTagPickerForm(title, m.tags, current)
		m.mode = modePickTag
		return m, m.tagPicker.Init()

	case key.Matches(msg, m.keys.NewTag):
		m.newTagForm = NewNewTagForm()
		m.mode = modeNewTag
		return m, m.newTagForm.Init()
	}

	return m, nil
}

func (m Model) updateTagPicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.tagPicker.Update(msg)
	if !m.tagPicker.Completed {
		return m, cmd
	}

	result := m.tagPicker.Result()
	m.mode = modeDashboard
	m.tagPicker = nil
	if result.Cancelled {
		return m, nil
	}

	tag := result.Tag
	if m.running() {
		blockService := m.blockService
		return m, actionCmd(func(ctx context.Context) (string, error) {
			block, err := blockService.RetagRunning(ctx, tag)
			if err != nil {
				return "", err
			}
			return "Tagged running block " + tagLabel(block.Tag), nil
		})
	}

	stopwatch := m.stopwatchService
	return m, actionCmd(func(ctx context.Context) (string, error) {
		if _, err := stopwatch.Start(ctx, tag); err != nil {
			return "", err
		}
		return "Started " + tagLabel(tag), nil
	})
}

func (m Model) updateNewTagForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.newTagForm.Update(msg)
	if !m.newTagForm.Completed {
		return m, cmd
	}

	result := m.newTagForm.Result()
	m.mode = modeDashboard
	m.newTagForm = nil
	if result.Cancelled {
		return m, nil
	}

	tagService := m.tagService
	return m, actionCmd(func(ctx context.Context) (string, error) {
		tag, err := tagService.Create(ctx, result.Name)
		if err != nil {
			return "", err
		}
		return "Created tag " + tagLabel(tag), nil
	})
}

func tagLabel(tag *domain.Tag) string {
	if tag == nil {
		return "(no tag)"
	}
	return "[" + tag.Name + "]"
}
