package model

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/palemoky/four-landlord/internal/apperrors"
	gameClient "github.com/palemoky/four-landlord/internal/client"
	"github.com/palemoky/four-landlord/internal/config"
	"github.com/palemoky/four-landlord/internal/game/card"
	"github.com/palemoky/four-landlord/internal/game/clock"
	"github.com/palemoky/four-landlord/internal/game/table"
	"github.com/palemoky/four-landlord/internal/logger"
	"github.com/palemoky/four-landlord/internal/sound"
	"github.com/palemoky/four-landlord/internal/ui/common"
	"github.com/palemoky/four-landlord/internal/ui/input"
	"github.com/palemoky/four-landlord/internal/ui/view"
)

const noticeDuration = 3 * time.Second

// Options 本地牌局参数
type Options struct {
	Clock clock.Scheduler
	Sound SoundPlayer
}

// GameModel 本地牌局：人类玩家坐 table.HumanSeat，其余座位为电脑
type GameModel struct {
	table *table.Table
	state *gameClient.GameState
	inbox *inbox
	names [card.NumPlayers]string
	sound SoundPlayer

	input textinput.Model

	width  int
	height int

	cardCounterEnabled bool
	showingHelp        bool

	notice    string
	noticeSeq int

	closeOnce sync.Once
}

// NewGameModel 创建本地牌局，Init 时开局
func NewGameModel(name string, cfg config.GameConfig, opts Options) *GameModel {
	ti := textinput.New()
	ti.Placeholder = "输入点数出牌，如 33、10JQKA、JOKER"
	ti.CharLimit = 40
	ti.Width = 40
	ti.Focus()

	m := &GameModel{
		table: table.New(cfg, table.Options{Clock: opts.Clock}),
		state: gameClient.NewGameState(table.HumanSeat),
		inbox: newInbox(),
		sound: opts.Sound,
		input: ti,
	}
	for seat := range card.NumPlayers {
		m.names[seat] = fmt.Sprintf("电脑%d", seat)
	}
	m.names[table.HumanSeat] = name
	m.table.Subscribe(m.inbox.push)
	return m
}

func (m *GameModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.act(m.table.Start), m.waitForUpdates())
}

func (m *GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case updatesMsg:
		m.applyUpdates(msg)
		return m, m.waitForUpdates()

	case actionResultMsg:
		if msg.err != nil {
			return m, m.setNotice(errorText(msg.err))
		}
		return m, nil

	case hintMsg:
		if msg.err != nil {
			return m, m.setNotice(errorText(msg.err))
		}
		if msg.cards == nil {
			m.input.SetValue("PASS")
		} else {
			m.input.SetValue(common.RanksInput(msg.cards))
		}
		m.input.CursorEnd()
		return m, nil

	case clearNoticeMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *GameModel) View() string {
	return view.Render(view.Screen{
		State:       m.state,
		Names:       m.names,
		Width:       m.width,
		Height:      m.height,
		Input:       m.input.View(),
		ShowCounter: m.cardCounterEnabled,
		ShowHelp:    m.showingHelp,
		Notice:      m.notice,
	})
}

// State 玩家视角的牌局状态
func (m *GameModel) State() *gameClient.GameState { return m.state }

func (m *GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch input.ParseKey(msg, m.input.Value() == "") {
	case input.KeyQuit:
		if m.showingHelp && msg.Type == tea.KeyEsc {
			m.showingHelp = false
			return m, nil
		}
		m.Close()
		return m, tea.Quit
	case input.KeyToggleCounter:
		m.cardCounterEnabled = !m.cardCounterEnabled
		return m, nil
	case input.KeyToggleHelp:
		m.showingHelp = !m.showingHelp
		return m, nil
	}

	if msg.Type == tea.KeyEnter {
		return m, m.handleEnter()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *GameModel) handleEnter() tea.Cmd {
	text := m.input.Value()
	m.input.Reset()

	cmd, err := input.ParseCommand(m.state.Phase, m.state.MyTurn(), m.state.Hand, text)
	if err != nil {
		return m.setNotice(err.Error())
	}

	seat := m.state.Viewer
	switch cmd.Action {
	case input.ActionClaim:
		return m.act(func() error { return m.table.Claim(seat) })
	case input.ActionDecline:
		return m.act(func() error { return m.table.Decline(seat) })
	case input.ActionPlay:
		cards := cmd.Cards
		return m.act(func() error { return m.table.Play(seat, cards) })
	case input.ActionPass:
		return m.act(func() error { return m.table.Pass(seat) })
	case input.ActionHint:
		return func() tea.Msg {
			cards, err := m.table.Hint(seat)
			return hintMsg{cards: cards, err: err}
		}
	case input.ActionNewGame:
		return m.act(m.table.Start)
	}
	return nil
}

// act 牌桌操作放到 Cmd 里执行，事件经 inbox 回到 Update
func (m *GameModel) act(fn func() error) tea.Cmd {
	return func() tea.Msg {
		return actionResultMsg{err: fn()}
	}
}

func (m *GameModel) waitForUpdates() tea.Cmd {
	return func() tea.Msg {
		updates, ok := m.inbox.wait()
		if !ok {
			return nil
		}
		return updatesMsg(updates)
	}
}

func (m *GameModel) applyUpdates(updates []table.Update) {
	for _, u := range updates {
		m.state.Apply(u)
		if m.sound != nil {
			if cue := sound.CueFor(u.Event, u.State, m.state.Viewer); cue != sound.CueNone {
				m.sound.Play(cue)
			}
		}
	}
}

func (m *GameModel) setNotice(text string) tea.Cmd {
	m.noticeSeq++
	m.notice = "⚠️ " + text
	seq := m.noticeSeq
	return tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return clearNoticeMsg{seq: seq}
	})
}

// Close 关闭牌桌，停止等待事件
func (m *GameModel) Close() {
	m.closeOnce.Do(func() {
		m.table.Close()
		m.inbox.close()
		logger.L().Info("本地牌局结束", zap.String("table", m.table.ID()), zap.Int("round", m.state.Round))
	})
}

func errorText(err error) string {
	if ge, ok := apperrors.AsGameError(err); ok {
		return ge.Message
	}
	return err.Error()
}
