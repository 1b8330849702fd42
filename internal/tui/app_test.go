package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/asnmemo/internal/catalog"
	"github.com/example/asnmemo/internal/progress"
	"github.com/example/asnmemo/internal/scheduler"
	"github.com/example/asnmemo/internal/spaced_repetition"
	"github.com/example/asnmemo/pkg/models"
)

func newTestApp(t *testing.T) (App, *progress.Store) {
	t.Helper()
	cat, err := catalog.New([]models.Network{
		{ASN: 3356, Name: "Lumen Technologies", Tier: models.TierOne},
		{ASN: 13335, Name: "Cloudflare", Tier: models.TierCDN},
	})
	require.NoError(t, err)

	store := progress.NewStore(t.TempDir())
	_, err = store.Load()
	require.NoError(t, err)

	sched := scheduler.New(cat, store, nil)
	return NewApp(DefaultConfig(), sched, store, nil, cat), store
}

func press(t *testing.T, m tea.Model, keys ...tea.KeyMsg) App {
	t.Helper()
	for _, k := range keys {
		m, _ = m.Update(k)
	}
	app, ok := m.(App)
	require.True(t, ok)
	return app
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestStudyFlowGradesAndPersists(t *testing.T) {
	app, store := newTestApp(t)

	app = press(t, app, runeKey('s'))
	assert.Equal(t, screenStudy, app.screen)
	require.Len(t, app.study.queue, 2)

	// Rating before reveal is ignored
	app = press(t, app, runeKey('3'))
	require.Len(t, app.study.queue, 2)

	app = press(t, app, tea.KeyMsg{Type: tea.KeySpace})
	assert.True(t, app.study.revealed)

	app = press(t, app, runeKey('3'))
	assert.Equal(t, 1, app.study.done)
	assert.False(t, app.study.revealed)

	rec, ok := store.Records()["3356"]
	require.True(t, ok)
	assert.Equal(t, 1, rec.Repetitions)

	// Finish the second card; session complete view, enter returns to menu
	app = press(t, app, tea.KeyMsg{Type: tea.KeySpace}, runeKey('4'))
	assert.Contains(t, app.study.view(), "Session Complete")
	app = press(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, screenMenu, app.screen)
}

func TestMenuNavigation(t *testing.T) {
	app, _ := newTestApp(t)

	app = press(t, app, runeKey('b'))
	assert.Equal(t, screenBrowse, app.screen)
	app = press(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenMenu, app.screen)

	app = press(t, app, runeKey('t'))
	assert.Equal(t, screenStats, app.screen)
	assert.Contains(t, app.stats.view(), "Learning Statistics")
	app = press(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenMenu, app.screen)
}

func TestRefreshDueMsgRecomputesMenuCount(t *testing.T) {
	app, _ := newTestApp(t)
	assert.Equal(t, 2, app.menu.dueCount)

	// Grade one card behind the menu's back, then ask for a refresh
	_, err := app.sched.Grade("3356", spaced_repetition.RatingGood, time.Now())
	require.NoError(t, err)

	m, _ := app.Update(RefreshDueMsg{})
	app, ok := m.(App)
	require.True(t, ok)
	assert.Equal(t, 1, app.menu.dueCount)
	assert.Contains(t, app.menu.view(), "Cards due: 1")
}

func TestResetFlowClearsProgress(t *testing.T) {
	app, store := newTestApp(t)

	// Study one card so there is progress to reset
	app = press(t, app, runeKey('s'), tea.KeyMsg{Type: tea.KeySpace}, runeKey('4'))
	app = press(t, app, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotEmpty(t, store.Records())

	app = press(t, app, runeKey('r'))
	assert.Equal(t, screenReset, app.screen)

	// Cancel first, then confirm
	app = press(t, app, runeKey('n'))
	assert.Equal(t, screenMenu, app.screen)
	require.NotEmpty(t, store.Records())

	app = press(t, app, runeKey('r'), runeKey('y'))
	assert.Equal(t, screenMenu, app.screen)
	assert.Empty(t, store.Records())
}
