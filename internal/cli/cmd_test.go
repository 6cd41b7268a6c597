package cli

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/aula/internal/config"
	"github.com/alexanderramin/aula/internal/domain"
	"github.com/alexanderramin/aula/internal/repository"
	"github.com/alexanderramin/aula/internal/service"
	"github.com/alexanderramin/aula/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

// testApp wires an App to an in-memory record store. Every command gets a
// fresh ledger over the same store, like separate process runs.
func testApp(t *testing.T, initial *domain.Record) (*App, *repository.MemoryRecordStore) {
	t.Helper()
	store := repository.NewMemoryRecordStore(initial)
	app := &App{
		Config: config.Default(),
		NewLedger: func(cfg config.Config) (service.LedgerService, io.Closer, error) {
			return service.NewLedgerService(store, service.LedgerOptions{
				CrossCategoryConflicts: cfg.CrossCategoryConflicts,
				Clock:                  fixedClock{now: testutil.At(18, 0)},
			}), nil, nil
		},
	}
	return app, store
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	return executeCmdWithInput(t, app, "", args...)
}

func executeCmdWithInput(t *testing.T, app *App, input string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetIn(strings.NewReader(input))
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// --- session ---

func TestSessionAdd_PersistsWithDefaultDuration(t *testing.T) {
	app, store := testApp(t, testutil.NewTestRecord(100))

	out, err := executeCmd(t, app, "session", "add", "--category", "curso", "--name", "Go 101", "--start", "2024-01-01 09:00")
	require.NoError(t, err)
	assert.Contains(t, out, "Go 101")

	saved := store.Snapshot()
	require.Len(t, saved.Courses, 1)
	assert.Equal(t, testutil.At(12, 30), saved.Courses[0].End)
	assert.NotEmpty(t, saved.Courses[0].ID)
}

func TestSessionAdd_ConflictIsAnError(t *testing.T) {
	rec := testutil.NewTestRecord(100)
	require.NoError(t, rec.Add(domain.CategoryCourse, testutil.NewTestSession(domain.CategoryCourse, "Go 101", testutil.At(9, 0))))
	app, store := testApp(t, rec)

	_, err := executeCmd(t, app, "session", "add", "--category", "course", "--name", "Rust", "--start", "2024-01-01 10:00")
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrConflict)
	assert.Equal(t, 0, store.Saves)
}

func TestSessionAdd_OtherCategoryDoesNotConflict(t *testing.T) {
	rec := testutil.NewTestRecord(100)
	require.NoError(t, rec.Add(domain.CategoryCourse, testutil.NewTestSession(domain.CategoryCourse, "Go 101", testutil.At(9, 0))))
	app, store := testApp(t, rec)

	_, err := executeCmd(t, app, "session", "add", "--category", "workshop", "--name", "Intro", "--start", "2024-01-01 10:00")
	require.NoError(t, err)
	assert.Len(t, store.Snapshot().Workshops, 1)
}

func TestSessionAdd_CrossCategoryFlag(t *testing.T) {
	rec := testutil.NewTestRecord(100)
	require.NoError(t, rec.Add(domain.CategoryCourse, testutil.NewTestSession(domain.CategoryCourse, "Go 101", testutil.At(9, 0))))
	app, _ := testApp(t, rec)

	_, err := executeCmd(t, app, "--cross-category", "session", "add", "--category", "workshop", "--name", "Intro", "--start", "2024-01-01 10:00")
	assert.ErrorIs(t, err, service.ErrConflict)
}

func TestSessionAdd_InvalidInput(t *testing.T) {
	app, _ := testApp(t, nil)

	_, err := executeCmd(t, app, "session", "add", "--category", "seminar", "--name", "x", "--start", "2024-01-01 10:00")
	assert.ErrorIs(t, err, domain.ErrUnknownCategory)

	_, err = executeCmd(t, app, "session", "add", "--category", "course", "--name", "x", "--start", "tomorrow")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD HH:MM")

	_, err = executeCmd(t, app, "session", "add", "--category", "course")
	assert.Error(t, err, "required flags")
}

func TestSessionList(t *testing.T) {
	rec := testutil.NewTestRecord(100)
	require.NoError(t, rec.Add(domain.CategoryCourse, testutil.NewTestSession(domain.CategoryCourse, "Go 101", testutil.At(9, 0))))
	require.NoError(t, rec.Add(domain.CategoryWorkshop, testutil.NewTestSession(domain.CategoryWorkshop, "Intro", testutil.At(14, 0))))
	app, _ := testApp(t, rec)

	out, err := executeCmd(t, app, "session", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Go 101")
	assert.Contains(t, out, "Intro")

	out, err = executeCmd(t, app, "session", "list", "--category", "workshop")
	require.NoError(t, err)
	assert.NotContains(t, out, "Go 101")
	assert.Contains(t, out, "Intro")

	out, err = executeCmd(t, app, "session", "list", "--category", "super_module")
	require.NoError(t, err)
	assert.Contains(t, out, "No sessions scheduled.")
}

// --- adjust / history ---

func TestAdjust_MovesEndAndRecordsHistory(t *testing.T) {
	rec := testutil.NewTestRecord(100)
	require.NoError(t, rec.Add(domain.CategoryCourse, testutil.NewTestSession(domain.CategoryCourse, "Go 101", testutil.At(9, 0))))
	app, store := testApp(t, rec)

	out, err := executeCmd(t, app, "adjust", "--category", "course", "--name", "Go 101", "--hours=-1", "--reason", "late start")
	require.NoError(t, err)
	assert.Contains(t, out, "2.50 hours")

	saved := store.Snapshot()
	assert.Equal(t, testutil.At(11, 30), saved.Courses[0].End)
	require.Len(t, saved.Adjustments, 1)
	assert.Equal(t, "late start", saved.Adjustments[0].Reason)
	assert.Equal(t, testutil.At(18, 0), saved.Adjustments[0].AppliedAt)

	out, err = executeCmd(t, app, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "ADJUSTMENT HISTORY")
	assert.Contains(t, out, "late start")
	assert.Contains(t, out, "Go 101")
}

func TestAdjust_NotFound(t *testing.T) {
	rec := testutil.NewTestRecord(100)
	require.NoError(t, rec.Add(domain.CategoryCourse, testutil.NewTestSession(domain.CategoryCourse, "Go 101", testutil.At(9, 0))))
	app, store := testApp(t, rec)

	_, err := executeCmd(t, app, "adjust", "--category", "workshop", "--name", "Go 101", "--hours", "1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.Equal(t, 0, store.Saves)
}

func TestHistory_Empty(t *testing.T) {
	app, _ := testApp(t, nil)

	out, err := executeCmd(t, app, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No adjustments recorded.")
}

// --- report ---

func TestReport_Plain(t *testing.T) {
	rec := testutil.NewTestRecord(100)
	require.NoError(t, rec.Add(domain.CategoryCourse, testutil.NewTestSession(domain.CategoryCourse, "Go 101", testutil.At(9, 0))))
	app, store := testApp(t, rec)

	out, err := executeCmd(t, app, "report", "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, "Courses - Detail:")
	assert.Contains(t, out, "  - Go 101: 2024-01-01 09:00 to 2024-01-01 12:30 (3.50 hours) - R$ 350.00")
	assert.Contains(t, out, "Courses: R$ 350.00 - 3.50 hours - Efficiency: R$ 100.00/hour")
	assert.Contains(t, out, "Super-modules: R$ 0.00 - 0.00 hours - Efficiency: R$ 0.00/hour")
	assert.Equal(t, 0, store.Saves, "report does not write")
}

func TestReport_Copy(t *testing.T) {
	app, _ := testApp(t, testutil.NewTestRecord(100))
	var copied string
	app.CopyToClipboard = func(text string) error {
		copied = text
		return nil
	}

	out, err := executeCmd(t, app, "report", "--copy")
	require.NoError(t, err)
	assert.Contains(t, out, "Report copied to clipboard.")
	assert.Contains(t, copied, "Efficiency Comparison:")
}

func TestReport_CopyFailure(t *testing.T) {
	app, _ := testApp(t, testutil.NewTestRecord(100))
	app.CopyToClipboard = func(string) error { return errors.New("no clipboard utility") }

	_, err := executeCmd(t, app, "report", "--copy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no clipboard utility")
}

// --- profile ---

func TestProfile_SetAndShow(t *testing.T) {
	app, store := testApp(t, nil)

	_, err := executeCmd(t, app, "profile", "set", "--name", "Bruno Lima", "--rate", "95.5")
	require.NoError(t, err)
	assert.Equal(t, domain.TeacherProfile{Name: "Bruno Lima", HourlyRate: 95.5}, store.Snapshot().Profile)

	out, err := executeCmd(t, app, "profile", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Bruno Lima")
	assert.Contains(t, out, "R$ 95.50")
}

func TestProfile_SetRejectsBadInput(t *testing.T) {
	app, store := testApp(t, nil)

	_, err := executeCmd(t, app, "profile", "set")
	assert.Error(t, err)

	_, err = executeCmd(t, app, "profile", "set", "--rate=-5")
	assert.ErrorIs(t, err, service.ErrInvalidInput)
	assert.Equal(t, 0, store.Saves)
}

func TestRoot_InvalidStoreFlag(t *testing.T) {
	app, _ := testApp(t, nil)

	_, err := executeCmd(t, app, "--store", "csv", "report")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown store")
}

func TestRoot_LedgerOpenFailure(t *testing.T) {
	app, _ := testApp(t, nil)
	app.NewLedger = func(config.Config) (service.LedgerService, io.Closer, error) {
		return nil, nil, errors.New("disk on fire")
	}

	_, err := executeCmd(t, app, "report")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening record store")
}

func TestReport_WarnsOnNonPositiveSession(t *testing.T) {
	rec := testutil.NewTestRecord(100)
	require.NoError(t, rec.Add(domain.CategoryWorkshop,
		testutil.NewTestSession(domain.CategoryWorkshop, "Intro", testutil.At(10, 0),
			testutil.WithAdjustment("cancelled", -3, testutil.At(18, 0)))))
	require.NoError(t, rec.Add(domain.CategoryCourse,
		testutil.NewTestSession(domain.CategoryCourse, "Go 101", testutil.At(9, 0),
			testutil.WithEnd(testutil.At(11, 0)))))
	app, _ := testApp(t, rec)

	out, err := executeCmd(t, app, "report", "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, "Workshops: R$ -100.00 - -1.00 hours - Efficiency: R$ 0.00/hour")
	assert.Contains(t, out, "Courses: R$ 200.00 - 2.00 hours - Efficiency: R$ 100.00/hour")
	assert.Contains(t, out, `WARNING: workshop "Intro" ends at or before its start after adjustments`)
}
