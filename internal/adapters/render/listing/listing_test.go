package listing

import (
	"strings"
	"testing"
	"time"

	"github.com/bnema/portal-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderProjectsTable(t *testing.T) {
	due := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	output, err := Render(Projects([]domain.Project{
		{ProjectID: 1, Name: "Website", Status: domain.ProjectInProgress, Progress: 40, DueDate: &due},
		{ProjectID: 2, Name: "Brand kit", Status: domain.ProjectCompleted, Progress: 100},
	}))

	require.NoError(t, err)
	assert.Contains(t, output, "projects: 2")
	assert.Contains(t, output, "Website")
	assert.Contains(t, output, "IN_PROGRESS")
	assert.Contains(t, output, " 40%")
	assert.Contains(t, output, "100%")
	assert.Contains(t, output, "2026-05-01")
	assert.Contains(t, output, "[========------------]")
}

func TestRenderEmptyView(t *testing.T) {
	output, err := Render(Tasks(nil))

	require.NoError(t, err)
	assert.Contains(t, output, "tasks: 0")
	assert.Contains(t, output, "No tasks.")
}

func TestRenderCartShowsTotal(t *testing.T) {
	output, err := Render(Cart([]domain.CartItem{
		{CartItemID: 1, ProductName: "Mug", UnitPrice: 7.5, Quantity: 2},
	}, 15))

	require.NoError(t, err)
	assert.Contains(t, output, "Mug")
	assert.Contains(t, output, "15.00")
	assert.Contains(t, output, "total: 15.00")
}

func TestRenderNotificationsFooter(t *testing.T) {
	output, err := Render(Notifications([]domain.Notification{
		{NotificationID: 2, Message: "Deliverable approved"},
		{NotificationID: 1, Message: "Welcome", Read: true},
	}, 1))

	require.NoError(t, err)
	assert.Contains(t, output, "unread: 1")
	assert.Contains(t, output, "Deliverable approved")
}

func TestRenderSheetRowsUsesSpreadsheetColumns(t *testing.T) {
	output, err := Render(SheetRows("orders", []domain.SheetRow{
		{Index: 1, Cells: []domain.SheetCell{domain.TextCell("A-1"), domain.NumberCell(3), domain.BoolCell(true)}},
	}))

	require.NoError(t, err)
	assert.Contains(t, output, "Sheet orders")
	assert.Contains(t, output, "ROW")
	assert.Contains(t, output, "A-1")
	assert.Contains(t, output, "true")
}

func TestColumnName(t *testing.T) {
	t.Parallel()

	testCases := map[int]string{0: "A", 25: "Z", 26: "AA", 27: "AB", 701: "ZZ", 702: "AAA"}
	for in, want := range testCases {
		assert.Equal(t, want, columnName(in))
	}
}

func TestRenderSession(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	anonymous, err := Render(Session(domain.Session{}, time.Time{}, false, now))
	require.NoError(t, err)
	assert.Contains(t, anonymous, "anonymous")
	assert.Contains(t, anonymous, "portal login")

	user := domain.User{UserID: 7, Name: "Ada", Email: "ada@example.com", Role: domain.RoleClient}
	signedIn, err := Render(Session(domain.Session{User: &user, Token: "tok"}, now.Add(2*time.Hour), true, now))
	require.NoError(t, err)
	assert.Contains(t, signedIn, "authenticated")
	assert.Contains(t, signedIn, "Ada (7)")
	assert.Contains(t, signedIn, "ada@example.com")
	assert.Contains(t, signedIn, "in 2h0m0s")
	assert.NotContains(t, signedIn, "tok")
}

func TestRenderDashboardCountsOpenWork(t *testing.T) {
	output, err := Render(Dashboard(
		[]domain.Project{{ProjectID: 1, Status: domain.ProjectInProgress}, {ProjectID: 2, Status: domain.ProjectPlanning}},
		[]domain.Task{{TaskID: 1, Status: domain.TaskTodo}, {TaskID: 2, Status: domain.TaskCompleted}},
		3,
		12.5,
	))

	require.NoError(t, err)
	assert.Contains(t, output, "2 (1 in progress)")
	assert.Contains(t, output, "12.50")
}

func TestRenderProgressBarClamps(t *testing.T) {
	t.Parallel()

	s := newStyles()
	assert.Equal(t, "[----]", renderProgressBar(-10, 4, s))
	assert.Equal(t, "[====]", renderProgressBar(150, 4, s))
	assert.Empty(t, renderProgressBar(50, 0, s))
}

func TestRenderPageKeepsSectionOrder(t *testing.T) {
	output, err := Render(
		Project(domain.Project{ProjectID: 3, Name: "Launch", Status: domain.ProjectPlanning}),
		Tasks([]domain.Task{{TaskID: 9, ProjectID: 3, Title: "Press kit", Status: domain.TaskTodo}}),
	)

	require.NoError(t, err)
	project := strings.Index(output, "Launch")
	tasks := strings.Index(output, "Press kit")
	require.NotEqual(t, -1, project)
	require.NotEqual(t, -1, tasks)
	assert.Less(t, project, tasks)
	assert.Contains(t, output, "\n\n")
}

func TestRenderWithoutViewsIsEmpty(t *testing.T) {
	output, err := Render()

	require.NoError(t, err)
	assert.Empty(t, output)
}
