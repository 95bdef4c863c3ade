package application

import (
	"context"
	"strings"
	"testing"

	"github.com/bnema/portal-cli/internal/domain"
	"github.com/bnema/portal-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProjectStoreStatusUpdatesReplaceRecord(t *testing.T) {
	t.Parallel()

	api := mocks.NewMockProjectAPI(t)
	store := NewProjectStore(api)

	api.EXPECT().List(mockAnyContext()).Return(projects(1, 2), nil).Once()
	api.EXPECT().UpdateStatus(mockAnyContext(), int64(1), domain.ProjectInProgress).
		Return(domain.Project{ProjectID: 1, Status: domain.ProjectInProgress}, nil).Once()
	api.EXPECT().UpdateStatus(mockAnyContext(), int64(1), domain.ProjectCompleted).
		Return(domain.Project{ProjectID: 1, Status: domain.ProjectCompleted}, nil).Once()

	_, err := store.FetchAll(context.Background())
	require.NoError(t, err)
	_, err = store.UpdateStatus(context.Background(), 1, domain.ProjectInProgress)
	require.NoError(t, err)
	_, err = store.UpdateStatus(context.Background(), 1, domain.ProjectCompleted)
	require.NoError(t, err)

	items := store.Snapshot().Items
	require.Len(t, items, 2)
	assert.Equal(t, domain.ProjectCompleted, items[0].Status)
	assert.Equal(t, domain.ProjectPlanning, items[1].Status)
}

func TestProjectStoreFetchByClientAndOne(t *testing.T) {
	t.Parallel()

	api := mocks.NewMockProjectAPI(t)
	store := NewProjectStore(api)

	api.EXPECT().ListByClient(mockAnyContext(), int64(7)).Return(projects(4), nil).Once()
	api.EXPECT().Get(mockAnyContext(), int64(4)).Return(projects(4)[0], nil).Once()

	items, err := store.FetchByClient(context.Background(), 7)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	_, err = store.FetchOne(context.Background(), 4)
	require.NoError(t, err)
	require.NotNil(t, store.Snapshot().Current)
}

func TestTaskStoreCreateAppendsServerRecord(t *testing.T) {
	t.Parallel()

	api := mocks.NewMockTaskAPI(t)
	store := NewTaskStore(api)
	input := domain.NewTask{ProjectID: 3, Title: "Wireframes"}
	created := domain.Task{TaskID: 42, ProjectID: 3, Title: "Wireframes", Status: domain.TaskTodo}

	api.EXPECT().ListByProject(mockAnyContext(), int64(3)).Return([]domain.Task{{TaskID: 41, ProjectID: 3}}, nil).Once()
	api.EXPECT().Create(mockAnyContext(), input).Return(created, nil).Once()

	_, err := store.FetchByProject(context.Background(), 3)
	require.NoError(t, err)
	got, err := store.Create(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.TaskID)

	items := store.Snapshot().Items
	require.Len(t, items, 2)
	assert.Equal(t, created, items[1])
}

func TestTaskStoreAssignAndDelete(t *testing.T) {
	t.Parallel()

	api := mocks.NewMockTaskAPI(t)
	store := NewTaskStore(api)

	api.EXPECT().ListByUser(mockAnyContext(), int64(7)).Return([]domain.Task{{TaskID: 1}, {TaskID: 2}}, nil).Once()
	api.EXPECT().Assign(mockAnyContext(), int64(1), int64(8)).Return(domain.Task{TaskID: 1, AssigneeID: 8}, nil).Once()
	api.EXPECT().Delete(mockAnyContext(), int64(2)).Return(nil).Once()

	_, err := store.FetchByUser(context.Background(), 7)
	require.NoError(t, err)
	_, err = store.Assign(context.Background(), 1, 8)
	require.NoError(t, err)
	require.NoError(t, store.Delete(context.Background(), 2))

	assert.Equal(t, []domain.Task{{TaskID: 1, AssigneeID: 8}}, store.Snapshot().Items)
}

func TestDeliverableStoreUploadApproveDelete(t *testing.T) {
	t.Parallel()

	api := mocks.NewMockDeliverableAPI(t)
	store := NewDeliverableStore(api)
	upload := domain.DeliverableUpload{ProjectID: 3, Title: "Logo", UploadedBy: 7, FileName: "logo.png"}

	api.EXPECT().Upload(mockAnyContext(), upload, mock.Anything).Return(domain.Deliverable{DeliverableID: 5, ProjectID: 3, Title: "Logo"}, nil).Once()
	api.EXPECT().Approve(mockAnyContext(), int64(5)).Return(domain.Deliverable{DeliverableID: 5, ProjectID: 3, Title: "Logo", Approved: true}, nil).Once()
	api.EXPECT().Delete(mockAnyContext(), int64(5)).Return(nil).Once()

	_, err := store.Upload(context.Background(), upload, strings.NewReader("png"))
	require.NoError(t, err)
	_, err = store.Approve(context.Background(), 5)
	require.NoError(t, err)
	assert.True(t, store.Snapshot().Items[0].Approved)

	require.NoError(t, store.Delete(context.Background(), 5))
	assert.Empty(t, store.Snapshot().Items)
}

func TestUserStoreByRoleAndUpdate(t *testing.T) {
	t.Parallel()

	api := mocks.NewMockUserAPI(t)
	store := NewUserStore(api)
	name := "Grace"

	api.EXPECT().ListByRole(mockAnyContext(), domain.RoleStaff).Return([]domain.User{{UserID: 2, Email: "g@example.com", Role: domain.RoleStaff}}, nil).Once()
	api.EXPECT().Update(mockAnyContext(), int64(2), domain.UserPatch{Name: &name}).
		Return(domain.User{UserID: 2, Name: name, Email: "g@example.com", Role: domain.RoleStaff}, nil).Once()
	api.EXPECT().ResetPassword(mockAnyContext(), "g@example.com").Return(nil).Once()

	_, err := store.FetchByRole(context.Background(), domain.RoleStaff)
	require.NoError(t, err)
	_, err = store.Update(context.Background(), 2, domain.UserPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Grace", store.Snapshot().Items[0].Name)
	require.NoError(t, store.ResetPassword(context.Background(), "g@example.com"))
}

func TestNotificationStoreMarkReadDecrementsUnread(t *testing.T) {
	t.Parallel()

	api := mocks.NewMockNotificationAPI(t)
	store := NewNotificationStore(api)

	api.EXPECT().ListForUser(mockAnyContext(), int64(7)).Return([]domain.Notification{
		{NotificationID: 3, UserID: 7},
		{NotificationID: 2, UserID: 7},
		{NotificationID: 1, UserID: 7, Read: true},
	}, nil).Once()
	api.EXPECT().UnreadCount(mockAnyContext(), int64(7)).Return(2, nil).Once()
	api.EXPECT().MarkRead(mockAnyContext(), int64(3)).Return(nil).Twice()

	items, err := store.FetchForUser(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(3), items[0].NotificationID)

	count, err := store.RefreshUnreadCount(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, store.MarkRead(context.Background(), 3))
	require.NoError(t, store.MarkRead(context.Background(), 3))
	assert.Equal(t, 1, store.UnreadCount())
	assert.True(t, store.Snapshot().Items[0].Read)
}

func TestNotificationStoreMarkAllRead(t *testing.T) {
	t.Parallel()

	api := mocks.NewMockNotificationAPI(t)
	store := NewNotificationStore(api)

	api.EXPECT().ListForUser(mockAnyContext(), int64(7)).Return([]domain.Notification{
		{NotificationID: 2, UserID: 7},
		{NotificationID: 1, UserID: 7},
	}, nil).Once()
	api.EXPECT().UnreadCount(mockAnyContext(), int64(7)).Return(2, nil).Once()
	api.EXPECT().MarkAllRead(mockAnyContext(), int64(7)).Return(nil).Once()

	_, err := store.FetchForUser(context.Background(), 7)
	require.NoError(t, err)
	_, err = store.RefreshUnreadCount(context.Background(), 7)
	require.NoError(t, err)
	require.NoError(t, store.MarkAllRead(context.Background(), 7))

	assert.Zero(t, store.UnreadCount())
	for _, notification := range store.Snapshot().Items {
		assert.True(t, notification.Read)
	}
}

func TestCartStoreTotalAndClear(t *testing.T) {
	t.Parallel()

	api := mocks.NewMockCartAPI(t)
	store := NewCartStore(api)

	api.EXPECT().ListForUser(mockAnyContext(), int64(7)).Return([]domain.CartItem{
		{CartItemID: 1, ProductID: 10, UnitPrice: 2.5, Quantity: 2},
	}, nil).Once()
	api.EXPECT().Add(mockAnyContext(), domain.NewCartItem{UserID: 7, ProductID: 11, Quantity: 1}).
		Return(domain.CartItem{CartItemID: 2, ProductID: 11, UnitPrice: 10, Quantity: 1}, nil).Once()
	api.EXPECT().UpdateQuantity(mockAnyContext(), int64(2), 3).
		Return(domain.CartItem{CartItemID: 2, ProductID: 11, UnitPrice: 10, Quantity: 3}, nil).Once()
	api.EXPECT().Clear(mockAnyContext(), int64(7)).Return(nil).Once()

	_, err := store.FetchForUser(context.Background(), 7)
	require.NoError(t, err)
	_, err = store.Add(context.Background(), domain.NewCartItem{UserID: 7, ProductID: 11, Quantity: 1})
	require.NoError(t, err)
	_, err = store.UpdateQuantity(context.Background(), 2, 3)
	require.NoError(t, err)
	assert.InDelta(t, 35.0, store.Total(), 0.0001)

	require.NoError(t, store.Clear(context.Background(), 7))
	assert.Empty(t, store.Snapshot().Items)
	assert.Zero(t, store.Total())
}

func TestCartStoreRemoveFailureKeepsLine(t *testing.T) {
	t.Parallel()

	api := mocks.NewMockCartAPI(t)
	store := NewCartStore(api)

	api.EXPECT().ListForUser(mockAnyContext(), int64(7)).Return([]domain.CartItem{{CartItemID: 1, Quantity: 1}}, nil).Once()
	api.EXPECT().Remove(mockAnyContext(), int64(1)).Return(domain.ErrBackend).Once()

	_, err := store.FetchForUser(context.Background(), 7)
	require.NoError(t, err)
	require.ErrorIs(t, store.Remove(context.Background(), 1), domain.ErrBackend)
	assert.Len(t, store.Snapshot().Items, 1)
}

func TestAlertStoreAcknowledgeRemovesAlert(t *testing.T) {
	t.Parallel()

	api := mocks.NewMockInventoryAPI(t)
	store := NewAlertStore(api)

	api.EXPECT().LowStock(mockAnyContext(), 5).Return([]domain.LowStockAlert{
		{AlertID: 1, ProductID: 10, Stock: 2, Threshold: 5},
		{AlertID: 2, ProductID: 11, Stock: 0, Threshold: 5},
	}, nil).Once()
	api.EXPECT().Acknowledge(mockAnyContext(), int64(1)).Return(nil).Once()

	_, err := store.FetchLowStock(context.Background(), 5)
	require.NoError(t, err)
	require.NoError(t, store.Acknowledge(context.Background(), 1))

	items := store.Snapshot().Items
	require.Len(t, items, 1)
	assert.Equal(t, int64(2), items[0].AlertID)
}

func TestSheetSyncStoreRecordsLastResult(t *testing.T) {
	t.Parallel()

	api := mocks.NewMockSheetAPI(t)
	store := NewSheetSyncStore(api)

	_, ok := store.LastResult()
	assert.False(t, ok)

	api.EXPECT().Rows(mockAnyContext(), "orders").Return([]domain.SheetRow{
		{Index: 1, Cells: []domain.SheetCell{domain.TextCell("A-1"), domain.NumberCell(3)}},
	}, nil).Once()
	api.EXPECT().Sync(mockAnyContext(), "projects").Return(domain.SyncResult{Resource: "projects", State: domain.SyncDone, RowsWritten: 12}, nil).Once()
	api.EXPECT().Status(mockAnyContext()).Return(domain.SyncResult{}, domain.ErrBackend).Once()

	rows, err := store.FetchRows(context.Background(), "orders")
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	_, err = store.Sync(context.Background(), "projects")
	require.NoError(t, err)
	_, err = store.Status(context.Background())
	require.ErrorIs(t, err, domain.ErrBackend)

	last, ok := store.LastResult()
	require.True(t, ok)
	assert.Equal(t, 12, last.RowsWritten)
}

func TestNewStoresWiresEveryStore(t *testing.T) {
	t.Parallel()

	stores := NewStores(APIs{
		Projects:      mocks.NewMockProjectAPI(t),
		Tasks:         mocks.NewMockTaskAPI(t),
		Deliverables:  mocks.NewMockDeliverableAPI(t),
		Users:         mocks.NewMockUserAPI(t),
		Notifications: mocks.NewMockNotificationAPI(t),
		Cart:          mocks.NewMockCartAPI(t),
		Inventory:     mocks.NewMockInventoryAPI(t),
		Sheets:        mocks.NewMockSheetAPI(t),
	})

	assert.NotNil(t, stores.Projects)
	assert.NotNil(t, stores.Tasks)
	assert.NotNil(t, stores.Deliverables)
	assert.NotNil(t, stores.Users)
	assert.NotNil(t, stores.Notifications)
	assert.NotNil(t, stores.Cart)
	assert.NotNil(t, stores.Alerts)
	assert.NotNil(t, stores.Sheets)
}
