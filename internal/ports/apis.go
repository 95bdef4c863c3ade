package ports

import (
	"context"
	"io"

	"github.com/bnema/portal-cli/internal/domain"
)

type SessionAPI interface {
	Login(ctx context.Context, credentials domain.Credentials) (domain.AuthResult, error)
	Register(ctx context.Context, registration domain.Registration) (domain.AuthResult, error)
	UpdateProfile(ctx context.Context, userID int64, patch domain.UserPatch) error
	ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error
}

type ProjectAPI interface {
	List(ctx context.Context) ([]domain.Project, error)
	ListByClient(ctx context.Context, clientID int64) ([]domain.Project, error)
	Get(ctx context.Context, id int64) (domain.Project, error)
	Create(ctx context.Context, project domain.NewProject) (domain.Project, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ProjectStatus) (domain.Project, error)
	UpdateProgress(ctx context.Context, id int64, progress int) (domain.Project, error)
}

type TaskAPI interface {
	List(ctx context.Context) ([]domain.Task, error)
	ListByProject(ctx context.Context, projectID int64) ([]domain.Task, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Task, error)
	Create(ctx context.Context, task domain.NewTask) (domain.Task, error)
	Update(ctx context.Context, id int64, patch domain.TaskPatch) (domain.Task, error)
	UpdateStatus(ctx context.Context, id int64, status domain.TaskStatus) (domain.Task, error)
	Assign(ctx context.Context, id int64, userID int64) (domain.Task, error)
	Delete(ctx context.Context, id int64) error
}

type DeliverableAPI interface {
	List(ctx context.Context) ([]domain.Deliverable, error)
	ListByProject(ctx context.Context, projectID int64) ([]domain.Deliverable, error)
	Upload(ctx context.Context, upload domain.DeliverableUpload, file io.Reader) (domain.Deliverable, error)
	Approve(ctx context.Context, id int64) (domain.Deliverable, error)
	Delete(ctx context.Context, id int64) error
}

type UserAPI interface {
	List(ctx context.Context) ([]domain.User, error)
	ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
	Create(ctx context.Context, registration domain.Registration) (domain.User, error)
	Update(ctx context.Context, id int64, patch domain.UserPatch) (domain.User, error)
	Delete(ctx context.Context, id int64) error
	ResetPassword(ctx context.Context, email string) error
}

type NotificationAPI interface {
	ListForUser(ctx context.Context, userID int64) ([]domain.Notification, error)
	UnreadCount(ctx context.Context, userID int64) (int, error)
	MarkRead(ctx context.Context, id int64) error
	MarkAllRead(ctx context.Context, userID int64) error
}

type CartAPI interface {
	ListForUser(ctx context.Context, userID int64) ([]domain.CartItem, error)
	Add(ctx context.Context, item domain.NewCartItem) (domain.CartItem, error)
	UpdateQuantity(ctx context.Context, id int64, quantity int) (domain.CartItem, error)
	Remove(ctx context.Context, id int64) error
	Clear(ctx context.Context, userID int64) error
}

type InventoryAPI interface {
	LowStock(ctx context.Context, threshold int) ([]domain.LowStockAlert, error)
	Acknowledge(ctx context.Context, id int64) error
}

type SheetAPI interface {
	Rows(ctx context.Context, sheet string) ([]domain.SheetRow, error)
	Sync(ctx context.Context, resource string) (domain.SyncResult, error)
	Status(ctx context.Context) (domain.SyncResult, error)
}
