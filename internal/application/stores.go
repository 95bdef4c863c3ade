package application

import "github.com/bnema/portal-cli/internal/ports"

// APIs bundles the resource ports the domain stores call.
type APIs struct {
	Projects      ports.ProjectAPI
	Tasks         ports.TaskAPI
	Deliverables  ports.DeliverableAPI
	Users         ports.UserAPI
	Notifications ports.NotificationAPI
	Cart          ports.CartAPI
	Inventory     ports.InventoryAPI
	Sheets        ports.SheetAPI
}

// Stores is built once at startup and handed to every consumer.
type Stores struct {
	Projects      *ProjectStore
	Tasks         *TaskStore
	Deliverables  *DeliverableStore
	Users         *UserStore
	Notifications *NotificationStore
	Cart          *CartStore
	Alerts        *AlertStore
	Sheets        *SheetSyncStore
}

func NewStores(apis APIs) *Stores {
	return &Stores{
		Projects:      NewProjectStore(apis.Projects),
		Tasks:         NewTaskStore(apis.Tasks),
		Deliverables:  NewDeliverableStore(apis.Deliverables),
		Users:         NewUserStore(apis.Users),
		Notifications: NewNotificationStore(apis.Notifications),
		Cart:          NewCartStore(apis.Cart),
		Alerts:        NewAlertStore(apis.Inventory),
		Sheets:        NewSheetSyncStore(apis.Sheets),
	}
}
