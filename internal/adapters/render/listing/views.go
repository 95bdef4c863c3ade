package listing

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/portal-cli/internal/domain"
)

const dateLayout = "2006-01-02"

func Projects(projects []domain.Project) View {
	rows := make([][]Cell, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []Cell{
			Text(id(p.ProjectID)),
			Text(p.Name),
			projectStatus(p.Status),
			Progress(p.Progress),
			Text(date(p.DueDate)),
		})
	}

	return View{
		Title:   "Projects",
		Noun:    "projects",
		Columns: []string{"ID", "NAME", "STATUS", "PROGRESS", "DUE"},
		Rows:    rows,
		Empty:   "No projects yet.",
	}
}

func Project(p domain.Project) View {
	return View{
		Title: p.Name,
		Fields: []Field{
			{Key: "id", Value: Text(id(p.ProjectID))},
			{Key: "client", Value: Text(id(p.ClientID))},
			{Key: "status", Value: projectStatus(p.Status)},
			{Key: "progress", Value: Progress(p.Progress)},
			{Key: "start", Value: Text(date(p.StartDate))},
			{Key: "due", Value: Text(date(p.DueDate))},
			{Key: "description", Value: Text(orDash(p.Description))},
		},
	}
}

func Tasks(tasks []domain.Task) View {
	rows := make([][]Cell, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []Cell{
			Text(id(t.TaskID)),
			Text(id(t.ProjectID)),
			Text(t.Title),
			taskStatus(t.Status),
			Text(orDash(string(t.Priority))),
			Text(id(t.AssigneeID)),
			Text(date(t.DueDate)),
		})
	}

	return View{
		Title:   "Tasks",
		Noun:    "tasks",
		Columns: []string{"ID", "PROJECT", "TITLE", "STATUS", "PRIORITY", "ASSIGNEE", "DUE"},
		Rows:    rows,
		Empty:   "No tasks.",
	}
}

func Deliverables(deliverables []domain.Deliverable) View {
	rows := make([][]Cell, 0, len(deliverables))
	for _, d := range deliverables {
		approved := Toned("pending", ToneMuted)
		if d.Approved {
			approved = Toned("approved", TonePositive)
		}
		rows = append(rows, []Cell{
			Text(id(d.DeliverableID)),
			Text(id(d.ProjectID)),
			Text(d.Title),
			Text(orDash(d.FileName)),
			approved,
		})
	}

	return View{
		Title:   "Deliverables",
		Noun:    "deliverables",
		Columns: []string{"ID", "PROJECT", "TITLE", "FILE", "STATE"},
		Rows:    rows,
		Empty:   "No deliverables uploaded.",
	}
}

func Users(users []domain.User) View {
	rows := make([][]Cell, 0, len(users))
	for _, u := range users {
		rows = append(rows, []Cell{
			Text(id(u.UserID)),
			Text(orDash(u.Name)),
			Text(u.Email),
			Text(orDash(string(u.Role))),
			Text(orDash(u.Company)),
		})
	}

	return View{
		Title:   "Users",
		Noun:    "users",
		Columns: []string{"ID", "NAME", "EMAIL", "ROLE", "COMPANY"},
		Rows:    rows,
		Empty:   "No users.",
	}
}

func Notifications(notifications []domain.Notification, unread int) View {
	rows := make([][]Cell, 0, len(notifications))
	for _, n := range notifications {
		state := Toned("unread", ToneWarning)
		if n.Read {
			state = Toned("read", ToneMuted)
		}
		rows = append(rows, []Cell{
			Text(id(n.NotificationID)),
			state,
			Text(orDash(n.Type)),
			Text(n.Message),
			Text(timestamp(n.CreatedAt)),
		})
	}

	return View{
		Title:   "Notifications",
		Noun:    "notifications",
		Columns: []string{"ID", "STATE", "TYPE", "MESSAGE", "AT"},
		Rows:    rows,
		Footer:  fmt.Sprintf("unread: %d", unread),
		Empty:   "You're all caught up.",
	}
}

func Cart(items []domain.CartItem, total float64) View {
	rows := make([][]Cell, 0, len(items))
	for _, item := range items {
		rows = append(rows, []Cell{
			Text(id(item.CartItemID)),
			Text(orDash(item.ProductName)),
			Text(strconv.Itoa(item.Quantity)),
			Text(money(item.UnitPrice)),
			Text(money(item.Subtotal())),
		})
	}

	return View{
		Title:   "Cart",
		Noun:    "lines",
		Columns: []string{"ID", "PRODUCT", "QTY", "UNIT", "SUBTOTAL"},
		Rows:    rows,
		Footer:  "total: " + money(total),
		Empty:   "Your cart is empty.",
	}
}

func Alerts(alerts []domain.LowStockAlert) View {
	rows := make([][]Cell, 0, len(alerts))
	for _, a := range alerts {
		stock := Text(strconv.Itoa(a.Stock))
		if a.Stock == 0 {
			stock = Toned("0", ToneWarning)
		}
		rows = append(rows, []Cell{
			Text(id(a.AlertID)),
			Text(id(a.ProductID)),
			Text(orDash(a.ProductName)),
			stock,
			Text(strconv.Itoa(a.Threshold)),
		})
	}

	return View{
		Title:   "Low stock",
		Noun:    "alerts",
		Columns: []string{"ID", "PRODUCT", "NAME", "STOCK", "THRESHOLD"},
		Rows:    rows,
		Empty:   "No pending alerts.",
	}
}

func SheetRows(sheet string, rows []domain.SheetRow) View {
	width := 0
	for _, row := range rows {
		width = max(width, len(row.Cells))
	}

	columns := make([]string, 0, width+1)
	columns = append(columns, "ROW")
	for i := range width {
		columns = append(columns, columnName(i))
	}

	out := make([][]Cell, 0, len(rows))
	for _, row := range rows {
		cells := make([]Cell, 0, width+1)
		cells = append(cells, Toned(strconv.FormatInt(row.Index, 10), ToneMuted))
		for _, cell := range row.Cells {
			cells = append(cells, Text(cell.String()))
		}
		out = append(out, cells)
	}

	return View{
		Title:   "Sheet " + sheet,
		Noun:    "rows",
		Columns: columns,
		Rows:    out,
		Empty:   "The sheet is empty.",
	}
}

func SyncResult(result domain.SyncResult) View {
	state := Text(string(result.State))
	switch result.State {
	case domain.SyncDone:
		state = Toned(string(result.State), TonePositive)
	case domain.SyncFailed:
		state = Toned(string(result.State), ToneWarning)
	}

	return View{
		Title: "Sheet sync",
		Fields: []Field{
			{Key: "resource", Value: Text(orDash(result.Resource))},
			{Key: "state", Value: state},
			{Key: "rows", Value: Text(strconv.Itoa(result.RowsWritten))},
			{Key: "at", Value: Text(timestamp(result.SyncedAt))},
			{Key: "message", Value: Text(orDash(result.Message))},
		},
	}
}

// Session describes who is signed in. expiresAt is only shown when known.
func Session(session domain.Session, expiresAt time.Time, hasExpiry bool, now time.Time) View {
	if !session.IsAuthenticated() {
		return View{
			Title:  "Session",
			Fields: []Field{{Key: "state", Value: Toned(string(domain.SessionAnonymous), ToneMuted)}},
			Footer: "Run `portal login` to sign in.",
		}
	}

	user := session.User
	fields := []Field{
		{Key: "state", Value: Toned(string(domain.SessionAuthenticated), TonePositive)},
		{Key: "user", Value: Text(fmt.Sprintf("%s (%d)", orDash(user.Name), user.UserID))},
		{Key: "email", Value: Text(user.Email)},
		{Key: "role", Value: Text(orDash(string(user.Role)))},
	}
	if user.Company != "" {
		fields = append(fields, Field{Key: "company", Value: Text(user.Company)})
	}
	if user.Phone != "" {
		fields = append(fields, Field{Key: "phone", Value: Text(user.Phone)})
	}
	if !session.CreatedAt.IsZero() {
		fields = append(fields, Field{Key: "since", Value: Text(session.CreatedAt.Format(time.RFC3339))})
	}
	if hasExpiry {
		fields = append(fields, Field{Key: "expires", Value: expiry(expiresAt, now)})
	}

	return View{Title: "Session", Fields: fields}
}

// Dashboard summarises the per-user collections fetched together.
func Dashboard(projects []domain.Project, tasks []domain.Task, unread int, cartTotal float64) View {
	open := 0
	for _, task := range tasks {
		if task.Status != domain.TaskCompleted {
			open++
		}
	}
	active := 0
	for _, project := range projects {
		if project.Status == domain.ProjectInProgress {
			active++
		}
	}

	notifications := Text(strconv.Itoa(unread))
	if unread > 0 {
		notifications = Toned(strconv.Itoa(unread), ToneWarning)
	}

	return View{
		Title: "Dashboard",
		Fields: []Field{
			{Key: "projects", Value: Text(fmt.Sprintf("%d (%d in progress)", len(projects), active))},
			{Key: "open tasks", Value: Text(strconv.Itoa(open))},
			{Key: "unread", Value: notifications},
			{Key: "cart total", Value: Text(money(cartTotal))},
		},
	}
}

func expiry(at, now time.Time) Cell {
	if now.IsZero() {
		return Text(at.Format(time.RFC3339))
	}
	if !at.After(now) {
		return Toned("expired "+at.Format(time.RFC3339), ToneWarning)
	}
	remaining := at.Sub(now).Round(time.Minute)
	return Text(fmt.Sprintf("%s (in %s)", at.Format(time.RFC3339), remaining))
}

func projectStatus(status domain.ProjectStatus) Cell {
	switch status {
	case domain.ProjectCompleted:
		return Toned(string(status), TonePositive)
	case domain.ProjectOnHold, domain.ProjectCancelled:
		return Toned(string(status), ToneWarning)
	default:
		return Text(orDash(string(status)))
	}
}

func taskStatus(status domain.TaskStatus) Cell {
	switch status {
	case domain.TaskCompleted:
		return Toned(string(status), TonePositive)
	case domain.TaskReview:
		return Toned(string(status), ToneWarning)
	default:
		return Text(orDash(string(status)))
	}
}

// columnName follows spreadsheet lettering: A..Z, AA, AB, ...
func columnName(i int) string {
	name := ""
	for i >= 0 {
		name = string(rune('A'+i%26)) + name
		i = i/26 - 1
	}
	return name
}

func id(value int64) string {
	if value <= 0 {
		return "-"
	}
	return strconv.FormatInt(value, 10)
}

func date(value *time.Time) string {
	if value == nil || value.IsZero() {
		return "-"
	}
	return value.Format(dateLayout)
}

func timestamp(value *time.Time) string {
	if value == nil || value.IsZero() {
		return "-"
	}
	return value.Format("2006-01-02 15:04")
}

func money(value float64) string {
	return fmt.Sprintf("%.2f", value)
}

func orDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}
