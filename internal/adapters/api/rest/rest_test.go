package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bnema/portal-cli/internal/adapters/gateway"
	"github.com/bnema/portal-cli/internal/domain"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Body   string
}

// newBackend serves canned responses keyed by "METHOD /path" and records every request.
func newBackend(t *testing.T, routes map[string]string) (*gateway.Client, *[]recordedRequest) {
	t.Helper()

	var requests []recordedRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		requests = append(requests, recordedRequest{
			Method: r.Method,
			Path:   strings.TrimPrefix(r.URL.Path, "/api"),
			Query:  r.URL.RawQuery,
			Body:   string(raw),
		})

		body, ok := routes[r.Method+" "+strings.TrimPrefix(r.URL.Path, "/api")]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if body == "" {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	logger, _ := logtest.NewNullLogger()
	client, err := gateway.New(gateway.Config{BaseURL: server.URL + "/api"}, gateway.WithLogger(logger))
	require.NoError(t, err)

	return client, &requests
}

func TestSessionAPILoginAcceptsBareUserRecord(t *testing.T) {
	t.Parallel()

	client, requests := newBackend(t, map[string]string{
		"POST /users/login": `{"userId":7,"name":"Ada","email":"ada@example.com","role":"CLIENT"}`,
	})

	result, err := NewSessionAPI(client).Login(context.Background(), domain.Credentials{Email: "ada@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), result.User.UserID)
	assert.Equal(t, "", result.Token)
	require.Len(t, *requests, 1)
	assert.JSONEq(t, `{"email":"ada@example.com","password":"pw"}`, (*requests)[0].Body)
}

func TestSessionAPILoginReadsEnvelopeToken(t *testing.T) {
	t.Parallel()

	client, _ := newBackend(t, map[string]string{
		"POST /users/register": `{"user":{"userId":8,"email":"grace@example.com","role":"STAFF"},"token":"jwt-token"}`,
	})

	result, err := NewSessionAPI(client).Register(context.Background(), domain.Registration{
		Name: "Grace", Email: "grace@example.com", Password: "pw", Role: domain.RoleStaff,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleStaff, result.User.Role)
	assert.Equal(t, "jwt-token", result.Token)
}

func TestSessionAPIFailedLoginDoesNotRejectSession(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(server.Close)

	logger, _ := logtest.NewNullLogger()
	rejected := 0
	client, err := gateway.New(gateway.Config{BaseURL: server.URL + "/api"},
		gateway.WithLogger(logger),
		gateway.WithSessionRejectedHook(func(context.Context) { rejected++ }),
	)
	require.NoError(t, err)

	api := NewSessionAPI(client)
	_, err = api.Login(context.Background(), domain.Credentials{Email: "ada@example.com", Password: "typo"})
	require.ErrorIs(t, err, domain.ErrSessionRejected)
	_, err = api.Register(context.Background(), domain.Registration{Name: "Ada", Email: "ada@example.com", Password: "pw"})
	require.ErrorIs(t, err, domain.ErrSessionRejected)

	assert.Equal(t, 0, rejected)
}

func TestSessionAPILoginRejectsMalformedUser(t *testing.T) {
	t.Parallel()

	client, _ := newBackend(t, map[string]string{
		"POST /users/login": `{"name":"nobody"}`,
	})

	_, err := NewSessionAPI(client).Login(context.Background(), domain.Credentials{Email: "a@b.c", Password: "pw"})
	require.ErrorIs(t, err, domain.ErrInvalidPayload)
}

func TestSessionAPIProfileAndPasswordBodies(t *testing.T) {
	t.Parallel()

	client, requests := newBackend(t, map[string]string{
		"PUT /users/7/profile":  "",
		"PUT /users/7/password": "",
	})
	api := NewSessionAPI(client)

	phone := "555-0100"
	require.NoError(t, api.UpdateProfile(context.Background(), 7, domain.UserPatch{Phone: &phone}))
	require.NoError(t, api.ChangePassword(context.Background(), 7, "old", "new"))
	require.Error(t, api.UpdateProfile(context.Background(), 7, domain.UserPatch{}))

	require.Len(t, *requests, 2)
	assert.JSONEq(t, `{"phone":"555-0100"}`, (*requests)[0].Body)
	assert.JSONEq(t, `{"oldPassword":"old","newPassword":"new"}`, (*requests)[1].Body)
}

func TestProjectAPIRoutes(t *testing.T) {
	t.Parallel()

	project := `{"projectId":3,"name":"Website","clientId":7,"status":"IN_PROGRESS","progress":40}`
	client, requests := newBackend(t, map[string]string{
		"GET /projects":            "[" + project + "]",
		"GET /projects/client/7":   "[" + project + "]",
		"GET /projects/3":          project,
		"POST /projects/create":    project,
		"PUT /projects/3/status":   project,
		"PUT /projects/3/progress": project,
	})
	api := NewProjectAPI(client)
	ctx := context.Background()

	all, err := api.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	byClient, err := api.ListByClient(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, all, byClient)

	one, err := api.Get(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 40, one.Progress)

	_, err = api.Create(ctx, domain.NewProject{Name: "Website", ClientID: 7})
	require.NoError(t, err)

	_, err = api.UpdateStatus(ctx, 3, domain.ProjectInProgress)
	require.NoError(t, err)

	_, err = api.UpdateProgress(ctx, 3, 40)
	require.NoError(t, err)

	_, err = api.UpdateProgress(ctx, 3, 101)
	require.Error(t, err)
	_, err = api.UpdateStatus(ctx, 3, "ARCHIVED")
	require.Error(t, err)

	require.Len(t, *requests, 6)
	assert.JSONEq(t, `{"status":"IN_PROGRESS"}`, (*requests)[4].Body)
	assert.JSONEq(t, `{"progress":40}`, (*requests)[5].Body)
}

func TestTaskAPIRoutes(t *testing.T) {
	t.Parallel()

	task := `{"taskId":42,"projectId":3,"title":"Wireframes","status":"REVIEW"}`
	client, requests := newBackend(t, map[string]string{
		"GET /tasks/project/3": "[" + task + "]",
		"GET /tasks/user/7":    "[" + task + "]",
		"POST /tasks/create":   task,
		"PUT /tasks/42/update": task,
		"PUT /tasks/42/status": task,
		"PUT /tasks/42/assign": task,
		"DELETE /tasks/42":     "",
	})
	api := NewTaskAPI(client)
	ctx := context.Background()

	_, err := api.ListByProject(ctx, 3)
	require.NoError(t, err)
	_, err = api.ListByUser(ctx, 7)
	require.NoError(t, err)

	created, err := api.Create(ctx, domain.NewTask{ProjectID: 3, Title: "Wireframes"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), created.TaskID)

	title := "Wireframes v2"
	_, err = api.Update(ctx, 42, domain.TaskPatch{Title: &title})
	require.NoError(t, err)
	_, err = api.UpdateStatus(ctx, 42, domain.TaskReview)
	require.NoError(t, err)
	_, err = api.Assign(ctx, 42, 7)
	require.NoError(t, err)
	require.NoError(t, api.Delete(ctx, 42))

	require.Len(t, *requests, 7)
	assert.JSONEq(t, `{"title":"Wireframes v2"}`, (*requests)[3].Body)
	assert.JSONEq(t, `{"status":"REVIEW"}`, (*requests)[4].Body)
	assert.JSONEq(t, `{"userId":7}`, (*requests)[5].Body)
	assert.Equal(t, http.MethodDelete, (*requests)[6].Method)
}

func TestDeliverableAPIUploadSendsMetadataFields(t *testing.T) {
	t.Parallel()

	var fields map[string]string
	var fileName string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		fields = map[string]string{}
		for key, values := range r.MultipartForm.Value {
			fields[key] = values[0]
		}
		if files := r.MultipartForm.File["file"]; len(files) == 1 {
			fileName = files[0].Filename
		}
		_, _ = w.Write([]byte(`{"deliverableId":5,"projectId":3,"title":"Logo","fileName":"logo.svg"}`))
	}))
	defer server.Close()

	client, err := gateway.New(gateway.Config{BaseURL: server.URL})
	require.NoError(t, err)

	deliverable, err := NewDeliverableAPI(client).Upload(context.Background(),
		domain.DeliverableUpload{ProjectID: 3, Title: "Logo", UploadedBy: 7, FileName: "logo.svg"},
		strings.NewReader("<svg/>"),
	)
	require.NoError(t, err)
	assert.Equal(t, int64(5), deliverable.DeliverableID)
	assert.Equal(t, map[string]string{"projectId": "3", "title": "Logo", "uploadedBy": "7"}, fields)
	assert.Equal(t, "logo.svg", fileName)
}

func TestNotificationAPIUnreadCountShapes(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		body    string
		want    int
		wantErr error
	}{
		{name: "bare number", body: `4`, want: 4},
		{name: "object", body: `{"count":2}`, want: 2},
		{name: "negative", body: `-1`, wantErr: domain.ErrInvalidPayload},
		{name: "string", body: `"many"`, wantErr: domain.ErrInvalidPayload},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			client, _ := newBackend(t, map[string]string{
				"GET /notifications/user/7/unread-count": tc.body,
			})

			count, err := NewNotificationAPI(client).UnreadCount(context.Background(), 7)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, count)
		})
	}
}

func TestCartAndInventoryRoutes(t *testing.T) {
	t.Parallel()

	item := `{"cartItemId":11,"userId":7,"productId":2,"unitPrice":4.5,"quantity":2}`
	client, requests := newBackend(t, map[string]string{
		"GET /cart/user/7":                    "[" + item + "]",
		"POST /cart/add":                      item,
		"PUT /cart/11/quantity":               item,
		"DELETE /cart/11":                     "",
		"DELETE /cart/user/7/clear":           "",
		"GET /inventory/low-stock":            `[{"alertId":1,"productId":2,"productName":"Mug","stock":1,"threshold":5}]`,
		"PUT /inventory/alerts/1/acknowledge": "",
	})
	ctx := context.Background()
	cart := NewCartAPI(client)
	inventory := NewInventoryAPI(client)

	items, err := cart.ListForUser(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	_, err = cart.Add(ctx, domain.NewCartItem{UserID: 7, ProductID: 2, Quantity: 2})
	require.NoError(t, err)
	_, err = cart.UpdateQuantity(ctx, 11, 2)
	require.NoError(t, err)
	require.NoError(t, cart.Remove(ctx, 11))
	require.NoError(t, cart.Clear(ctx, 7))

	alerts, err := inventory.LowStock(ctx, 5)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "Mug", alerts[0].ProductName)
	require.NoError(t, inventory.Acknowledge(ctx, 1))

	require.Len(t, *requests, 7)
	assert.JSONEq(t, `{"quantity":2}`, (*requests)[2].Body)
	assert.Equal(t, "threshold=5", (*requests)[5].Query)
}

func TestSheetAPIParsesTypedCells(t *testing.T) {
	t.Parallel()

	client, _ := newBackend(t, map[string]string{
		"GET /sheets/Projects/rows":  `{"sheet":"Projects","rows":[["Website",40,true],[null,"",2.5]]}`,
		"POST /sheets/sync/projects": `{"state":"COMPLETED","rowsWritten":2}`,
		"GET /sheets/sync/status":    `{"resource":"projects","state":"IDLE","rowsWritten":0}`,
	})
	api := NewSheetAPI(client)
	ctx := context.Background()

	rows, err := api.Rows(ctx, "Projects")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, domain.SheetRow{Index: 1, Cells: []domain.SheetCell{
		domain.TextCell("Website"), domain.NumberCell(40), domain.BoolCell(true),
	}}, rows[0])
	assert.Equal(t, int64(2), rows[1].Index)
	assert.Equal(t, domain.CellEmpty, rows[1].Cells[0].Kind)
	assert.Equal(t, domain.CellEmpty, rows[1].Cells[1].Kind)

	result, err := api.Sync(ctx, "projects")
	require.NoError(t, err)
	assert.Equal(t, "projects", result.Resource)
	assert.Equal(t, 2, result.RowsWritten)

	status, err := api.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.SyncIdle, status.State)
}

func TestSheetAPIRejectsNestedCells(t *testing.T) {
	t.Parallel()

	_, err := parseSheetRows(json.RawMessage(`{"rows":[["ok",{"nested":true}]]}`))
	require.ErrorIs(t, err, domain.ErrInvalidPayload)

	_, err = parseSheetRows(json.RawMessage(`{"rows":"nope"}`))
	require.ErrorIs(t, err, domain.ErrInvalidPayload)
}

func TestSyncRejectsUnknownState(t *testing.T) {
	t.Parallel()

	client, _ := newBackend(t, map[string]string{
		"POST /sheets/sync/tasks": `{"state":"EXPLODED"}`,
	})

	_, err := NewSheetAPI(client).Sync(context.Background(), "tasks")
	require.ErrorIs(t, err, domain.ErrInvalidPayload)
}
