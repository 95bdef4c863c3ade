package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionIsAuthenticatedRequiresUserAndToken(t *testing.T) {
	t.Parallel()

	user := &User{UserID: 1, Email: "ada@example.com"}
	testCases := []struct {
		name    string
		session Session
		want    bool
	}{
		{name: "empty", session: Session{}, want: false},
		{name: "user only", session: Session{User: user}, want: false},
		{name: "token only", session: Session{Token: "tok"}, want: false},
		{name: "both", session: Session{User: user, Token: "tok"}, want: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.session.IsAuthenticated())
			if tc.want {
				assert.Equal(t, SessionAuthenticated, tc.session.State())
			} else {
				assert.Equal(t, SessionAnonymous, tc.session.State())
			}
		})
	}
}

func TestSessionCloneDoesNotShareUser(t *testing.T) {
	t.Parallel()

	original := Session{User: &User{UserID: 1, Name: "Ada"}, Token: "tok"}
	clone := original.Clone()
	clone.User.Name = "Grace"

	assert.Equal(t, "Ada", original.User.Name)
}

func TestUserPatchAppliesOnlySetFields(t *testing.T) {
	t.Parallel()

	name := "Ada Lovelace"
	user := User{UserID: 1, Name: "Ada", Email: "ada@example.com", Phone: "123"}
	UserPatch{Name: &name}.ApplyTo(&user)

	assert.Equal(t, User{UserID: 1, Name: "Ada Lovelace", Email: "ada@example.com", Phone: "123"}, user)
}

func TestParseStatusesNormalizeInput(t *testing.T) {
	t.Parallel()

	status, err := ParseTaskStatus("in-progress")
	require.NoError(t, err)
	assert.Equal(t, TaskInProgress, status)

	projectStatus, err := ParseProjectStatus(" completed ")
	require.NoError(t, err)
	assert.Equal(t, ProjectCompleted, projectStatus)

	_, err = ParseTaskStatus("blocked")
	require.Error(t, err)

	role, err := ParseRole("admin")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)

	priority, err := ParseTaskPriority("high")
	require.NoError(t, err)
	assert.Equal(t, PriorityHigh, priority)

	_, err = ParseTaskPriority("urgent")
	require.Error(t, err)
}

func TestEntityValidationRejectsMissingIDs(t *testing.T) {
	t.Parallel()

	for _, entity := range []Entity{Project{}, Task{}, Deliverable{}, Notification{}, CartItem{}, LowStockAlert{}, SheetRow{}, User{}} {
		err := entity.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidPayload), "%T", entity)
	}
}

func TestProjectValidateRejectsProgressOutOfRange(t *testing.T) {
	t.Parallel()

	err := Project{ProjectID: 1, Progress: 120}.Validate()
	require.ErrorIs(t, err, ErrInvalidPayload)
	assert.Contains(t, err.Error(), "progress 120 out of range")
}

func TestSheetCellString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Draft", TextCell("Draft").String())
	assert.Equal(t, "42.5", NumberCell(42.5).String())
	assert.Equal(t, "true", BoolCell(true).String())
	assert.Equal(t, "", SheetCell{Kind: CellEmpty}.String())
}

func TestCartItemSubtotal(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 29.97, CartItem{UnitPrice: 9.99, Quantity: 3}.Subtotal(), 0.0001)
}
