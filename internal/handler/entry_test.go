package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/twkim02/todoc-chat-ai/internal/auth"
	"github.com/twkim02/todoc-chat-ai/internal/children"
	"github.com/twkim02/todoc-chat-ai/internal/journal"
	"github.com/twkim02/todoc-chat-ai/pkg/model"
)

type fakeChildStore struct {
	child children.Child
}

func (f *fakeChildStore) GetByID(ctx context.Context, id string) (children.Child, error) {
	if id != f.child.ID {
		return children.Child{}, errors.New("child not found")
	}
	return f.child, nil
}

type fakeEntryStore struct {
	failCreate bool
	created    []journal.Entry
}

func (f *fakeEntryStore) Create(ctx context.Context, childID string, e journal.Entry) (journal.Entry, error) {
	if f.failCreate {
		return journal.Entry{}, errors.New("insert entry: connection refused")
	}
	if e.ID == "" {
		e.ID = "entry-1"
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	f.created = append(f.created, e)
	return e, nil
}

func (f *fakeEntryStore) ListByChild(ctx context.Context, childID string, limit, offset int) ([]journal.Entry, int, error) {
	return nil, 0, nil
}

func newEntryTestApp(entries *fakeEntryStore) (*Application, children.Child) {
	child := children.Child{ID: "child-1", UserID: "user-1", Name: "Mina"}
	app := &Application{
		Logger:    zap.NewNop(),
		ChildRepo: &fakeChildStore{child: child},
		EntryRepo: entries,
		Recents:   journal.NewStores(),
	}
	return app, child
}

func performCreateEntry(t *testing.T, app *Application, child children.Child, req model.CreateEntryRequest) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	body, err := json.Marshal(req)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/children/"+child.ID+"/entries", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: child.ID}}
	c.Set("claims", &auth.UserClaims{UserID: child.UserID, Email: "mom@example.com"})

	app.CreateEntry(c)
	return w
}

func TestCreateEntryAppendsToRecentsAfterPersist(t *testing.T) {
	entries := &fakeEntryStore{}
	app, child := newEntryTestApp(entries)

	w := performCreateEntry(t, app, child, model.CreateEntryRequest{
		Category: "meal",
		Title:    "Lunch",
		Date:     "2024-06-01",
		Meal:     &model.MealPayload{FoodType: "porridge", DidBurp: true},
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, entries.created, 1)

	recent := app.Recents.ForChild(child.ID).Recent(1)
	require.Len(t, recent, 1)
	assert.Equal(t, entries.created[0].ID, recent[0].ID,
		"session copy carries the persisted entry's identity")
}

func TestCreateEntryPersistFailureLeavesRecentsUntouched(t *testing.T) {
	entries := &fakeEntryStore{failCreate: true}
	app, child := newEntryTestApp(entries)

	w := performCreateEntry(t, app, child, model.CreateEntryRequest{
		Category: "meal",
		Title:    "Lunch",
		Date:     "2024-06-01",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, 0, app.Recents.ForChild(child.ID).Len(),
		"a failed durable save must not leave the entry in the session store")
}

func TestCreateEntryValidationFailureTouchesNoStore(t *testing.T) {
	entries := &fakeEntryStore{}
	app, child := newEntryTestApp(entries)

	w := performCreateEntry(t, app, child, model.CreateEntryRequest{
		Category: "meal",
		Title:    "   ",
		Date:     "2024-06-01",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Empty(t, entries.created)
	assert.Equal(t, 0, app.Recents.ForChild(child.ID).Len())
}
