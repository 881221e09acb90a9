package console

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdeano/dentacare/models"
)

// Compile-time check to ensure memCollection implements Collection
var _ Collection[models.Patient] = (*memCollection[models.Patient])(nil)

// memCollection is an in-memory Collection with switchable failures, standing
// in for the remote data service.
type memCollection[T any] struct {
	rows  []T
	idOf  func(T) string
	setID func(*T, string)
	next  int

	failList   bool
	failInsert bool
	failUpdate bool
	failDelete bool
}

func (m *memCollection[T]) List(ctx context.Context) ([]T, error) {
	if m.failList {
		return nil, errors.New("list failed")
	}
	out := make([]T, len(m.rows))
	copy(out, m.rows)
	return out, nil
}

func (m *memCollection[T]) Insert(ctx context.Context, v T) error {
	if m.failInsert {
		return errors.New("insert failed")
	}
	m.next++
	m.setID(&v, fmt.Sprintf("id-%d", m.next))
	m.rows = append(m.rows, v)
	return nil
}

func (m *memCollection[T]) Update(ctx context.Context, id string, v T) error {
	if m.failUpdate {
		return errors.New("update failed")
	}
	for i, row := range m.rows {
		if m.idOf(row) == id {
			m.setID(&v, id)
			m.rows[i] = v
			return nil
		}
	}
	return errors.New("not found")
}

func (m *memCollection[T]) Delete(ctx context.Context, id string) error {
	if m.failDelete {
		return errors.New("delete failed")
	}
	for i, row := range m.rows {
		if m.idOf(row) == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

var patientSchema = Schema[models.Patient]{
	Defaults: func() models.Patient { return models.Patient{} },
	ID:       func(p models.Patient) string { return p.ID },
}

func newPatientStore(seed ...models.Patient) *memCollection[models.Patient] {
	return &memCollection[models.Patient]{
		rows:  seed,
		idOf:  func(p models.Patient) string { return p.ID },
		setID: func(p *models.Patient, id string) { p.ID = id },
		next:  len(seed),
	}
}

func TestControllerLoadReplacesCollection(t *testing.T) {
	store := newPatientStore(
		models.Patient{ID: "p1", FirstName: "Ana", LastName: "Cruz"},
		models.Patient{ID: "p2", FirstName: "Ben", LastName: "Reyes"},
	)
	ctrl := NewController[models.Patient](store, patientSchema)

	require.NoError(t, ctrl.Load(context.Background()))
	assert.Len(t, ctrl.Items(), 2)
	assert.Equal(t, "p1", ctrl.Items()[0].ID)
}

func TestControllerLoadIsIdempotent(t *testing.T) {
	store := newPatientStore(
		models.Patient{ID: "p1", FirstName: "Ana", LastName: "Cruz"},
		models.Patient{ID: "p2", FirstName: "Ben", LastName: "Reyes"},
	)
	ctrl := NewController[models.Patient](store, patientSchema)

	require.NoError(t, ctrl.Load(context.Background()))
	first := ctrl.Items()
	require.NoError(t, ctrl.Load(context.Background()))

	assert.Equal(t, first, ctrl.Items())
}

func TestControllerLoadFailureKeepsCollection(t *testing.T) {
	store := newPatientStore(models.Patient{ID: "p1", FirstName: "Ana", LastName: "Cruz"})
	ctrl := NewController[models.Patient](store, patientSchema)
	require.NoError(t, ctrl.Load(context.Background()))

	store.failList = true
	err := ctrl.Load(context.Background())

	require.Error(t, err)
	assert.Len(t, ctrl.Items(), 1, "collection must stay as it was")
	assert.Equal(t, "list failed", ctrl.Err())
}

func TestControllerLoadSuccessDoesNotClearPriorError(t *testing.T) {
	store := newPatientStore(models.Patient{ID: "p1"})
	ctrl := NewController[models.Patient](store, patientSchema)

	store.failDelete = true
	require.Error(t, ctrl.Delete(context.Background(), "p1"))
	require.NotEmpty(t, ctrl.Err())

	require.NoError(t, ctrl.Load(context.Background()))
	assert.Equal(t, "delete failed", ctrl.Err(), "only a successful mutation or Reset clears the error")
}

func TestControllerSubmitCreate(t *testing.T) {
	store := newPatientStore()
	ctrl := NewController[models.Patient](store, patientSchema)
	require.NoError(t, ctrl.Load(context.Background()))

	*ctrl.Draft() = models.Patient{
		FirstName: "Ana",
		LastName:  "Cruz",
		DOB:       "1990-01-01",
		Email:     "a@x.com",
		Phone:     "555",
		Address:   "",
	}
	require.NoError(t, ctrl.Submit(context.Background()))

	require.Len(t, ctrl.Items(), 1)
	got := ctrl.Items()[0]
	assert.NotEmpty(t, got.ID, "a new id is assigned on creation")
	assert.Equal(t, "Ana", got.FirstName)
	assert.Equal(t, "Cruz", got.LastName)
	assert.Equal(t, "1990-01-01", got.DOB)
	assert.Equal(t, "a@x.com", got.Email)
	assert.Equal(t, "555", got.Phone)
	assert.Equal(t, "", got.Address)

	assert.Equal(t, models.Patient{}, *ctrl.Draft(), "draft resets to defaults")
	_, editing := ctrl.Editing()
	assert.False(t, editing)
	assert.Empty(t, ctrl.Err())
}

func TestControllerSubmitEditTargetsOnlyThatEntity(t *testing.T) {
	store := newPatientStore(
		models.Patient{ID: "p1", FirstName: "Ana", LastName: "Cruz", Phone: "555"},
		models.Patient{ID: "p2", FirstName: "Ben", LastName: "Reyes", Phone: "777"},
	)
	ctrl := NewController[models.Patient](store, patientSchema)
	require.NoError(t, ctrl.Load(context.Background()))

	require.True(t, ctrl.BeginEdit("p1"))
	id, editing := ctrl.Editing()
	require.True(t, editing)
	assert.Equal(t, "p1", id)
	assert.Equal(t, "Ana", ctrl.Draft().FirstName, "draft starts from the entity's fields")

	ctrl.Draft().Phone = "999"
	require.NoError(t, ctrl.Submit(context.Background()))

	require.Len(t, ctrl.Items(), 2)
	for _, p := range ctrl.Items() {
		switch p.ID {
		case "p1":
			assert.Equal(t, "999", p.Phone)
		case "p2":
			assert.Equal(t, "777", p.Phone, "other entities are unchanged")
		}
	}
	_, editing = ctrl.Editing()
	assert.False(t, editing, "mode returns to create after a successful edit")
}

func TestControllerSubmitFailurePreservesDraftAndMode(t *testing.T) {
	store := newPatientStore(models.Patient{ID: "p1", FirstName: "Ana", LastName: "Cruz"})
	ctrl := NewController[models.Patient](store, patientSchema)
	require.NoError(t, ctrl.Load(context.Background()))

	require.True(t, ctrl.BeginEdit("p1"))
	ctrl.Draft().Phone = "123"
	store.failUpdate = true

	require.Error(t, ctrl.Submit(context.Background()))

	assert.Equal(t, "update failed", ctrl.Err())
	assert.Equal(t, "123", ctrl.Draft().Phone, "draft is preserved for retry")
	id, editing := ctrl.Editing()
	assert.True(t, editing)
	assert.Equal(t, "p1", id)
}

func TestControllerDeleteRemovesOnlyThatEntity(t *testing.T) {
	store := newPatientStore(
		models.Patient{ID: "p1", FirstName: "Ana"},
		models.Patient{ID: "p2", FirstName: "Ben"},
	)
	ctrl := NewController[models.Patient](store, patientSchema)
	require.NoError(t, ctrl.Load(context.Background()))

	require.NoError(t, ctrl.Delete(context.Background(), "p1"))

	require.Len(t, ctrl.Items(), 1)
	assert.Equal(t, "p2", ctrl.Items()[0].ID)
}

func TestControllerDeleteFailureLeavesCollectionStale(t *testing.T) {
	store := newPatientStore(models.Patient{ID: "p1"})
	ctrl := NewController[models.Patient](store, patientSchema)
	require.NoError(t, ctrl.Load(context.Background()))

	store.failDelete = true
	require.Error(t, ctrl.Delete(context.Background(), "p1"))

	assert.Len(t, ctrl.Items(), 1, "collection stays stale until the next Load")
	assert.Equal(t, "delete failed", ctrl.Err())
}

func TestControllerBeginEditUnknownID(t *testing.T) {
	store := newPatientStore(models.Patient{ID: "p1"})
	ctrl := NewController[models.Patient](store, patientSchema)
	require.NoError(t, ctrl.Load(context.Background()))

	assert.False(t, ctrl.BeginEdit("missing"))
	_, editing := ctrl.Editing()
	assert.False(t, editing)
}

func TestControllerReset(t *testing.T) {
	store := newPatientStore(models.Patient{ID: "p1", FirstName: "Ana"})
	ctrl := NewController[models.Patient](store, patientSchema)
	require.NoError(t, ctrl.Load(context.Background()))

	require.True(t, ctrl.BeginEdit("p1"))
	store.failUpdate = true
	require.Error(t, ctrl.Submit(context.Background()))

	ctrl.Reset()

	assert.Equal(t, models.Patient{}, *ctrl.Draft())
	_, editing := ctrl.Editing()
	assert.False(t, editing)
	assert.Empty(t, ctrl.Err())
}
