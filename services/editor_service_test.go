package services

import (
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptop-shop/models"
)

type fakeAdminAPI struct {
	added    int
	updated  int
	deleted  int
	lastID   int
	lastRec  models.Product
	lastToke string
}

func (f *fakeAdminAPI) AddProduct(token string, p models.Product, image *multipart.FileHeader) error {
	f.added++
	f.lastToke = token
	f.lastRec = p
	return nil
}

func (f *fakeAdminAPI) UpdateProduct(token string, id int, p models.Product, image *multipart.FileHeader) error {
	f.updated++
	f.lastID = id
	f.lastRec = p
	return nil
}

func (f *fakeAdminAPI) DeleteProduct(token string, id int) error {
	f.deleted++
	f.lastID = id
	return nil
}

func TestNewRecordDefaults(t *testing.T) {
	state := NewRecordState()

	assert.Equal(t, Creating, state.Mode)
	assert.False(t, state.IsEditing())
	assert.Equal(t, "Like New", state.Record.Grade)
	assert.True(t, state.Record.FullFunction)
	assert.True(t, state.Record.Enabled)
	assert.Equal(t, "Không có", state.Record.Notes)
	assert.Equal(t, "3 tháng tại cửa hàng", state.Record.Warranty)
}

func TestSubmitCreatingCallsAdd(t *testing.T) {
	repo := &fakeAdminAPI{}
	svc := NewEditorService(repo)

	state := NewRecordState()
	state.Record.ModelName = "ThinkPad T480"
	require.NoError(t, svc.Submit("tok", state, nil))

	assert.Equal(t, 1, repo.added)
	assert.Zero(t, repo.updated)
	assert.Equal(t, "tok", repo.lastToke)
}

func TestSubmitEditingCallsUpdateForRecordID(t *testing.T) {
	repo := &fakeAdminAPI{}
	svc := NewEditorService(repo)

	state := EditingState(models.Product{IDProduct: 42, ModelName: "XPS 15"})
	require.True(t, state.IsEditing())
	require.NoError(t, svc.Submit("tok", state, nil))

	assert.Zero(t, repo.added)
	assert.Equal(t, 1, repo.updated)
	assert.Equal(t, 42, repo.lastID)
}

func TestDeleteIsImmediate(t *testing.T) {
	repo := &fakeAdminAPI{}
	svc := NewEditorService(repo)

	require.NoError(t, svc.Delete("tok", 42))
	assert.Equal(t, 1, repo.deleted)
	assert.Equal(t, 42, repo.lastID)
}
