package services

import (
	"mime/multipart"

	"laptop-shop/models"
)

// EditorMode is the explicit form mode; submit behavior is governed by the
// tag, never by guessing from leftover form state.
type EditorMode int

const (
	Creating EditorMode = iota
	Editing
)

// FormState is the admin editor's tagged state. Record is only meaningful
// in Editing mode and then carries the record being edited.
type FormState struct {
	Mode   EditorMode
	Record models.Product
}

func (s FormState) IsEditing() bool {
	return s.Mode == Editing
}

// NewRecordState returns a Creating form prefilled with the new-record
// defaults used by the shop.
func NewRecordState() FormState {
	return FormState{
		Mode: Creating,
		Record: models.Product{
			Grade:        "Like New",
			FullFunction: true,
			Notes:        "Không có",
			Warranty:     "3 tháng tại cửa hàng",
			Enabled:      true,
		},
	}
}

func EditingState(record models.Product) FormState {
	return FormState{Mode: Editing, Record: record}
}

// AdminProductAPI is the slice of the backend client the editor needs.
type AdminProductAPI interface {
	AddProduct(token string, product models.Product, image *multipart.FileHeader) error
	UpdateProduct(token string, id int, product models.Product, image *multipart.FileHeader) error
	DeleteProduct(token string, id int) error
}

type EditorService struct {
	repo AdminProductAPI
}

func NewEditorService(repo AdminProductAPI) *EditorService {
	return &EditorService{repo: repo}
}

// Submit routes to the add or update endpoint according to the form mode.
// The client trims every string field before the payload leaves.
func (s *EditorService) Submit(token string, state FormState, image *multipart.FileHeader) error {
	if state.Mode == Editing {
		return s.repo.UpdateProduct(token, state.Record.IDProduct, state.Record, image)
	}
	return s.repo.AddProduct(token, state.Record, image)
}

// Delete is an immediate destructive action; there is no confirmation step.
func (s *EditorService) Delete(token string, id int) error {
	return s.repo.DeleteProduct(token, id)
}
