package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftdex/companion/internal/domain"
)

type fakeSnapshotService struct {
	exportData []byte
	exportErr  error
	importErr  error

	imported [][]byte
}

func (f *fakeSnapshotService) Export(ctx context.Context) ([]byte, error) {
	return f.exportData, f.exportErr
}

func (f *fakeSnapshotService) Import(ctx context.Context, data []byte) error {
	if f.importErr != nil {
		return f.importErr
	}
	f.imported = append(f.imported, data)
	return nil
}

func TestHandleExportSnapshot(t *testing.T) {
	svc := &fakeSnapshotService{exportData: []byte(`{"plannerEntries":[],"customIngredientAnnotations":{}}`)}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/snapshot", nil)
	rec := httptest.NewRecorder()
	HandleExportSnapshot(svc)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "planner-snapshot.json")
	assert.JSONEq(t, string(svc.exportData), rec.Body.String())
}

func TestHandleImportSnapshot(t *testing.T) {
	svc := &fakeSnapshotService{}

	body := `{"plannerEntries":[],"customIngredientAnnotations":{}}`
	rec := postJSON(t, HandleImportSnapshot(svc, 1024), body)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, svc.imported, 1)
}

func TestHandleImportSnapshotRejected(t *testing.T) {
	svc := &fakeSnapshotService{importErr: domain.ErrInvalidSnapshot}

	rec := postJSON(t, HandleImportSnapshot(svc, 1024), `{"plannerEntries":"nope"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, svc.imported)
}

func TestHandleImportSnapshotTooLarge(t *testing.T) {
	svc := &fakeSnapshotService{}

	oversized := `{"plannerEntries":[` + strings.Repeat(`{},`, 100) + `{}],"customIngredientAnnotations":{}}`
	rec := postJSON(t, HandleImportSnapshot(svc, 16), oversized)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Empty(t, svc.imported)
}
