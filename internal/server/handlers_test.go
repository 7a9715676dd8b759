package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/maxixo/datavista/internal/dataset"
	"github.com/maxixo/datavista/internal/remote"
	"github.com/maxixo/datavista/internal/store"
)

func newTestHandler(t *testing.T) (*MockworkspaceManager, *MocksyncEngine, http.Handler) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	ws := NewMockworkspaceManager(ctrl)
	eng := NewMocksyncEngine(ctrl)
	h := &handler{workspace: ws, engine: eng}
	return ws, eng, h.routes()
}

func doRequest(routes http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	routes.ServeHTTP(rec, req)
	return rec
}

func TestHandler_ListDatasets(t *testing.T) {
	t.Run("requires owner query parameter", func(t *testing.T) {
		_, _, routes := newTestHandler(t)

		rec := doRequest(routes, http.MethodGet, "/datasets", "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("returns datasets for owner", func(t *testing.T) {
		ws, _, routes := newTestHandler(t)
		ws.EXPECT().ListByOwner("user-1").Return([]*dataset.Dataset{
			{ID: "d1", OwnerID: "user-1", Name: "sales"},
		}, nil)

		rec := doRequest(routes, http.MethodGet, "/datasets?owner=user-1", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Datasets []*dataset.Dataset `json:"datasets"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Datasets, 1)
		require.Equal(t, "sales", resp.Datasets[0].Name)
	})

	t.Run("store failure maps to 503", func(t *testing.T) {
		ws, _, routes := newTestHandler(t)
		ws.EXPECT().ListByOwner("user-1").Return(nil, fmt.Errorf("%w: disk gone", store.ErrUnavailable))

		rec := doRequest(routes, http.MethodGet, "/datasets?owner=user-1", "")
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestHandler_CreateDataset(t *testing.T) {
	t.Run("creates from csv content", func(t *testing.T) {
		ws, _, routes := newTestHandler(t)
		ws.EXPECT().
			Create("user-1", "sales", []dataset.Row{
				{"region": "east", "total": float64(10)},
				{"region": "west", "total": float64(20)},
			}).
			Return(&dataset.Dataset{ID: "d1", OwnerID: "user-1", Name: "sales", RowCount: 2}, nil)

		body := `{"ownerId":"user-1","name":"sales","format":"csv","content":"region,total\neast,10\nwest,20\n"}`
		rec := doRequest(routes, http.MethodPost, "/datasets", body)
		require.Equal(t, http.StatusCreated, rec.Code)

		var resp struct {
			Dataset *dataset.Dataset `json:"dataset"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, "d1", resp.Dataset.ID)
	})

	t.Run("creates from json content", func(t *testing.T) {
		ws, _, routes := newTestHandler(t)
		ws.EXPECT().
			Create("user-1", "metrics", []dataset.Row{{"n": float64(1)}}).
			Return(&dataset.Dataset{ID: "d2"}, nil)

		body := `{"ownerId":"user-1","name":"metrics","format":"json","content":"[{\"n\":1}]"}`
		rec := doRequest(routes, http.MethodPost, "/datasets", body)
		require.Equal(t, http.StatusCreated, rec.Code)
	})

	tests := map[string]struct {
		body string
	}{
		"invalid body":          {body: `{not json`},
		"missing owner":         {body: `{"name":"sales","format":"csv","content":"a\n1\n"}`},
		"missing name":          {body: `{"ownerId":"user-1","format":"csv","content":"a\n1\n"}`},
		"unknown format":        {body: `{"ownerId":"user-1","name":"x","format":"xml","content":"<a/>"}`},
		"empty csv content":     {body: `{"ownerId":"user-1","name":"x","format":"csv","content":""}`},
		"malformed json upload": {body: `{"ownerId":"user-1","name":"x","format":"json","content":"{\"a\":1}"}`},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, routes := newTestHandler(t)

			rec := doRequest(routes, http.MethodPost, "/datasets", tc.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandler_GetDataset(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		ws, _, routes := newTestHandler(t)
		ws.EXPECT().Get("d1").Return(&dataset.Dataset{ID: "d1", Name: "sales"}, nil)

		rec := doRequest(routes, http.MethodGet, "/datasets/d1", "")
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing maps to 404", func(t *testing.T) {
		ws, _, routes := newTestHandler(t)
		ws.EXPECT().Get("nope").Return(nil, store.ErrNotFound)

		rec := doRequest(routes, http.MethodGet, "/datasets/nope", "")
		require.Equal(t, http.StatusNotFound, rec.Code)

		var resp errorEnvelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.Error)
	})
}

func TestHandler_UpdateDataset(t *testing.T) {
	ws, _, routes := newTestHandler(t)
	ws.EXPECT().
		Update("d1", "renamed", []dataset.Row{{"a": float64(1)}}).
		Return(&dataset.Dataset{ID: "d1", Name: "renamed", RowCount: 1}, nil)

	body := `{"name":"renamed","rows":[{"a":1}]}`
	rec := doRequest(routes, http.MethodPut, "/datasets/d1", body)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_DeleteDataset(t *testing.T) {
	ws, _, routes := newTestHandler(t)
	ws.EXPECT().Delete("d1").Return(nil)

	rec := doRequest(routes, http.MethodDelete, "/datasets/d1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"success": true}`, rec.Body.String())
}

func TestHandler_TransformDataset(t *testing.T) {
	ws, _, routes := newTestHandler(t)
	ws.EXPECT().Get("d1").Return(&dataset.Dataset{
		ID: "d1",
		Rows: []dataset.Row{
			{"region": "east", "total": float64(10)},
			{"region": "west", "total": float64(20)},
			{"region": "east", "total": float64(5)},
		},
	}, nil)

	body := `{"filters":[{"column":"region","operator":"equals","value":"east"}],"sort":{"column":"total","direction":"asc"}}`
	rec := doRequest(routes, http.MethodPost, "/datasets/d1/transform", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Rows     []dataset.Row `json:"rows"`
		RowCount int           `json:"rowCount"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 2, resp.RowCount)
	require.Equal(t, float64(5), resp.Rows[0]["total"])
	require.Equal(t, float64(10), resp.Rows[1]["total"])
}

func TestHandler_SyncStatus(t *testing.T) {
	ws, eng, routes := newTestHandler(t)
	ws.EXPECT().PendingCount().Return(3, nil)
	eng.EXPECT().Online().Return(true)
	eng.EXPECT().Draining().Return(false)

	rec := doRequest(routes, http.MethodGet, "/sync/status", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"pending": 3, "online": true, "draining": false}`, rec.Body.String())
}

func TestHandler_SyncOnline(t *testing.T) {
	t.Run("forwards connectivity flips", func(t *testing.T) {
		_, eng, routes := newTestHandler(t)
		eng.EXPECT().OnConnectivityChange(true)

		rec := doRequest(routes, http.MethodPost, "/sync/online", `{"online":true}`)
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"online": true}`, rec.Body.String())
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		_, _, routes := newTestHandler(t)

		rec := doRequest(routes, http.MethodPost, "/sync/online", `online`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_SyncRefresh(t *testing.T) {
	t.Run("reports fetched count", func(t *testing.T) {
		ws, _, routes := newTestHandler(t)
		ws.EXPECT().SyncFromRemote(gomock.Any()).Return(2, nil)

		rec := doRequest(routes, http.MethodPost, "/sync/refresh", "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"fetched": 2}`, rec.Body.String())
	})

	t.Run("auth failure maps to 401", func(t *testing.T) {
		ws, _, routes := newTestHandler(t)
		ws.EXPECT().SyncFromRemote(gomock.Any()).Return(0, remote.ErrUnauthorized)

		rec := doRequest(routes, http.MethodPost, "/sync/refresh", "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
