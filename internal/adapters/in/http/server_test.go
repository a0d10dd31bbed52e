package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"agencysim/internal/adapters/out/memory/parcelrepo"
	"agencysim/internal/core/application/usecases/commands"
	"agencysim/internal/core/application/usecases/queries"
	"agencysim/internal/core/domain/model/kernel"
	"agencysim/internal/core/domain/model/parcel"
	"agencysim/internal/core/domain/model/simulation"
	"agencysim/internal/core/ports"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopNotifier struct{}

func (noopNotifier) Notify(context.Context, *parcel.Parcel) {}

// stubScheduler accepts every run without driving any transitions.
type stubScheduler struct {
	started []kernel.TrackingNumber
}

func (s *stubScheduler) Start(
	_ context.Context,
	trackingNumber kernel.TrackingNumber,
	plan simulation.Plan,
) (ports.RunHandle, error) {
	s.started = append(s.started, trackingNumber)
	return ports.RunHandle{RunID: uuid.New(), Plan: plan}, nil
}

func (s *stubScheduler) Stop(uuid.UUID) error { return nil }

func newTestServer() *echo.Echo {
	repo := parcelrepo.NewRepository()
	updateHandler := commands.NewUpdateParcelStatusCommandHandler(repo, noopNotifier{})

	server := NewServer(
		commands.NewCreateParcelCommandHandler(repo),
		updateHandler,
		commands.NewStartSimulationCommandHandler(&stubScheduler{}),
		queries.NewGetParcelQueryHandler(repo),
		queries.NewListParcelsQueryHandler(repo),
	)

	e := echo.New()
	server.RegisterRoutes(e)
	return e
}

func doRequest(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) (Envelope, map[string]any) {
	t.Helper()
	var envelope Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	data, _ := envelope.Data.(map[string]any)
	return envelope, data
}

const validCreateBody = `{
	"order_id": "ORD1",
	"customer_name": "A",
	"customer_phone": "000",
	"customer_address": "X",
	"price": 1000
}`

func TestCreateParcel(t *testing.T) {
	t.Run("valid_request", func(t *testing.T) {
		e := newTestServer()

		rec := doRequest(e, http.MethodPost, "/api/v1/parcels", validCreateBody)
		require.Equal(t, http.StatusCreated, rec.Code)

		envelope, data := decodeEnvelope(t, rec)
		assert.True(t, envelope.Success)
		assert.Equal(t, "TRK-00000001", data["tracking_number"])
		assert.Equal(t, "pending_pickup", data["status"])
		assert.Equal(t, float64(1000), data["cod_amount"])
		assert.Equal(t, "Alger", data["wilaya"])
		assert.Equal(t, "Alger Centre", data["commune"])
		assert.Nil(t, data["delivered_at"])

		history, ok := data["status_history"].([]any)
		require.True(t, ok)
		assert.Len(t, history, 1)
	})

	t.Run("missing_required_field_adds_nothing", func(t *testing.T) {
		e := newTestServer()

		rec := doRequest(e, http.MethodPost, "/api/v1/parcels",
			`{"order_id": "ORD1", "customer_name": "A", "price": 1000}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		envelope, _ := decodeEnvelope(t, rec)
		assert.False(t, envelope.Success)
		assert.NotEmpty(t, envelope.Message)

		rec = doRequest(e, http.MethodGet, "/api/v1/parcels", "")
		require.Equal(t, http.StatusOK, rec.Code)
		envelope, _ = decodeEnvelope(t, rec)
		require.NotNil(t, envelope.Count)
		assert.Equal(t, 0, *envelope.Count)
	})

	t.Run("non_positive_price", func(t *testing.T) {
		e := newTestServer()

		rec := doRequest(e, http.MethodPost, "/api/v1/parcels",
			`{"order_id": "ORD1", "customer_name": "A", "customer_phone": "000", "customer_address": "X", "price": 0}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetParcel(t *testing.T) {
	t.Run("known_tracking_number", func(t *testing.T) {
		e := newTestServer()
		doRequest(e, http.MethodPost, "/api/v1/parcels", validCreateBody)

		rec := doRequest(e, http.MethodGet, "/api/v1/parcels/TRK-00000001", "")
		require.Equal(t, http.StatusOK, rec.Code)

		envelope, data := decodeEnvelope(t, rec)
		assert.True(t, envelope.Success)
		assert.Equal(t, "ORD1", data["order_id"])
	})

	t.Run("unknown_tracking_number", func(t *testing.T) {
		e := newTestServer()

		rec := doRequest(e, http.MethodGet, "/api/v1/parcels/TRK-00000099", "")
		require.Equal(t, http.StatusNotFound, rec.Code)

		envelope, _ := decodeEnvelope(t, rec)
		assert.False(t, envelope.Success)
	})

	t.Run("malformed_tracking_number", func(t *testing.T) {
		e := newTestServer()

		rec := doRequest(e, http.MethodGet, "/api/v1/parcels/bogus", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListParcels(t *testing.T) {
	e := newTestServer()
	doRequest(e, http.MethodPost, "/api/v1/parcels", validCreateBody)
	doRequest(e, http.MethodPost, "/api/v1/parcels", strings.Replace(validCreateBody, "ORD1", "ORD2", 1))

	rec := doRequest(e, http.MethodGet, "/api/v1/parcels", "")
	require.Equal(t, http.StatusOK, rec.Code)

	envelope, _ := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)
	require.NotNil(t, envelope.Count)
	assert.Equal(t, 2, *envelope.Count)

	list, ok := envelope.Data.([]any)
	require.True(t, ok)
	assert.Len(t, list, 2)
}

func TestUpdateParcelStatus(t *testing.T) {
	t.Run("valid_transition", func(t *testing.T) {
		e := newTestServer()
		doRequest(e, http.MethodPost, "/api/v1/parcels", validCreateBody)

		rec := doRequest(e, http.MethodPut, "/api/v1/parcels/TRK-00000001/status",
			`{"status": "collected", "note": "Picked up at the depot"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		envelope, data := decodeEnvelope(t, rec)
		assert.True(t, envelope.Success)
		assert.Equal(t, "collected", data["status"])

		history, ok := data["status_history"].([]any)
		require.True(t, ok)
		require.Len(t, history, 2)
		last, ok := history[1].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "collected", last["status"])
		assert.Equal(t, "Picked up at the depot", last["note"])
	})

	t.Run("delivered_sets_delivered_at", func(t *testing.T) {
		e := newTestServer()
		doRequest(e, http.MethodPost, "/api/v1/parcels", validCreateBody)

		rec := doRequest(e, http.MethodPut, "/api/v1/parcels/TRK-00000001/status",
			`{"status": "delivered"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		_, data := decodeEnvelope(t, rec)
		assert.NotNil(t, data["delivered_at"])
	})

	t.Run("invalid_status_leaves_parcel_unchanged", func(t *testing.T) {
		e := newTestServer()
		doRequest(e, http.MethodPost, "/api/v1/parcels", validCreateBody)

		rec := doRequest(e, http.MethodPut, "/api/v1/parcels/TRK-00000001/status",
			`{"status": "teleported"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		rec = doRequest(e, http.MethodGet, "/api/v1/parcels/TRK-00000001", "")
		_, data := decodeEnvelope(t, rec)
		assert.Equal(t, "pending_pickup", data["status"])
	})

	t.Run("unknown_tracking_number", func(t *testing.T) {
		e := newTestServer()

		rec := doRequest(e, http.MethodPut, "/api/v1/parcels/TRK-00000042/status",
			`{"status": "collected"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestSimulateParcel(t *testing.T) {
	t.Run("default_plan", func(t *testing.T) {
		e := newTestServer()
		doRequest(e, http.MethodPost, "/api/v1/parcels", validCreateBody)

		rec := doRequest(e, http.MethodPost, "/api/v1/parcels/TRK-00000001/simulate", "")
		require.Equal(t, http.StatusOK, rec.Code)

		envelope, data := decodeEnvelope(t, rec)
		assert.True(t, envelope.Success)
		assert.NotEmpty(t, data["run_id"])
		assert.Equal(t, "default", data["scenario"])
		assert.Equal(t, "normal", data["speed"])
		assert.Equal(t, float64(5), data["steps"])
		assert.Equal(t, float64(25), data["estimated_duration_seconds"])
	})

	t.Run("explicit_plan", func(t *testing.T) {
		e := newTestServer()
		doRequest(e, http.MethodPost, "/api/v1/parcels", validCreateBody)

		rec := doRequest(e, http.MethodPost, "/api/v1/parcels/TRK-00000001/simulate",
			`{"speed": "fast", "scenario": "failed"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		_, data := decodeEnvelope(t, rec)
		assert.Equal(t, "failed", data["scenario"])
		assert.Equal(t, "fast", data["speed"])
		assert.Equal(t, float64(10), data["estimated_duration_seconds"])
	})

	t.Run("unrecognized_values_fall_back_to_defaults", func(t *testing.T) {
		e := newTestServer()
		doRequest(e, http.MethodPost, "/api/v1/parcels", validCreateBody)

		rec := doRequest(e, http.MethodPost, "/api/v1/parcels/TRK-00000001/simulate",
			`{"speed": "ludicrous", "scenario": "heist"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		_, data := decodeEnvelope(t, rec)
		assert.Equal(t, "default", data["scenario"])
		assert.Equal(t, "normal", data["speed"])
	})
}
