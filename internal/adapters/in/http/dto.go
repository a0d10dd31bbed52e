package http

import (
	"time"

	"agencysim/internal/core/domain/model/parcel"
	"agencysim/internal/core/ports"
)

// Envelope is the uniform response body. Success responses carry data and,
// for lists, a count; error responses carry a message.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
}

// CreateParcelRequest is the body of POST /api/v1/parcels. Order reference,
// customer details and price are required; the rest is optional.
type CreateParcelRequest struct {
	OrderID         string   `json:"order_id"`
	CustomerName    string   `json:"customer_name"`
	CustomerPhone   string   `json:"customer_phone"`
	CustomerAddress string   `json:"customer_address"`
	Wilaya          string   `json:"wilaya"`
	Commune         string   `json:"commune"`
	ProductList     []string `json:"product_list"`
	Price           float64  `json:"price"`
	WebhookURL      string   `json:"webhook_url"`
}

// UpdateStatusRequest is the body of PUT /api/v1/parcels/:tracking_number/status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

// SimulateRequest is the body of POST /api/v1/parcels/:tracking_number/simulate.
// Both fields are optional; unrecognized values fall back to the defaults.
type SimulateRequest struct {
	Speed    string `json:"speed"`
	Scenario string `json:"scenario"`
}

// HistoryEntryResponse is one entry of the status ledger in API responses.
type HistoryEntryResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note"`
}

// ParcelResponse is the public view of a parcel.
type ParcelResponse struct {
	TrackingNumber  string                 `json:"tracking_number"`
	OrderID         string                 `json:"order_id"`
	CustomerName    string                 `json:"customer_name"`
	CustomerPhone   string                 `json:"customer_phone"`
	CustomerAddress string                 `json:"customer_address"`
	Wilaya          string                 `json:"wilaya"`
	Commune         string                 `json:"commune"`
	ProductList     []string               `json:"product_list"`
	Price           float64                `json:"price"`
	CODAmount       float64                `json:"cod_amount"`
	Status          string                 `json:"status"`
	StatusHistory   []HistoryEntryResponse `json:"status_history"`
	WebhookURL      string                 `json:"webhook_url,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
	DeliveredAt     *time.Time             `json:"delivered_at"`
}

// SimulationResponse describes an accepted simulation run. The run_id is the
// cancellation token for a later stop call.
type SimulationResponse struct {
	RunID                    string  `json:"run_id"`
	TrackingNumber           string  `json:"tracking_number"`
	Scenario                 string  `json:"scenario"`
	Speed                    string  `json:"speed"`
	Steps                    int     `json:"steps"`
	EstimatedDurationSeconds float64 `json:"estimated_duration_seconds"`
}

func newParcelResponse(aggregate *parcel.Parcel) ParcelResponse {
	history := aggregate.StatusHistory()
	entries := make([]HistoryEntryResponse, len(history))
	for i, entry := range history {
		entries[i] = HistoryEntryResponse{
			Status:    entry.Status.String(),
			Timestamp: entry.Timestamp,
			Note:      entry.Note,
		}
	}

	return ParcelResponse{
		TrackingNumber:  aggregate.TrackingNumber().String(),
		OrderID:         aggregate.OrderID(),
		CustomerName:    aggregate.Customer().Name(),
		CustomerPhone:   aggregate.Customer().Phone(),
		CustomerAddress: aggregate.Customer().Address(),
		Wilaya:          aggregate.Destination().Wilaya(),
		Commune:         aggregate.Destination().Commune(),
		ProductList:     aggregate.ProductList(),
		Price:           aggregate.Price(),
		CODAmount:       aggregate.CODAmount(),
		Status:          aggregate.Status().String(),
		StatusHistory:   entries,
		WebhookURL:      aggregate.WebhookURL(),
		CreatedAt:       aggregate.CreatedAt(),
		DeliveredAt:     aggregate.DeliveredAt(),
	}
}

func newSimulationResponse(trackingNumber string, handle ports.RunHandle) SimulationResponse {
	return SimulationResponse{
		RunID:                    handle.RunID.String(),
		TrackingNumber:           trackingNumber,
		Scenario:                 handle.Plan.Scenario().String(),
		Speed:                    handle.Plan.Speed().String(),
		Steps:                    handle.Plan.Steps(),
		EstimatedDurationSeconds: handle.Plan.EstimatedDuration().Seconds(),
	}
}
