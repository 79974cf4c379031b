package request

import (
	"time"

	"bathroom_quote_saver/internal/domain/entities"
)

type ClientInfoRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type RoomMeasurementsRequest struct {
	Length float64 `json:"length" binding:"required"`
	Width  float64 `json:"width" binding:"required"`
	Height float64 `json:"height" binding:"required"`
}

type ComponentsRequest struct {
	Demolition        bool `json:"demolition"`
	Framing           bool `json:"framing"`
	PlumbingRoughIn   bool `json:"plumbing_rough_in"`
	ElectricalRoughIn bool `json:"electrical_rough_in"`
	Plastering        bool `json:"plastering"`
	Waterproofing     bool `json:"waterproofing"`
	Tiling            bool `json:"tiling"`
	FitOff            bool `json:"fit_off"`
}

// QuoteRequest is the payload for new quote requests. The free-form
// detailed_components and task_options maps carry UI selections straight
// through to the estimation prompt and are never validated here.
type QuoteRequest struct {
	ClientInfo         ClientInfoRequest       `json:"client_info" binding:"required"`
	RoomMeasurements   RoomMeasurementsRequest `json:"room_measurements" binding:"required"`
	Components         ComponentsRequest       `json:"components"`
	DetailedComponents map[string]interface{}  `json:"detailed_components"`
	TaskOptions        map[string]interface{}  `json:"task_options"`
	AdditionalNotes    string                  `json:"additional_notes"`
}

func (r QuoteRequest) ToEntity() entities.RenovationRequest {
	return entities.RenovationRequest{
		ClientInfo: entities.ClientInfo{
			Name:    r.ClientInfo.Name,
			Email:   r.ClientInfo.Email,
			Phone:   r.ClientInfo.Phone,
			Address: r.ClientInfo.Address,
		},
		RoomMeasurements: entities.RoomMeasurements{
			Length: r.RoomMeasurements.Length,
			Width:  r.RoomMeasurements.Width,
			Height: r.RoomMeasurements.Height,
		},
		Components: entities.RenovationComponents{
			Demolition:        r.Components.Demolition,
			Framing:           r.Components.Framing,
			PlumbingRoughIn:   r.Components.PlumbingRoughIn,
			ElectricalRoughIn: r.Components.ElectricalRoughIn,
			Plastering:        r.Components.Plastering,
			Waterproofing:     r.Components.Waterproofing,
			Tiling:            r.Components.Tiling,
			FitOff:            r.Components.FitOff,
		},
		DetailedComponents: r.DetailedComponents,
		TaskOptions:        r.TaskOptions,
		AdditionalNotes:    r.AdditionalNotes,
		CreatedAt:          time.Now().UTC(),
	}
}
