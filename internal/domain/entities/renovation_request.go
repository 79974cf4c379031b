package entities

import "time"

// ClientInfo holds the contact details captured with every quote request.
type ClientInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// RoomMeasurements are the bathroom dimensions in meters.
type RoomMeasurements struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (m RoomMeasurements) FloorArea() float64 {
	return m.Length * m.Width
}

func (m RoomMeasurements) Volume() float64 {
	return m.Length * m.Width * m.Height
}

func (m RoomMeasurements) WallArea() float64 {
	return 2*m.Length*m.Height + 2*m.Width*m.Height
}

// RenovationComponents are the flat top-level component flags. The optional
// detailed_components map on the request refines them with per-component
// sub-task selections.
type RenovationComponents struct {
	Demolition        bool `json:"demolition"`
	Framing           bool `json:"framing"`
	PlumbingRoughIn   bool `json:"plumbing_rough_in"`
	ElectricalRoughIn bool `json:"electrical_rough_in"`
	Plastering        bool `json:"plastering"`
	Waterproofing     bool `json:"waterproofing"`
	Tiling            bool `json:"tiling"`
	FitOff            bool `json:"fit_off"`
}

// EnabledKeys returns the snake_case keys of the enabled components in the
// fixed renovation-stage order.
func (c RenovationComponents) EnabledKeys() []string {
	all := []struct {
		key     string
		enabled bool
	}{
		{"demolition", c.Demolition},
		{"framing", c.Framing},
		{"plumbing_rough_in", c.PlumbingRoughIn},
		{"electrical_rough_in", c.ElectricalRoughIn},
		{"plastering", c.Plastering},
		{"waterproofing", c.Waterproofing},
		{"tiling", c.Tiling},
		{"fit_off", c.FitOff},
	}
	keys := make([]string, 0, len(all))
	for _, e := range all {
		if e.enabled {
			keys = append(keys, e.key)
		}
	}
	return keys
}

// RenovationRequest is the structured renovation description submitted by the
// caller. It is created once, persisted verbatim and never mutated.
//
// Storage model (DynamoDB):
//   - table: quote_requests
//   - PK: id
//
// DetailedComponents and TaskOptions are deliberately free-form: the front end
// evolves those shapes faster than the backend, and they only influence the
// estimation prompt and the proposal summary.
type RenovationRequest struct {
	ID                 string                 `json:"id"`
	ClientInfo         ClientInfo             `json:"client_info"`
	RoomMeasurements   RoomMeasurements       `json:"room_measurements"`
	Components         RenovationComponents   `json:"components"`
	DetailedComponents map[string]interface{} `json:"detailed_components,omitempty"`
	TaskOptions        map[string]interface{} `json:"task_options,omitempty"`
	AdditionalNotes    string                 `json:"additional_notes,omitempty"`
	CreatedAt          time.Time              `json:"created_at"`
}
