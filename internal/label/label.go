// Package label renders printable return labels from a submitted return
// snapshot, as PDF or as a standalone HTML page.
package label

import (
	"github.com/myokyal/loopify/internal/catalog"
	"github.com/myokyal/loopify/internal/returns"
	"github.com/myokyal/loopify/internal/reward"
)

// Filenames used in Content-Disposition headers and client downloads.
const (
	PDFFilename  = "loopify-return-label.pdf"
	HTMLFilename = "loopify-return-label.html"
)

// Hub is the fixed recipient printed on every label.
const Hub = "Loopify Hub, Yangon"

// Data is the flattened snapshot a label is rendered from.
type Data struct {
	ReturnID       string // truncated for display
	ItemName       string
	ConditionLabel string
	Method         string
	SenderName     string
	AddressLine    string
	Reward         string
	HasPhoto       bool
}

// FromRequest derives the label fields from a persisted return. The
// return ID is truncated to its first eight characters for display.
// The photo indicator reflects a stored photo URL only; a raw photo
// attachment that was never uploaded does not count.
func FromRequest(req *returns.Request) Data {
	d := Data{
		ReturnID: truncateID(req.ID),
		Method:   req.Selection.Method,
		Reward:   reward.FormatMMK(req.Selection.RewardAmount),
		HasPhoto: req.PhotoURL != "",
	}

	if item, ok := catalog.FindItem(req.Selection.Category, req.Selection.Item); ok {
		d.ItemName = item.Name
	}
	if cond, ok := catalog.FindCondition(req.Selection.Condition); ok {
		d.ConditionLabel = cond.Label
	}

	switch req.Selection.Method {
	case returns.MethodShip:
		if req.Shipping != nil {
			d.SenderName = req.Shipping.Name
			d.AddressLine = req.Shipping.Street + ", " + req.Shipping.City
		}
	case returns.MethodDropoff:
		if req.Selection.Dropoff != nil {
			d.SenderName = req.Selection.Dropoff.Name
			d.AddressLine = "Drop-off: " + req.Selection.Dropoff.Name
		}
	}
	return d
}

func truncateID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
