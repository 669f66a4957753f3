package label

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// PDF renders the label as a single 600x400pt page with fixed-position
// text fields. Compression stays off: labels are tiny and the text
// remains greppable for verification.
func PDF(d Data) ([]byte, error) {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: 600, Ht: 400},
	})
	pdf.SetCompression(false)
	pdf.AddPage()

	pdf.SetTextColor(26, 94, 61)
	pdf.SetFont("Helvetica", "B", 24)
	pdf.Text(50, 58, "RETURN LABEL - Loopify Recycle")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 14)
	pdf.Text(50, 105, "To: "+Hub)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(50, 135, "From: "+d.SenderName)
	pdf.Text(50, 155, d.AddressLine)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(50, 185, "Return ID: "+d.ReturnID)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Text(50, 215, fmt.Sprintf("Item: %s (%s)", d.ItemName, d.ConditionLabel))
	pdf.Text(50, 240, "Reward: "+d.Reward)

	if d.HasPhoto {
		pdf.SetTextColor(0, 128, 0)
		pdf.SetFont("Helvetica", "", 10)
		pdf.Text(50, 270, "Photo uploaded")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf label: %w", err)
	}
	return buf.Bytes(), nil
}
