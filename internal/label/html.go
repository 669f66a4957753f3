package label

import (
	"bytes"
	"fmt"
	"html/template"
)

var htmlTemplate = template.Must(template.New("label").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Loopify Return Label</title>
<style>
  body { font-family: Helvetica, Arial, sans-serif; margin: 40px; color: #1f2937; }
  .label { width: 600px; border: 2px solid #1a5e3d; border-radius: 8px; padding: 32px; }
  h1 { color: #1a5e3d; font-size: 24px; margin: 0 0 24px; }
  p { margin: 6px 0; }
  .muted { color: #6b7280; font-size: 13px; }
  .photo { color: #008000; font-size: 13px; }
</style>
</head>
<body>
<div class="label">
  <h1>RETURN LABEL - Loopify Recycle</h1>
  <p>To: {{.Hub}}</p>
  <p>From: {{.Data.SenderName}}</p>
  <p>{{.Data.AddressLine}}</p>
  <p class="muted">Return ID: {{.Data.ReturnID}}</p>
  <p>Item: {{.Data.ItemName}} ({{.Data.ConditionLabel}})</p>
  <p>Reward: {{.Data.Reward}}</p>
  {{if .Data.HasPhoto}}<p class="photo">Photo uploaded</p>{{end}}
</div>
<script>window.onload = function () { window.print(); };</script>
</body>
</html>
`))

// HTML renders the label as a standalone page that triggers printing when
// opened. Used by client-only deployments and Accept: text/html callers.
func HTML(d Data) ([]byte, error) {
	var buf bytes.Buffer
	err := htmlTemplate.Execute(&buf, struct {
		Hub  string
		Data Data
	}{Hub: Hub, Data: d})
	if err != nil {
		return nil, fmt.Errorf("render html label: %w", err)
	}
	return buf.Bytes(), nil
}
