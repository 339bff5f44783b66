package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"time"
)

// AppointmentEmailData is what the confirmation email shows.
type AppointmentEmailData struct {
	PatientName string
	DoctorName  string
	When        time.Time
	Reason      string
}

var appointmentEmailTemplate = template.Must(template.New("appointment").Parse(`<!DOCTYPE html>
<html>
<head>
	<title>Appointment Confirmation</title>
	<style>
		body { font-family: Arial, sans-serif; background-color: #f4f4f4; margin: 0; padding: 0; }
		.container { background-color: #ffffff; margin: 20px auto; padding: 20px; border-radius: 8px; box-shadow: 0 2px 4px rgba(0, 0, 0, 0.1); max-width: 600px; }
		h1 { color: #333333; }
		p { color: #666666; }
		.detail { font-weight: bold; color: #007bff; }
	</style>
</head>
<body>
	<div class="container">
		<h1>Appointment Confirmed</h1>
		<p>Dear {{.PatientName}},</p>
		<p>Your appointment has been booked.</p>
		<p>Doctor: <span class="detail">{{.DoctorName}}</span></p>
		<p>Date: <span class="detail">{{.Date}}</span></p>
		<p>Reason: <span class="detail">{{.Reason}}</span></p>
		<p>If you need to reschedule, please contact the clinic.</p>
	</div>
</body>
</html>
`))

// RenderAppointmentEmail builds the subject, HTML and plain-text bodies of an
// appointment confirmation.
func RenderAppointmentEmail(data AppointmentEmailData) (subject, html, text string, err error) {
	date := data.When.Format("Monday, 02 January 2006 at 15:04 MST")

	var buf bytes.Buffer
	err = appointmentEmailTemplate.Execute(&buf, struct {
		PatientName string
		DoctorName  string
		Date        string
		Reason      string
	}{data.PatientName, data.DoctorName, date, data.Reason})
	if err != nil {
		return "", "", "", fmt.Errorf("failed to render appointment email: %w", err)
	}

	text = fmt.Sprintf("Dear %s,\n\nYour appointment with %s on %s has been booked.\nReason: %s\n",
		data.PatientName, data.DoctorName, date, data.Reason)
	return "Appointment Confirmation", buf.String(), text, nil
}
