package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderAppointmentEmail(t *testing.T) {
	subject, html, text, err := RenderAppointmentEmail(AppointmentEmailData{
		PatientName: "Ada",
		DoctorName:  "Dr Smith (GP)",
		When:        time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		Reason:      "checkup",
	})
	require.NoError(t, err)

	assert.Equal(t, "Appointment Confirmation", subject)
	assert.Contains(t, html, "Dr Smith (GP)")
	assert.Contains(t, html, "Monday, 01 January 2024 at 10:00 UTC")
	assert.Contains(t, text, "Dear Ada")
}

func TestRenderAppointmentEmail_EscapesInput(t *testing.T) {
	_, html, _, err := RenderAppointmentEmail(AppointmentEmailData{
		PatientName: "<script>alert(1)</script>",
		When:        time.Now(),
	})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}

func TestBuildMessage(t *testing.T) {
	m := buildMessage(EmailMessage{From: "clinic@x.com", To: "a@x.com", Subject: "Hi", HTML: "<p>hi</p>"})
	assert.Equal(t, []string{"a@x.com"}, m.GetHeader("To"))
	assert.Equal(t, []string{"Hi"}, m.GetHeader("Subject"))
}
