package templates_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meetslot/internal/domains/notification/model"
	"meetslot/internal/domains/notification/templates"
)

func booking() model.Booking {
	return model.Booking{
		BookingID:     "booking-1",
		Date:          "2025-09-08",
		DisplayTime:   "2:00 PM",
		DayOfWeek:     "Monday",
		TimezoneLabel: "IST",
		MeetingID:     "ev-1",
		JoinURL:       "https://teams.example/ev-1",
		CompanyName:   "Acme",
		Requester:     model.Requester{Name: "Jane <script>", Email: "jane@example.com", Phone: "+91 98"},
		Guests:        []string{"bob@example.com"},
	}
}

func TestRender_Requester(t *testing.T) {
	got, err := templates.Render(booking(), model.Recipient{Email: "jane@example.com", Name: "Jane", Role: model.RoleRequester})

	require.NoError(t, err)
	assert.Equal(t, "Your discovery call with Acme is confirmed for 2025-09-08 2:00 PM IST", got.Subject)
	assert.Contains(t, got.Text, "Hello Jane,")
	assert.Contains(t, got.Text, "Time: 2:00 PM IST")
	assert.Contains(t, got.Text, "Duration: 30 minutes")
	assert.Contains(t, got.Text, "Join: https://teams.example/ev-1")
	assert.NotContains(t, got.Text, "Phone:")
	assert.Contains(t, got.HTML, `href="https://teams.example/ev-1"`)
}

func TestRender_OrganizerSeesRequesterDetails(t *testing.T) {
	got, err := templates.Render(booking(), model.Recipient{Email: "host@example.com", Role: model.RoleOrganizer})

	require.NoError(t, err)
	assert.Contains(t, got.Text, "Hello there,")
	assert.Contains(t, got.Text, "Phone: +91 98")
	assert.Contains(t, got.Text, "Guests: bob@example.com")
	assert.Contains(t, got.Text, "Booking booking-1, meeting ev-1")
	assert.Contains(t, got.HTML, "Jane &lt;script&gt;")
	assert.NotContains(t, got.HTML, "<script>")
}

func TestSubject(t *testing.T) {
	b := booking()

	assert.Equal(t, "Invitation: discovery call with Acme on 2025-09-08 2:00 PM IST", templates.Subject(b, model.RoleGuest))
	assert.Equal(t, "[Admin] Discovery call booked for 2025-09-08 2:00 PM IST", templates.Subject(b, model.RoleAdmin))
}
