package mailer

import (
	"testing"

	"memberdesk/internal/domain"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSubmission(wcaID *string) *domain.Submission {
	return &domain.Submission{
		FirstName: "Anna",
		LastName:  "Virtanen",
		City:      "Helsinki",
		Email:     "anna@example.fi",
		WCAID:     wcaID,
		BirthDate: "2000-01-01",
	}
}

func TestNew_UnconfiguredIsNoop(t *testing.T) {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	sender, err := New(Config{}, log)
	require.NoError(t, err)
	require.NotNil(t, sender)

	// Must not panic or block without an SMTP client.
	sender.NotifyPending(testSubmission(nil))
	sender.NotifyApproved(&domain.Member{FirstName: "Anna"})
}

func TestPendingTemplates(t *testing.T) {
	wca := "2015VIRT01"
	sub := testSubmission(&wca)

	text := pendingText(sub)
	assert.Contains(t, text, "Hei Anna!")
	assert.Contains(t, text, "Anna Virtanen")
	assert.Contains(t, text, "Helsinki")
	assert.Contains(t, text, "anna@example.fi")
	assert.Contains(t, text, "2015VIRT01")
	assert.Contains(t, text, "2000-01-01")
	assert.Contains(t, text, contactAddress)

	html := pendingHTML(sub)
	assert.Contains(t, html, "<strong>Nimi:</strong> Anna Virtanen")
	assert.Contains(t, html, "2015VIRT01")
}

func TestPendingTemplates_NoWCAID(t *testing.T) {
	text := pendingText(testSubmission(nil))
	assert.Contains(t, text, "WCA ID: -")
}

func TestApprovedTemplates(t *testing.T) {
	text := approvedText("Anna")
	assert.Contains(t, text, "Hei Anna!")
	assert.Contains(t, text, "hyväksytty")
	assert.Contains(t, text, contactAddress)

	html := approvedHTML("Anna")
	assert.Contains(t, html, "Tervetuloa jäseneksi!")
	assert.Contains(t, html, "Hei Anna!")
}

func TestWCAIDOrDash(t *testing.T) {
	empty := ""
	wca := "2015VIRT01"
	assert.Equal(t, "-", wcaIDOrDash(nil))
	assert.Equal(t, "-", wcaIDOrDash(&empty))
	assert.Equal(t, "2015VIRT01", wcaIDOrDash(&wca))
}
