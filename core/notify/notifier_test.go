package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestComposeMessage_Subjects(t *testing.T) {
	tests := []struct {
		kind    Kind
		subject string
	}{
		{KindAPIURLMissing, "Sync Failed - API URL does not exist"},
		{KindBadStatus, "Sync Failed - API response is not valid"},
		{KindMalformed, "Sync Failed - Response could not be decoded"},
		{KindNoRecords, "Sync Failed - Post details not found"},
		{KindTitleMissing, "Sync Failed - Post Title Missing"},
		{KindUpsertFailed, "Post Sync Failed - Error while inserting post"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			subject, body := composeMessage(tt.kind, nil)
			assert.Equal(t, tt.subject, subject)
			assert.Contains(t, body, "Hello Admin,")
		})
	}
}

func TestComposeMessage_FieldsEscapedAndOrdered(t *testing.T) {
	_, body := composeMessage(KindBadStatus, map[string]string{
		"Response Code":        "500",
		"API Response Message": "<oops>",
	})
	assert.Contains(t, body, "&lt;oops&gt;")
	assert.Contains(t, body, "Response Code")
}

func TestNew_FallsBackToLogNotifier(t *testing.T) {
	n := New(Config{}, zap.NewNop())
	_, isLog := n.(*LogNotifier)
	assert.True(t, isLog)

	// Must not panic or send anything without SMTP config.
	n.Notify(context.Background(), KindNoRecords, nil)

	n = New(Config{Host: "smtp.example.com", To: "admin@example.com"}, zap.NewNop())
	_, isMailer := n.(*Mailer)
	assert.True(t, isMailer)
}
