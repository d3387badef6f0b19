package activesession

import (
	"time"

	"github.com/abhisek/cyberhunter/internal/gateway"
	sess "github.com/abhisek/cyberhunter/internal/session"
)

// contentReadyMsg is sent when the generation fan-out has settled. The epoch
// lets the controller discard results from a closed or superseded session.
type contentReadyMsg struct {
	epoch   uint64
	content sess.Content
}

// verifiedMsg is sent when answer analysis completes.
type verifiedMsg struct {
	feedback gateway.Feedback
}

// markedMsg is sent when a chapter completion has been persisted.
type markedMsg struct {
	err error
}

// spinnerTickMsg animates the loading and analyzing indicators.
type spinnerTickMsg time.Time
