package session

import (
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/crucible/memutils"
	"golang.org/x/exp/slog"
)

// ReportValidationMessage records a message from the driver's validation layer. Messages do not
// stop execution; callers check for them with HasReceivedValidationMessages.
func (s *Session) ReportValidationMessage(message string) {
	s.logger.Warn("Session::ReportValidationMessage", slog.String("message", message))

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.validationMessages = append(s.validationMessages, message)
}

func (s *Session) HasReceivedValidationMessages() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return len(s.validationMessages) > 0
}

// ValidationMessages returns the messages reported so far, oldest first
func (s *Session) ValidationMessages() []string {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	messages := make([]string, len(s.validationMessages))
	copy(messages, s.validationMessages)
	return messages
}

// BuildStatsString returns a json document with the totals over every pool, the detailed map of
// each pool and the number of validation messages received
func (s *Session) BuildStatsString() (string, error) {
	pools := s.Pools()

	var total memutils.DetailedStatistics
	total.Clear()
	for _, pool := range pools {
		pool.AddDetailedStatistics(&total)
	}

	writer := jwriter.NewWriter()
	obj := writer.Object()

	totalObj := obj.Name("Total").Object()
	total.PrintJson(&totalObj)
	totalObj.End()

	poolsArray := obj.Name("Pools").Array()
	for _, pool := range pools {
		pool.PrintDetailedMap(&writer)
	}
	poolsArray.End()

	obj.Name("ValidationMessages").Int(len(s.ValidationMessages()))
	obj.End()

	err := writer.Error()
	if err != nil {
		return "", err
	}
	return string(writer.Bytes()), nil
}
