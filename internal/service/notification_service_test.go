package service

import (
	"context"
	"testing"

	"quickie-be/pkg/events"
)

type recordingLogger struct {
	warns int
	infos int
}

func (l *recordingLogger) Debug(module, message string, details map[string]interface{}) {}
func (l *recordingLogger) Info(module, message string, details map[string]interface{})  { l.infos++ }
func (l *recordingLogger) Warn(module, message string, details map[string]interface{})  { l.warns++ }
func (l *recordingLogger) Error(module, message string, details map[string]interface{}) {}
func (l *recordingLogger) Sync() error                                                  { return nil }

func TestEventTypeCode(t *testing.T) {
	tests := []struct {
		subject string
		want    string
	}{
		{subject: "events.USER_LOGIN", want: "USER_LOGIN"},
		{subject: "events.PERFUME_RESTOCKED", want: "PERFUME_RESTOCKED"},
		{subject: "USER_LOGIN", want: "USER_LOGIN"},
	}

	for _, tt := range tests {
		if got := eventTypeCode(tt.subject); got != tt.want {
			t.Errorf("eventTypeCode(%q) = %q, want %q", tt.subject, got, tt.want)
		}
	}
}

func TestHandleEventEmptyPayload(t *testing.T) {
	log := &recordingLogger{}
	s := &notificationService{logger: log}

	err := s.handleEvent(context.Background(), events.BaseEvent{Type: "events.USER_LOGIN"})
	if err != nil {
		t.Fatalf("expected event without payload to be acked, got %v", err)
	}
	if log.warns != 1 {
		t.Errorf("expected one warning, got %d", log.warns)
	}
}

func TestHandleEventUnknownType(t *testing.T) {
	log := &recordingLogger{}
	s := &notificationService{logger: log}

	err := s.handleEvent(context.Background(), events.BaseEvent{
		Type: "events.SOMETHING_NEW",
		Data: map[string]interface{}{"user_id": "irrelevant"},
	})
	if err != nil {
		t.Fatalf("expected unmapped event to be acked, got %v", err)
	}
	if log.infos != 1 {
		t.Errorf("expected one info log, got %d", log.infos)
	}
}

func TestHandleEventUserLoginBadUserId(t *testing.T) {
	log := &recordingLogger{}
	s := &notificationService{logger: log}

	err := s.handleEvent(context.Background(), events.BaseEvent{
		Type: "events.USER_LOGIN",
		Data: map[string]interface{}{"user_id": "not-a-uuid"},
	})
	if err != nil {
		t.Fatalf("expected malformed login event to be acked, got %v", err)
	}
	if log.warns != 1 {
		t.Errorf("expected one warning, got %d", log.warns)
	}
}
