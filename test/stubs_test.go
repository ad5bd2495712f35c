package test

import (
	"diasposter/test/mocks"
	"go.uber.org/mock/gomock"
	"testing"
)

func TestStubLoggerAcceptsArgs(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockILogger(ctrl)
	StubLogger(mockLogger)

	mockLogger.Printf("Schema version %d", 1)
	mockLogger.Printf("Starting")
	mockLogger.Errorf("Failed to %s: %v", "sync", "boom")
	mockLogger.Warnf("%s", "x")
	mockLogger.Infof("%d of %d", 1, 2)
	mockLogger.Debugf("debug")
	mockLogger.Info("msg", "key", "value")
	mockLogger.Error("msg")
	mockLogger.Warn("msg", "k", 1)
	mockLogger.Debug("msg", "k", 1)
}
