package server

import (
	"testing"
	"time"
)

func TestWebLogger_BasicLogging(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 10)
	logger := NewWebLogger("test-render-123", messageChan)

	testMessage := "Test log message"
	logger.Printf("%s\n", testMessage)

	select {
	case msg := <-messageChan:
		expectedMessage := testMessage + "\n"
		if msg.Message != expectedMessage {
			t.Errorf("Expected message '%s', got '%s'", expectedMessage, msg.Message)
		}
		if msg.Level != "info" {
			t.Errorf("Expected level 'info', got '%s'", msg.Level)
		}
		if time.Since(msg.Timestamp) > time.Second {
			t.Errorf("Timestamp seems too old: %v", msg.Timestamp)
		}
	default:
		t.Error("Expected a console message")
	}
}

func TestWebLogger_ErrorLevel(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 10)
	logger := NewWebLogger("test-render-456", messageChan)

	logger.Printf("Render aborted after %v: %v\n", time.Second, "tile 3 failed")

	messages := drainConsole(messageChan)
	if len(messages) != 1 || messages[0].Level != "error" {
		t.Errorf("Expected one error message, got %+v", messages)
	}
}

func TestWebLogger_ChannelFull(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 1)
	logger := NewWebLogger("test-render-789", messageChan)

	// The second message is dropped instead of blocking
	done := make(chan struct{})
	go func() {
		logger.Printf("Message 1\n")
		logger.Printf("Message 2\n")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Logger blocked on a full channel")
	}

	messages := drainConsole(messageChan)
	if len(messages) != 1 || messages[0].Message != "Message 1\n" {
		t.Errorf("Expected only the first message, got %+v", messages)
	}
}

func TestWebLogger_NilChannel(t *testing.T) {
	logger := NewWebLogger("test-render-nil", nil)
	// Must not panic
	logger.Printf("Message without console\n")
}
