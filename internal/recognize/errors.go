package recognize

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Recognition failure taxonomy. Each class carries a distinct, actionable
// message; callers must not conflate them. All are terminal for the current
// file's recognition attempt but never abort a multi-file run's other files.
var (
	ErrRecognitionTimeout = errors.New("text recognition timed out after 5 minutes; try a smaller or simpler image")
	ErrNetworkFailure     = errors.New("network error: the recognition model could not be fetched; check the connection and retry")
	ErrResourceExhaustion = errors.New("out of memory during text recognition; try a smaller image")
	ErrEngineInit         = errors.New("the recognition engine failed to start; retry the request")
	ErrRecognitionFailed  = errors.New("text recognition failed")
)

// classifyEngineError maps a raw engine failure onto the taxonomy by message
// inspection, falling back to ErrRecognitionFailed.
func classifyEngineError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrRecognitionTimeout
	}
	msg := strings.ToLower(err.Error())
	switch {
	case containsAny(msg, "network", "fetch", "download", "connection"):
		return fmt.Errorf("%w: %v", ErrNetworkFailure, err)
	case containsAny(msg, "memory", "allocation", "alloc"):
		return fmt.Errorf("%w: %v", ErrResourceExhaustion, err)
	case containsAny(msg, "timeout", "timed out", "deadline"):
		return fmt.Errorf("%w: %v", ErrRecognitionTimeout, err)
	case containsAny(msg, "worker", "init", "tessdata", "could not initialize"):
		return fmt.Errorf("%w: %v", ErrEngineInit, err)
	default:
		return fmt.Errorf("%w: %v", ErrRecognitionFailed, err)
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
