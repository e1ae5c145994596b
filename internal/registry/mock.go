package registry

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// MockClient implements Client for development and tests without a
// registry account. Checks pass by default; individual stages can be
// forced to fail with FailStage.
type MockClient struct {
	mu       sync.RWMutex
	failures map[CheckStage]string
	now      func() time.Time
}

// NewMockClient creates a MockClient with all checks passing.
func NewMockClient() *MockClient {
	return &MockClient{
		failures: make(map[CheckStage]string),
		now:      time.Now,
	}
}

// FailStage makes the given check stage fail with the given message.
func (c *MockClient) FailStage(stage CheckStage, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failures[stage] = message
}

// Reset clears all injected failures.
func (c *MockClient) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failures = make(map[CheckStage]string)
}

func (c *MockClient) Platform() string { return "mock" }

func (c *MockClient) failureFor(stage CheckStage) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	msg, ok := c.failures[stage]
	return msg, ok
}

func (c *MockClient) SearchTitle(ctx context.Context, info SubjectInfo) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if msg, ok := c.failureFor(StageTitleSearch); ok {
		return &Result{Verified: false, Message: msg}, nil
	}
	now := c.now()
	return &Result{
		Verified:        true,
		Reference:       fmt.Sprintf("SRCH%s", now.Format("20060102150405")),
		RegisteredOwner: ownerOrUnknown(info),
		ParcelDetails: map[string]interface{}{
			"title_number":      titleNumber(info, now),
			"size":              "5.0 acres",
			"registration_date": "2020-01-15",
			"land_use":          "Agricultural",
		},
		Encumbrances: []string{},
		Fee:          500,
		Message:      "Title verified successfully",
	}, nil
}

func (c *MockClient) VerifyOwner(ctx context.Context, info SubjectInfo) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if msg, ok := c.failureFor(StageOwnerCheck); ok {
		return &Result{Verified: false, Message: msg}, nil
	}
	return &Result{
		Verified:        true,
		RegisteredOwner: ownerOrUnknown(info),
		Message:         "Registered owner matches claimed owner",
	}, nil
}

func (c *MockClient) CheckEncumbrances(ctx context.Context, info SubjectInfo) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if msg, ok := c.failureFor(StageEncumbranceCheck); ok {
		return &Result{Verified: false, Encumbrances: []string{msg}, Message: msg}, nil
	}
	return &Result{
		Verified:     true,
		Encumbrances: []string{},
		Message:      "No caveats or charges registered",
	}, nil
}

func ownerOrUnknown(info SubjectInfo) string {
	if info.OwnerName == "" {
		return "Unknown"
	}
	return info.OwnerName
}

func titleNumber(info SubjectInfo, now time.Time) string {
	if info.TitleNumber != "" {
		return info.TitleNumber
	}
	return fmt.Sprintf("TITLE/%d/%s", now.Year(), info.SubjectID)
}
