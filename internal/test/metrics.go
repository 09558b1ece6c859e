package test

import (
	"sync"
	"time"
)

// RecordedCompletion is a completion captured by ProgressRecorderStub.
type RecordedCompletion struct {
	Difficulty string
	Coins      int64
}

// RecordedAchievement is an achievement grant captured by ProgressRecorderStub.
type RecordedAchievement struct {
	Kind  string
	Coins int64
}

// ProgressRecorderStub captures progression metrics in memory.
type ProgressRecorderStub struct {
	mu           sync.Mutex
	completions  []RecordedCompletion
	achievements []RecordedAchievement
	rollovers    int
}

// RecordCompletion stores the completion.
func (r *ProgressRecorderStub) RecordCompletion(difficulty string, coins int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.completions = append(r.completions, RecordedCompletion{Difficulty: difficulty, Coins: coins})
}

// RecordAchievement stores the grant.
func (r *ProgressRecorderStub) RecordAchievement(kind string, coins int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.achievements = append(r.achievements, RecordedAchievement{Kind: kind, Coins: coins})
}

// RecordRollover counts the rollover.
func (r *ProgressRecorderStub) RecordRollover() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rollovers++
}

// Completions returns the recorded completions in call order.
func (r *ProgressRecorderStub) Completions() []RecordedCompletion {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]RecordedCompletion(nil), r.completions...)
}

// Achievements returns the recorded grants in call order.
func (r *ProgressRecorderStub) Achievements() []RecordedAchievement {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]RecordedAchievement(nil), r.achievements...)
}

// Rollovers returns the number of recorded rollovers.
func (r *ProgressRecorderStub) Rollovers() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rollovers
}

// ObservedRequest is a request captured by RequestObserverStub.
type ObservedRequest struct {
	Method string
	Path   string
	Status int
}

// RequestObserverStub captures observed HTTP requests.
type RequestObserverStub struct {
	mu       sync.Mutex
	requests []ObservedRequest
}

// ObserveHTTPRequest stores the request without its duration.
func (o *RequestObserverStub) ObserveHTTPRequest(method, path string, status int, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.requests = append(o.requests, ObservedRequest{Method: method, Path: path, Status: status})
}

// Requests returns the observed requests in call order.
func (o *RequestObserverStub) Requests() []ObservedRequest {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]ObservedRequest(nil), o.requests...)
}
