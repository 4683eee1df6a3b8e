// Package syncutil has small concurrency helpers.
package syncutil

import "sync"

// Go spawns a goroutine tracked by wg.
func Go(wg *sync.WaitGroup, fn func()) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		fn()
	}()
}

// Pool runs functions on at most n goroutines at a time.
// The zero value is not usable; call NewPool.
type Pool struct {
	wg  sync.WaitGroup
	sem chan struct{}
}

// NewPool returns a pool of size n. Values below 1 are treated as 1.
func NewPool(n int) *Pool {
	return &Pool{sem: make(chan struct{}, max(n, 1))}
}

// Go blocks until a slot is free, then runs fn on its own goroutine.
func (p *Pool) Go(fn func()) {
	p.sem <- struct{}{}
	Go(&p.wg, func() {
		defer func() { <-p.sem }()
		fn()
	})
}

// Wait blocks until every function started with Go has returned.
func (p *Pool) Wait() {
	p.wg.Wait()
}
