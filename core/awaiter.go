/*
Copyright © 2026 Lapwatch Contributors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package core

import "sync"

// AwaitNotifier counterpart of an `Awaiter`
type AwaitNotifier struct {
	once sync.Once
	done chan struct{}
	err  error
}

// Notify records err as the exit reason of the
// goroutine and signals the `Awaiter`.
// Only the first call has an effect.
func (n *AwaitNotifier) Notify(err error) {
	n.once.Do(func() {
		n.err = err
		close(n.done)
	})
}

// Awaiter signals the completion of an independently
// executing goroutine (the ticker loop, the REPL loop).
// The goroutine keeps the `AwaitNotifier` and hands the
// Awaiter to whoever needs to wait for it.
type Awaiter struct {
	notifier *AwaitNotifier
}

// Done is closed once the `Awaiter` is signaled.
func (a *Awaiter) Done() <-chan struct{} {
	return a.notifier.done
}

// Err blocks until the `Awaiter` is signaled and
// returns the exit reason.
func (a *Awaiter) Err() error {
	<-a.Done()
	return a.notifier.err
}

// Finished reports whether the `Awaiter` has been signaled
// without blocking.
func (a *Awaiter) Finished() bool {
	select {
	case <-a.Done():
		return true
	default:
		return false
	}
}

// NewAwaiter creates a new `Awaiter` and `AwaitNotifier`
// pair.
func NewAwaiter() (*Awaiter, *AwaitNotifier) {
	notifier := &AwaitNotifier{
		done: make(chan struct{}),
	}

	return &Awaiter{notifier: notifier}, notifier
}
