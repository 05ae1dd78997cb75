package writepolicy

import (
	"context"
	"sync"

	"github.com/krisalay/simple-nav/types"
)

type opKind int

const (
	opPut opKind = iota
	opDelete
	opFlush
)

// writeReq is one pending change, or a flush marker carrying done.
type writeReq struct {
	ctx   context.Context
	kind  opKind
	key   string
	value string
	done  chan struct{}
}

/*
WriteBackPolicy queues changes and applies them from one background worker,
so the back store sees them in the order they were made.
*/
type WriteBackPolicy struct {
	store  types.Loader
	logger types.Logger

	// ch holds pending changes. When it is full new changes are dropped and logged.
	ch chan writeReq

	// mu guards closed; senders hold it for reading so Close never races a send.
	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewWriteBackPolicy starts a write-back worker with a queue of buffer changes.
func NewWriteBackPolicy(store types.Loader, buffer int, logger types.Logger) *WriteBackPolicy {
	if logger == nil {
		logger = types.DefaultLogger()
	}
	if buffer <= 0 {
		buffer = 1
	}
	w := &WriteBackPolicy{
		store:  store,
		logger: logger,
		ch:     make(chan writeReq, buffer),
	}

	w.wg.Add(1)
	go w.worker()

	return w
}

func (w *WriteBackPolicy) OnWrite(ctx context.Context, key, value string) {
	w.enqueue(writeReq{ctx: context.WithoutCancel(ctx), kind: opPut, key: key, value: value})
}

func (w *WriteBackPolicy) OnRemove(ctx context.Context, key string) {
	w.enqueue(writeReq{ctx: context.WithoutCancel(ctx), kind: opDelete, key: key})
}

// enqueue never blocks the caller. Changes made after Close are dropped.
func (w *WriteBackPolicy) enqueue(req writeReq) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.closed {
		w.logger.Printf("write-back closed, dropped change key=%q", req.key)
		return
	}
	select {
	case w.ch <- req:
	default:
		w.logger.Printf("write-back queue full, dropped change key=%q", req.key)
	}
}

// Flush waits for the worker to apply everything queued before the call.
func (w *WriteBackPolicy) Flush() {
	w.mu.RLock()
	if w.closed {
		w.mu.RUnlock()
		return
	}
	done := make(chan struct{})
	w.ch <- writeReq{kind: opFlush, done: done}
	w.mu.RUnlock()
	<-done
}

func (w *WriteBackPolicy) worker() {
	defer w.wg.Done()

	for req := range w.ch {
		switch req.kind {
		case opPut:
			if err := w.store.Put(req.ctx, req.key, req.value); err != nil {
				w.logger.Printf("write-back put failed key=%q: %v", req.key, err)
			}
		case opDelete:
			if err := w.store.Delete(req.ctx, req.key); err != nil {
				w.logger.Printf("write-back delete failed key=%q: %v", req.key, err)
			}
		case opFlush:
			close(req.done)
		}
	}
}

/*
Close stops accepting changes and waits for the worker to drain the queue.
Calling Close more than once is safe.
*/
func (w *WriteBackPolicy) Close() {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.ch)
	}
	w.mu.Unlock()
	w.wg.Wait()
}
