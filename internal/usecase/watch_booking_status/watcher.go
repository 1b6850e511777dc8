package watch_booking_status

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-BookingWindow/internal/domain"
	getBookingStatus "github.com/m04kA/SMC-BookingWindow/internal/usecase/get_booking_status"
)

// Watcher периодически пересчитывает статус окна бронирования и рассылает его подписчикам.
//
// Один Watcher обслуживает одну пару (дата поездки, квота) и принадлежит своему потребителю.
// Подписчик всегда видит только последний статус: если он не успел прочитать
// предыдущее значение, оно заменяется новым.
type Watcher struct {
	evaluator Evaluator
	clock     Clock
	req       *getBookingStatus.Request
	interval  time.Duration
	metrics   Metrics
	logger    Logger

	mu          sync.Mutex
	current     *getBookingStatus.Response
	subscribers map[int]chan *getBookingStatus.Response
	nextID      int
	running     bool
	stopped     bool
	finished    bool
	stopCh      chan struct{}
}

// New создает подписку. interval <= 0 означает интервал по умолчанию (1 минута).
func New(
	evaluator Evaluator,
	clock Clock,
	req *getBookingStatus.Request,
	interval time.Duration,
	metrics Metrics,
	logger Logger,
) *Watcher {
	if interval <= 0 {
		interval = domain.DefaultRefreshInterval
	}

	return &Watcher{
		evaluator:   evaluator,
		clock:       clock,
		req:         req,
		interval:    interval,
		metrics:     metrics,
		logger:      logger,
		subscribers: make(map[int]chan *getBookingStatus.Response),
		stopCh:      make(chan struct{}),
	}
}

// Subscribe регистрирует подписчика. Возвращает канал со статусами и функцию отписки.
// Если статус уже вычислен, он сразу доступен в канале.
// Канал закрывается при отписке или при завершении Watcher.
func (w *Watcher) Subscribe() (<-chan *getBookingStatus.Response, func()) {
	w.mu.Lock()
	defer w.mu.Unlock()

	ch := make(chan *getBookingStatus.Response, 1)
	if w.stopped || w.finished {
		close(ch)
		return ch, func() {}
	}

	id := w.nextID
	w.nextID++
	w.subscribers[id] = ch

	if w.current != nil {
		ch <- w.current
	}

	return ch, func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		if sub, ok := w.subscribers[id]; ok {
			delete(w.subscribers, id)
			close(sub)
		}
	}
}

// Start вычисляет статус сразу и затем на каждом тике.
// Блокируется до отмены ctx или вызова Stop. Ошибка первого вычисления
// (некорректный запрос) возвращается, последующие только логируются.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.stopped || w.finished {
		w.mu.Unlock()
		return ErrStopped
	}
	if w.running {
		w.mu.Unlock()
		return ErrAlreadyStarted
	}
	w.running = true
	w.mu.Unlock()

	if w.metrics != nil {
		w.metrics.WatcherStarted()
		defer w.metrics.WatcherStopped()
	}
	defer w.finish()

	if err := w.refresh(); err != nil {
		w.logger.Warn("WatchBookingStatus: initial evaluation failed: %v", err)
		return err
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("WatchBookingStatus: stopped by context")
			return nil
		case <-w.stopCh:
			w.logger.Info("WatchBookingStatus: stopped")
			return nil
		case <-ticker.C:
			if err := w.refresh(); err != nil {
				w.logger.Error("WatchBookingStatus: evaluation failed: %v", err)
			}
		}
	}
}

// Stop останавливает подписку. Повторный вызов ничего не делает.
// Если цикл пересчета не запущен, каналы подписчиков закрываются сразу.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	w.stopped = true
	close(w.stopCh)

	if !w.running {
		w.closeSubscribersLocked()
	}
}

// Current возвращает последний вычисленный статус или nil
func (w *Watcher) Current() *getBookingStatus.Response {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

// IsRunning возвращает true, пока цикл пересчета активен
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

func (w *Watcher) refresh() error {
	resp, err := w.evaluator.EvaluateAt(w.req, w.clock.Now())
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.current = resp
	for _, ch := range w.subscribers {
		publishLatest(ch, resp)
	}
	return nil
}

// publishLatest кладет значение в канал с буфером 1, вытесняя непрочитанное
func publishLatest(ch chan *getBookingStatus.Response, resp *getBookingStatus.Response) {
	select {
	case ch <- resp:
		return
	default:
	}

	select {
	case <-ch:
	default:
	}
	ch <- resp
}

func (w *Watcher) finish() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.running = false
	w.closeSubscribersLocked()
}

// closeSubscribersLocked вызывается под w.mu
func (w *Watcher) closeSubscribersLocked() {
	w.finished = true
	for id, ch := range w.subscribers {
		delete(w.subscribers, id)
		close(ch)
	}
}
