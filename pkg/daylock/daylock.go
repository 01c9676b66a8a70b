package daylock

import (
	"context"
	"sync"
)

// Locker сериализует работу с одним календарным днём внутри процесса.
// Внешний календарь не даёт транзакций, поэтому окно гонки
// "прочитал список → решил → записал" закрывается здесь: две конкурирующие
// проверки одного дня выполняются строго по очереди, разные дни — параллельно.
type Locker struct {
	mu   sync.Mutex
	days map[string]*dayEntry
}

type dayEntry struct {
	mu   sync.Mutex
	refs int
}

// New создает новый Locker.
func New() *Locker {
	return &Locker{
		days: make(map[string]*dayEntry),
	}
}

// DoExclusive выполняет fn, удерживая эксклюзивную блокировку ключа day.
// Если контекст отменён до захвата блокировки, fn не вызывается.
func (l *Locker) DoExclusive(ctx context.Context, day string, fn func() error) error {
	entry := l.acquire(day)
	defer l.release(day, entry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	return fn()
}

func (l *Locker) acquire(day string) *dayEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.days[day]
	if !ok {
		entry = &dayEntry{}
		l.days[day] = entry
	}
	entry.refs++
	return entry
}

// release убирает запись дня из таблицы, когда её больше никто не ждёт,
// чтобы таблица не росла бесконечно.
func (l *Locker) release(day string, entry *dayEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry.refs--
	if entry.refs == 0 {
		delete(l.days, day)
	}
}
