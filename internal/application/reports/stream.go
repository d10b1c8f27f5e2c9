package reports

import "sync"

// Stream es un broadcaster en proceso sobre el libro de movimientos: cada
// escritura notifica a los suscriptores para que las vistas derivadas se
// recalculen sin polling. Las señales se colapsan (canal con buffer 1):
// al suscriptor le basta saber que "algo cambió".
type Stream struct {
	mu   sync.Mutex
	subs map[int]chan struct{}
	next int
}

// NewStream construye el broadcaster sin suscriptores.
func NewStream() *Stream {
	return &Stream{subs: make(map[int]chan struct{})}
}

// Subscribe registra un suscriptor. El cancel debe llamarse siempre para no
// filtrar el canal.
func (s *Stream) Subscribe() (<-chan struct{}, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.next
	s.next++
	ch := make(chan struct{}, 1)
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
	return ch, cancel
}

// Notify señala a todos los suscriptores que el libro cambió. Nunca bloquea:
// si un suscriptor ya tiene una señal sin consumir, no se le duplica.
func (s *Stream) Notify() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
