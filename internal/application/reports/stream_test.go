package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/reports"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// Cada suscriptor recibe la señal de cambio.
func TestStream_NotificaSuscriptores(t *testing.T) {
	s := reports.NewStream()
	ch1, cancel1 := s.Subscribe()
	ch2, cancel2 := s.Subscribe()
	defer cancel1()
	defer cancel2()

	s.Notify()

	select {
	case <-ch1:
	default:
		t.Fatal("el suscriptor 1 debía recibir la señal")
	}
	select {
	case <-ch2:
	default:
		t.Fatal("el suscriptor 2 debía recibir la señal")
	}
}

// Las señales se colapsan: varias notificaciones sin consumir cuentan como una.
func TestStream_ColapsaSenales(t *testing.T) {
	s := reports.NewStream()
	ch, cancel := s.Subscribe()
	defer cancel()

	s.Notify()
	s.Notify()
	s.Notify()

	<-ch
	select {
	case <-ch:
		t.Fatal("las señales extra no deben acumularse")
	default:
	}
}

// Notify nunca bloquea, tampoco con suscriptores que no consumen.
func TestStream_NotifyNoBloquea(t *testing.T) {
	s := reports.NewStream()
	_, cancel := s.Subscribe()
	defer cancel()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			s.Notify()
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Notify no debe bloquear")
	}
}

// Tras cancelar, el suscriptor deja de recibir señales.
func TestStream_CancelDejaDeNotificar(t *testing.T) {
	s := reports.NewStream()
	ch, cancel := s.Subscribe()
	cancel()

	s.Notify()
	select {
	case <-ch:
		t.Fatal("un suscriptor cancelado no debe recibir señales")
	default:
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// WaitForChange (long-poll)
// ──────────────────────────────────────────────────────────────────────────────

type stubReportRepo struct {
	reports []*entity.Report
}

func (r *stubReportRepo) Create(report *entity.Report) error {
	r.reports = append(r.reports, report)
	return nil
}
func (r *stubReportRepo) ListAll() ([]*entity.Report, error) { return r.reports, nil }
func (r *stubReportRepo) DeleteAll() error                   { r.reports = nil; return nil }

// Una notificación despierta al que espera; un contexto vencido devuelve false.
func TestWaitForChange(t *testing.T) {
	stream := reports.NewStream()
	uc := reports.NewReportUseCase(&stubReportRepo{}, stream)

	go func() {
		time.Sleep(10 * time.Millisecond)
		stream.Notify()
	}()
	assert.True(t, uc.WaitForChange(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.False(t, uc.WaitForChange(ctx), "sin cambios debe expirar con false")
}

// ClearAll borra el libro y notifica.
func TestClearAll_BorraYNotifica(t *testing.T) {
	stream := reports.NewStream()
	repo := &stubReportRepo{reports: []*entity.Report{{ID: 1}}}
	uc := reports.NewReportUseCase(repo, stream)

	ch, cancel := stream.Subscribe()
	defer cancel()

	require.NoError(t, uc.ClearAll())
	assert.Empty(t, repo.reports)
	select {
	case <-ch:
	default:
		t.Fatal("limpiar el libro debe notificar al stream")
	}
}
