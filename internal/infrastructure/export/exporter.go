package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// Encoding codificación de salida del CSV.
type Encoding string

// Codificaciones soportadas. Latin-1 existe porque algunas hojas de cálculo
// en Windows abren los acentos mal en UTF-8 sin BOM.
const (
	EncodingUTF8   Encoding = "utf8"
	EncodingLatin1 Encoding = "latin1"
)

// Exporter escribe los archivos exportados en el directorio configurado.
type Exporter struct {
	dir string
}

// NewExporter construye el exportador. El directorio se crea al primer uso.
func NewExporter(dir string) *Exporter {
	return &Exporter{dir: dir}
}

// Filename genera el nombre del archivo con la marca de tiempo dada, en el
// formato histórico: día, mes, año, hora, minuto, segundo sin relleno de ceros.
func Filename(at time.Time) string {
	return fmt.Sprintf("reports_export_%d_%d_%d_%d_%d_%d.csv",
		at.Day(), int(at.Month()), at.Year(),
		at.Hour(), at.Minute(), at.Second())
}

// WriteCSV serializa las entradas y las escribe a un archivo nuevo en el
// directorio de exportación. Devuelve la ruta del archivo escrito.
func (e *Exporter) WriteCSV(reports []*entity.Report, enc Encoding) (string, error) {
	content, err := EncodeCSV(reports, enc)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("crear directorio de exportación: %w", err)
	}
	path := filepath.Join(e.dir, Filename(time.Now()))
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("escribir csv: %w", err)
	}
	return path, nil
}

// EncodeCSV serializa las entradas a bytes en la codificación pedida.
func EncodeCSV(reports []*entity.Report, enc Encoding) ([]byte, error) {
	content := BuildCSV(reports)
	if enc != EncodingLatin1 {
		return []byte(content), nil
	}
	out, _, err := transform.Bytes(charmap.ISO8859_1.NewEncoder(), []byte(content))
	if err != nil {
		return nil, fmt.Errorf("codificar latin1: %w", err)
	}
	return out, nil
}
