package lights

import (
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

// sysfsWriter writes integer values to kernel control files. Every write is
// one open/write/close cycle; the driver applies the value as soon as the
// write lands, so there is nothing to buffer or batch, and there are no
// retries. Callers hold the module lock, so the writer needs no locking of
// its own.
type sysfsWriter struct {
	open   func(path string) (io.WriteCloser, error)
	warned bool

	writes      *prometheus.CounterVec
	writeErrors *prometheus.CounterVec
}

func newSysfsWriter() *sysfsWriter {
	return &sysfsWriter{
		open: func(path string) (io.WriteCloser, error) {
			return os.OpenFile(path, os.O_RDWR, 0)
		},
		writes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "liblights",
			Name:      "sysfs_writes_total",
			Help:      "Number of writes issued to sysfs control files",
		}, []string{"path"}),
		writeErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "liblights",
			Name:      "sysfs_write_errors_total",
			Help:      "Number of failed writes to sysfs control files",
		}, []string{"path"}),
	}
}

// writeInt writes value to path as a decimal string with a trailing newline,
// the encoding all five control files expect.
func (w *sysfsWriter) writeInt(path string, value int) error {
	log.WithFields(log.Fields{"path": path, "value": value}).Debug("writeInt")
	w.writes.WithLabelValues(path).Inc()

	f, err := w.open(path)
	if err != nil {
		// The control nodes only exist on kernels that carry the matching
		// drivers. Warn once so a missing driver doesn't flood the log on
		// every set call.
		if !w.warned {
			log.WithError(err).WithField("path", path).Error("failed to open control file")
			w.warned = true
		}
		w.writeErrors.WithLabelValues(path).Inc()
		return fmt.Errorf("open %s: %w", path, err)
	}

	_, err = fmt.Fprintf(f, "%d\n", value)
	_ = f.Close()
	if err != nil {
		w.writeErrors.WithLabelValues(path).Inc()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
