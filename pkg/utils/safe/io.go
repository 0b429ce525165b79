package safe

import (
	"io"
	"log/slog"

	"github.com/m-mizutani/usher/pkg/utils/logging"
)

// Close safely closes the resource and logs error if any
func Close(closer io.Closer) {
	if closer != nil {
		if err := closer.Close(); err != nil {
			if err == io.EOF {
				return
			}
			logging.Default().Warn("Fail to close resource", slog.Any("error", err))
		}
	}
}
