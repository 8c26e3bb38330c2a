package handlers

import (
	"net/http"
	"strconv"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/pmlaogao/portal/internal/httpserver/deps"
	"github.com/pmlaogao/portal/internal/logger"
)

const (
	defaultQRSize = 256
	minQRSize     = 64
	maxQRSize     = 1024
)

// LoginQR renders the alternate-channel login destination as a PNG QR code.
// The optional size query parameter is clamped to a sane range.
func LoginQR(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d.AltLoginURL == "" {
			writeError(w, http.StatusNotFound, "alternate login disabled")
			return
		}

		size := defaultQRSize
		if s := r.URL.Query().Get("size"); s != "" {
			if n, err := strconv.Atoi(s); err == nil {
				size = n
			}
		}
		if size < minQRSize {
			size = minQRSize
		}
		if size > maxQRSize {
			size = maxQRSize
		}

		png, err := qrcode.Encode(d.AltLoginURL, qrcode.Medium, size)
		if err != nil {
			d.Logger.Error("failed to render login QR", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to render QR code")
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(png)
	}
}
