package site

import (
	"fmt"
	"net/http"
	"os/exec"
	"runtime"
	"time"

	"github.com/lyra-docs/lyra/internal/logger"
)

// Serve starts a local HTTP file server for an exported site.
func Serve(dir string, port int, open bool) error {
	addr := fmt.Sprintf(":%d", port)
	url := fmt.Sprintf("http://localhost:%d", port)

	if open {
		go openBrowser(url)
	}

	fmt.Printf("Serving exported site at %s\n", url)
	fmt.Println("Press Ctrl+C to stop.")

	srv := &http.Server{
		Addr:              addr,
		Handler:           logRequests(http.FileServer(http.Dir(dir))),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.L.WithField("path", r.URL.Path).Debug("static request")
		next.ServeHTTP(w, r)
	})
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		logger.L.WithError(err).Debug("could not open browser")
	}
}
