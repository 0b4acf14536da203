package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const autoLogFile = "auto"

// debugLog never writes to stdout: that stream carries the protocol.
var debugLog = log.New(io.Discard, "", log.Ltime|log.Lmicroseconds)

// openDebugLog points debugLog at path. An empty path keeps logging off and
// "auto" picks a file under the XDG cache directory. The returned closer
// must be called on exit.
func openDebugLog(path string) (io.Closer, error) {
	if path == "" {
		return io.NopCloser(nil), nil
	}

	if path == autoLogFile {
		var err error
		path, err = xdg.CacheFile(filepath.Join(appName, "debug.log"))
		if err != nil {
			return nil, fmt.Errorf("failed to resolve log path: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	debugLog.SetOutput(f)

	return f, nil
}
