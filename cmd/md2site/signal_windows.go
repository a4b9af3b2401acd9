//go:build windows

package main

import "os"

// shutdownSignals stop a build or a running server. SIGTERM does not
// exist on Windows.
var shutdownSignals = []os.Signal{os.Interrupt}
