// Package transport delivers encoded command buffers to TCP-addressable
// printers. Exactly one attempt per call; retry policy belongs to callers.
package transport

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"
)

// DefaultTimeout bounds the connect plus write of one delivery.
const DefaultTimeout = 10 * time.Second

// TimeoutError reports a printer that neither connected nor accepted the
// full buffer within the timeout window.
type TimeoutError struct {
	Addr string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("printer at %s did not respond within the timeout", e.Addr)
}

// Send opens a timed TCP connection to ip:port, writes the full buffer and
// closes the connection. Success is reported only after the write
// completes. The timeout covers both the connect and the write.
func Send(buf []byte, ip string, port int, timeout time.Duration) error {
	addr := net.JoinHostPort(ip, strconv.Itoa(port))
	deadline := time.Now().Add(timeout)

	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		if isTimeout(err) {
			return &TimeoutError{Addr: addr}
		}
		return fmt.Errorf("printer connection failed: %w", err)
	}
	defer conn.Close()

	if err := conn.SetWriteDeadline(deadline); err != nil {
		return fmt.Errorf("printer connection failed: %w", err)
	}
	if _, err := conn.Write(buf); err != nil {
		if isTimeout(err) {
			return &TimeoutError{Addr: addr}
		}
		return fmt.Errorf("printer write failed: %w", err)
	}
	return nil
}

func isTimeout(err error) bool {
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
