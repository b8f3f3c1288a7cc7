package server

import (
	"errors"
	"fmt"
	"net"
	"syscall"
	"time"
)

const (
	defaultWaitTries   = 100
	defaultWaitTimeout = 100 * time.Millisecond
)

// WaitUp blocks until a TCP connection to addr succeeds. A refused
// connection is retried, since it means the server is not up yet; any other
// dial failure is returned as-is. After tries attempts (default 100, each
// bounded by timeout, default 100ms) it gives up with an explicit error.
func WaitUp(addr string, tries int, timeout time.Duration) error {
	if tries <= 0 {
		tries = defaultWaitTries
	}
	if timeout <= 0 {
		timeout = defaultWaitTimeout
	}

	for i := 0; i < tries; i++ {
		conn, err := net.DialTimeout("tcp", addr, timeout)
		if err == nil {
			conn.Close()
			return nil
		}
		if !retriableDialError(err) {
			return err
		}
		time.Sleep(timeout)
	}
	return fmt.Errorf("server: connection to %s failed after %d attempts", addr, tries)
}

// WaitDown blocks until the port behind addr is confirmed released: a
// refused or reset connection means the server is gone. A successful or
// timed-out dial means it is still up, so the attempt is retried. After
// tries attempts it gives up with an explicit error.
func WaitDown(addr string, tries int, timeout time.Duration) error {
	if tries <= 0 {
		tries = defaultWaitTries
	}
	if timeout <= 0 {
		timeout = defaultWaitTimeout
	}

	for i := 0; i < tries; i++ {
		conn, err := net.DialTimeout("tcp", addr, timeout)
		if err == nil {
			conn.Close()
			time.Sleep(timeout)
			continue
		}
		if retriableDialError(err) || errors.Is(err, syscall.ECONNRESET) {
			return nil
		}

		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			continue
		}
		return err
	}
	return fmt.Errorf("server: %s stayed up after %d connection attempts", addr, tries)
}

func retriableDialError(err error) bool {
	return errors.Is(err, syscall.ECONNREFUSED)
}
