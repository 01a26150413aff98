package logic

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"syscall"
	"time"
	"tunefed/shared"
)

var ErrNonPublicAddress = errors.New("non-public address")

// NewPublicHttpClient returns the client used for all outgoing federation requests.
// Unless private peers are allowed, it refuses to connect to anything but public addresses.
// The check runs on the address actually dialed, so it covers DNS answers and redirects too.
func NewPublicHttpClient(cfg *shared.Config, timeout time.Duration) *http.Client {
	dialer := &net.Dialer{Timeout: timeout, KeepAlive: 30 * time.Second}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if !cfg.AllowPrivatePeers {
		dialer.Control = checkPublicDial
		// Through a proxy the dialed address would be the proxy's
		transport.Proxy = nil
	}
	transport.DialContext = dialer.DialContext
	return &http.Client{Timeout: timeout, Transport: transport}
}

func checkPublicDial(_, address string, _ syscall.RawConn) error {
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return err
	}
	addr, err := netip.ParseAddr(host)
	if err != nil || !isPublicAddr(addr) {
		return fmt.Errorf("refusing to connect to %s: %w", address, ErrNonPublicAddress)
	}
	return nil
}
