package share

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// Scheme prefixes share links passed on the command line.
const Scheme = "shapeboard://"

// IsLink reports whether arg looks like a share link.
func IsLink(arg string) bool { return strings.HasPrefix(arg, Scheme) }

// Link formats the link peers use to join a host.
func Link(host string, port int) string {
	return Scheme + net.JoinHostPort(host, strconv.Itoa(port))
}

// ParseLink returns the host:port a link points at.
func ParseLink(link string) (string, error) {
	if !IsLink(link) {
		return "", fmt.Errorf("not a share link: %q", link)
	}
	addr := strings.TrimSuffix(strings.TrimPrefix(link, Scheme), "/")
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "", fmt.Errorf("bad share link %q: %w", link, err)
	}
	if host == "" {
		return "", fmt.Errorf("bad share link %q: missing host", link)
	}
	if n, err := strconv.Atoi(port); err != nil || n <= 0 || n > 65535 {
		return "", fmt.Errorf("bad share link %q: invalid port", link)
	}
	return addr, nil
}
