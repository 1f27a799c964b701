package metadata

import (
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"strings"

	"github.com/mssola/useragent"

	"regform/pkg/requestcontext"
)

// ClientMetadata extracts client IP address, User-Agent and a coarse device
// label from the request and adds them to the context for use by handlers,
// rate limiting and logs. Forwarding headers are only honoured when the peer
// is one of proxies; a nil Proxies trusts none. This middleware should be
// applied early in the chain.
func ClientMetadata(proxies *Proxies) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userAgent := r.Header.Get("User-Agent")
			ctx := requestcontext.WithClientMetadata(r.Context(),
				proxies.ClientIP(r),
				userAgent,
				DeviceLabel(userAgent),
			)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// DeviceLabel summarizes a User-Agent as "<browser> on <os>", "bot" or
// "unknown". The raw header is never logged.
func DeviceLabel(userAgent string) string {
	if strings.TrimSpace(userAgent) == "" {
		return "unknown"
	}
	ua := useragent.New(userAgent)
	if ua.Bot() {
		return "bot"
	}

	browser, _ := ua.Browser()
	os := ua.OS()
	switch {
	case browser == "" && os == "":
		return "unknown"
	case os == "":
		return browser
	case browser == "":
		return os
	}
	label := browser + " on " + os
	if ua.Mobile() {
		label += " (mobile)"
	}
	return label
}

// Proxies is the set of reverse proxies allowed to report the client IP
// through X-Forwarded-For or X-Real-IP.
type Proxies struct {
	prefixes []netip.Prefix
}

// ParseProxies builds a Proxies from CIDR ranges or bare addresses.
func ParseProxies(entries []string) (*Proxies, error) {
	p := &Proxies{}
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if strings.Contains(entry, "/") {
			prefix, err := netip.ParsePrefix(entry)
			if err != nil {
				return nil, fmt.Errorf("parse trusted proxy %q: %w", entry, err)
			}
			p.prefixes = append(p.prefixes, prefix.Masked())
			continue
		}
		addr, err := netip.ParseAddr(entry)
		if err != nil {
			return nil, fmt.Errorf("parse trusted proxy %q: %w", entry, err)
		}
		addr = addr.Unmap()
		p.prefixes = append(p.prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return p, nil
}

// Trusts reports whether ip belongs to a trusted proxy.
func (p *Proxies) Trusts(ip string) bool {
	if p == nil {
		return false
	}
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, prefix := range p.prefixes {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

// ClientIP returns the client address for r. The peer address is used
// unless the peer is a trusted proxy. Behind trusted proxies the
// X-Forwarded-For chain is walked from the right and the first hop that is
// not itself a trusted proxy wins.
func (p *Proxies) ClientIP(r *http.Request) string {
	peer := remoteIP(r.RemoteAddr)
	if !p.Trusts(peer) {
		return peer
	}

	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		hops := strings.Split(xff, ",")
		client := peer
		for i := len(hops) - 1; i >= 0; i-- {
			hop := strings.TrimSpace(hops[i])
			if _, err := netip.ParseAddr(hop); err != nil {
				break
			}
			client = hop
			if !p.Trusts(hop) {
				break
			}
		}
		return client
	}

	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		if _, err := netip.ParseAddr(xri); err == nil {
			return xri
		}
	}
	return peer
}

// remoteIP strips the port from RemoteAddr ("ip:port" or "[::1]:port").
func remoteIP(addr string) string {
	if addr == "" {
		return "unknown"
	}
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return strings.Trim(addr, "[]")
}
