package http

import (
	"net/http"
	"net/netip"
	"strings"

	"github.com/gin-gonic/gin"
)

// ParseProxies turns a list of IPs and CIDRs into prefixes. A bare IP
// becomes a single-address prefix.
func ParseProxies(list []string) ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(list))
	for _, s := range list {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if strings.Contains(s, "/") {
			p, err := netip.ParsePrefix(s)
			if err != nil {
				return nil, err
			}
			prefixes = append(prefixes, p.Masked())
			continue
		}
		addr, err := netip.ParseAddr(s)
		if err != nil {
			return nil, err
		}
		prefixes = append(prefixes, netip.PrefixFrom(addr.Unmap(), addr.Unmap().BitLen()))
	}
	return prefixes, nil
}

// NewAPIRoot lists the record collections with absolute URLs, e.g.
// {"projects": "http://host/api/projects/", "experience": "http://host/api/experience/"}.
// X-Forwarded-Proto is honored only when the direct peer is one of the trusted proxies.
func NewAPIRoot(trusted []netip.Prefix) gin.HandlerFunc {
	return func(c *gin.Context) {
		scheme := "http"
		if c.Request.TLS != nil {
			scheme = "https"
		}
		if fromProxy(c.RemoteIP(), trusted) {
			switch fwd := strings.ToLower(c.GetHeader("X-Forwarded-Proto")); fwd {
			case "http", "https":
				scheme = fwd
			}
		}
		base := scheme + "://" + c.Request.Host + "/api/"

		c.JSON(http.StatusOK, gin.H{
			"projects":   base + "projects/",
			"experience": base + "experience/",
		})
	}
}

func fromProxy(remote string, trusted []netip.Prefix) bool {
	if len(trusted) == 0 {
		return false
	}
	addr, err := netip.ParseAddr(remote)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, p := range trusted {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}
