package logic

import (
	"bufio"
	"net/url"
	"os"
	"strings"
	"tunefed/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_blocked_hosts.go -package mocks tunefed/logic IBlockedHosts

// IBlockedHosts tells whether a peer URL belongs to a host the operator never wants to federate with.
type IBlockedHosts interface {
	IsBlocked(urlStr string) bool
}

type blockedHosts struct {
	hosts map[string]struct{}
}

// NewBlockedHosts reads the blocklist once: cfg.BlockedHosts plus one host per line from
// cfg.BlockedHostsFile. Blocking a host also blocks its subdomains.
func NewBlockedHosts(cfg *shared.Config, logger shared.ILogger) IBlockedHosts {
	bh := blockedHosts{hosts: make(map[string]struct{})}
	for _, host := range cfg.BlockedHosts {
		bh.add(host)
	}
	if cfg.BlockedHostsFile == "" {
		return &bh
	}
	readFile, err := os.Open(cfg.BlockedHostsFile)
	if err != nil {
		logger.Warnf("Failed to read blocked hosts file '%s': %v", cfg.BlockedHostsFile, err)
		return &bh
	}
	defer readFile.Close()
	fileScanner := bufio.NewScanner(readFile)
	fileScanner.Split(bufio.ScanLines)
	for fileScanner.Scan() {
		line := strings.TrimSpace(fileScanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		bh.add(line)
	}
	return &bh
}

func (bh *blockedHosts) add(host string) {
	host = strings.ToLower(strings.TrimSpace(host))
	host = strings.TrimPrefix(host, "https://")
	host = strings.TrimPrefix(host, "http://")
	host = strings.TrimSuffix(host, "/")
	if host != "" {
		bh.hosts[host] = struct{}{}
	}
}

func (bh *blockedHosts) IsBlocked(urlStr string) bool {
	if len(bh.hosts) == 0 {
		return false
	}
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return false
	}
	host := strings.ToLower(parsed.Hostname())
	for host != "" {
		if _, ok := bh.hosts[host]; ok {
			return true
		}
		dot := strings.IndexByte(host, '.')
		if dot < 0 {
			break
		}
		host = host[dot+1:]
	}
	return false
}
