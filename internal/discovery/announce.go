package discovery

import (
	"fmt"

	"github.com/grandcat/zeroconf"
)

const (
	// ServiceType is the mDNS service type the server registers as.
	ServiceType = "_http._tcp"

	// ServiceDomain is the mDNS domain (typically "local.")
	ServiceDomain = "local."
)

// Announcer keeps an mDNS registration alive for the lifetime of the
// server and deregisters it on Shutdown.
type Announcer struct {
	server *zeroconf.Server
}

// Announce registers the server as an HTTP service on the local
// network. The registration stays visible until Shutdown is called or
// the process exits.
func Announce(instance string, port int) (*Announcer, error) {
	srv, err := zeroconf.Register(
		InstanceName(instance, port),
		ServiceType,
		ServiceDomain,
		port,
		[]string{"path=/"},
		nil, // all multicast-capable interfaces
	)
	if err != nil {
		return nil, fmt.Errorf("failed to register mDNS service: %w", err)
	}

	return &Announcer{server: srv}, nil
}

// Shutdown deregisters the service.
func (a *Announcer) Shutdown() {
	a.server.Shutdown()
}

// InstanceName builds the mDNS instance name for a registration.
// Instance names must be unique per host, so the port is folded in.
func InstanceName(instance string, port int) string {
	if instance == "" {
		instance = "picohttp"
	}
	return fmt.Sprintf("%s-%d", instance, port)
}
