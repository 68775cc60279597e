// Package discovery announces a running picohttp server over mDNS so it
// can be found with any zeroconf browser (e.g. `avahi-browse _http._tcp`).
package discovery
