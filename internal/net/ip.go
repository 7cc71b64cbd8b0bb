package net

import (
	"fmt"
	"log/slog"
	"net"
)

// OutgoingIP finds the local address other machines on the network can
// reach this host on.
func OutgoingIP() net.IP {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return firstIPv4()
	}
	defer conn.Close()
	return conn.LocalAddr().(*net.UDPAddr).IP
}

// firstIPv4 is used on networks without a default route.
func firstIPv4() net.IP {
	ifaces, err := net.Interfaces()
	if err != nil {
		slog.Warn("listing interfaces failed", "component", "preview", "err", err)
		return net.IPv4(127, 0, 0, 1)
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, _ := iface.Addrs()
		for _, a := range addrs {
			if ipnet, ok := a.(*net.IPNet); ok && ipnet.IP.To4() != nil {
				return ipnet.IP.To4()
			}
		}
	}
	slog.Warn("no network interface found, preview is local only", "component", "preview")
	return net.IPv4(127, 0, 0, 1)
}

// PreviewURL is the address to open the preview page from another machine.
func PreviewURL(port int) string {
	return fmt.Sprintf("http://%s/", net.JoinHostPort(OutgoingIP().String(), fmt.Sprint(port)))
}
