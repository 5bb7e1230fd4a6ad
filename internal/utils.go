package internal

import (
	"net"
)

// HostIpNet returns the first non-loopback IPv4 address of an
// interface that is up, as a /32. Analytics rows are keyed by it.
// Falls back to 127.0.0.1 on machines without such an interface.
func HostIpNet() net.IPNet {
	ifaces, err := net.Interfaces()
	if err != nil {
		return loopbackIpNet()
	}

	for _, iface := range ifaces {
		// If the flag is down
		if iface.Flags&net.FlagUp == 0 {
			continue
		}

		if iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}

		for _, addr := range addrs {
			var ip net.IP

			switch v := addr.(type) {
			case *net.IPNet:
				ip = v.IP
			case *net.IPAddr:
				ip = v.IP
			}

			if ip != nil && ip.To4() != nil && !ip.IsLoopback() {
				return net.IPNet{IP: ip.To4(), Mask: net.CIDRMask(32, 32)}
			}
		}
	}

	return loopbackIpNet()
}

func loopbackIpNet() net.IPNet {
	return net.IPNet{IP: net.IPv4(127, 0, 0, 1).To4(), Mask: net.CIDRMask(32, 32)}
}
