// Package discovery scans the local network for raw-TCP thermal printers.
// It is an operator convenience for filling in the printer endpoints on
// the user document; the print pipeline never calls it.
package discovery

import (
	"fmt"
	"net"
	"strings"
	"sync"
	"time"
)

const (
	probeTimeout = 300 * time.Millisecond
	scanWorkers  = 50
)

// Probe reports whether something answers TCP at ip:port.
func Probe(ip string, port int) bool {
	addr := fmt.Sprintf("%s:%d", ip, port)
	conn, err := net.DialTimeout("tcp", addr, probeTimeout)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// Scan probes every host on the local /24 subnet and returns the
// addresses that accepted a connection on port.
func Scan(port int) ([]string, error) {
	localIP, err := localIPv4()
	if err != nil {
		return nil, err
	}
	parts := strings.Split(localIP, ".")
	subnet := strings.Join(parts[:3], ".")

	ipChan := make(chan string, 256)
	foundChan := make(chan string, 256)
	var wg sync.WaitGroup

	for i := 0; i < scanWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ip := range ipChan {
				if Probe(ip, port) {
					foundChan <- ip
				}
			}
		}()
	}

	for i := 1; i <= 254; i++ {
		ipChan <- fmt.Sprintf("%s.%d", subnet, i)
	}
	close(ipChan)

	go func() {
		wg.Wait()
		close(foundChan)
	}()

	var found []string
	for ip := range foundChan {
		found = append(found, ip)
	}
	return found, nil
}

func localIPv4() (string, error) {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "", err
	}
	for _, a := range addrs {
		if ipnet, ok := a.(*net.IPNet); ok && !ipnet.IP.IsLoopback() && ipnet.IP.To4() != nil {
			return ipnet.IP.String(), nil
		}
	}
	return "", fmt.Errorf("no local IPv4 address found")
}
